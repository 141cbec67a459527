package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"strings"

	"github.com/zintix-labs/rangelab/dto"
	"github.com/zintix-labs/rangelab/sdk/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	kind      string
	start     string
	end       string
	step      string
	down      bool
	limit     int
	mode      string // eval | describe | sample
	samples   int
	seed      int64
	pprofmode string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&cfg.kind, "kind", "int", "element kind: int, int8, int16, int32, int64, float32, float64")
	flag.StringVar(&cfg.start, "start", "", "first element")
	flag.StringVar(&cfg.end, "end", "", "declared end bound")
	flag.StringVar(&cfg.step, "step", "", "step magnitude (positive); empty = unit step")
	flag.BoolVar(&cfg.down, "down", false, "descend from start to end")
	flag.IntVar(&cfg.limit, "limit", 20, "max elements to print")
	flag.StringVar(&cfg.mode, "mode", "eval", "mode: eval, describe, sample")
	flag.IntVar(&cfg.samples, "n", 1000000, "sample size (mode=sample)")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()

	// given seed illeagel -> default seed
	if cfg.seed < 1 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			log.Fatal(err)
		}
		cfg.seed = seed.Int64()
	}
}

// 這裡解析並分支要執行的模式
func executeEval() {
	cfg.valid() // 基本檢查

	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)

	req := &dto.EvalRequest{
		Kind:  cfg.kind,
		Start: cfg.start,
		End:   cfg.end,
		Step:  cfg.step,
		Down:  cfg.down,
		Limit: cfg.limit,
	}

	switch cfg.mode {
	case "eval":
		resp, err := dto.Eval(req, cfg.limit)
		if err != nil {
			log.Fatal(err)
		}
		p.Printf("%s[EXPR:%s] [KIND:%s] [COUNT:%d]%s\n", green, resp.Expr, resp.Kind, resp.Count, reset)
		if resp.Empty {
			fmt.Println("(empty)")
			return
		}
		fmt.Println(strings.Join(resp.Elements, " "))
		if resp.Truncated {
			p.Printf("... truncated at %d of %d elements\n", len(resp.Elements), resp.Count)
		}
	case "describe":
		rep, err := dto.Describe(req)
		if err != nil {
			log.Fatal(err)
		}
		p.Printf("%s[EXPR:%s] [KIND:%s]%s\n", green, rep.Expr, cfg.kind, reset)
		rep.StdOut()
	case "sample":
		sReq := &dto.SampleRequest{EvalRequest: *req, N: cfg.samples, Seed: &cfg.seed}
		p.Printf("%s[KIND:%s] [SAMPLES:%d] [SEED:%d]%s\n", green, cfg.kind, cfg.samples, cfg.seed, reset)
		rep, err := dto.Sample(sReq, core.NewPCG64(cfg.seed), true)
		if err != nil {
			log.Fatal(err)
		}
		rep.StdOut()
	}
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)

	if cfg.start == "" || cfg.end == "" {
		log.Fatal("value err : start and end are required")
	}

	switch cfg.mode {
	case "eval", "describe", "sample":
	default:
		log.Fatal("value err : mode must be eval, describe, or sample")
	}

	// 列印上限檢查
	if cfg.limit < 1 {
		log.Fatal("value err : limit must > 0")
	}
	if cfg.limit > 100000 {
		p.Printf("too much elements to print: %d resized to 100k\n", cfg.limit)
		cfg.limit = 100000
	}

	// 取樣數檢查
	if cfg.mode == "sample" {
		if cfg.samples < 1 {
			log.Fatal("value err : n must > 0")
		}
		if cfg.samples > 100000000 {
			p.Printf("too much samples: %d resized to 100M samples\n", cfg.samples)
			cfg.samples = 100000000
		}
	}
}
