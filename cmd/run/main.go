package main

import "github.com/zintix-labs/rangelab/sdk/perf"

// makefile runner
func main() {
	bindVar()
	perf.RunPProf(executeEval, cfg.pprofmode)
}
