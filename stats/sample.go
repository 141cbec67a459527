// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"io"
	"math"
	"sort"

	"github.com/zintix-labs/rangelab"
	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/sdk/core"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleReport 是對 Range 均勻取樣後的經驗統計。
//
// 與 Describe 的閉式結果對照使用：兩者的 Mean 應該對得起來
// （取樣誤差內），對不起來通常代表上游把 range 建錯了。
type SampleReport struct {
	Expr   string  `json:"Expr"`
	N      int     `json:"N"`
	Mean   float64 `json:"Mean"`
	Std    float64 `json:"Std"`
	MeanCI CI      `json:"MeanCI"` // Mean 的 95% 常態近似信賴區間
	P10    float64 `json:"P10"`
	P50    float64 `json:"P50"`
	P90    float64 `json:"P90"`
}

// Sample 從 r 均勻抽 n 個元素並回傳經驗統計。
// n < 1、nil rng 或空範圍回 Warn。showpb 控制進度條（server 端請傳 false）。
func Sample[N rangelab.Number](r rangelab.Range[N], n int, rng core.RAND, showpb bool) (*SampleReport, error) {
	if n < 1 {
		return nil, errs.NewWarn("sample size must be positive")
	}
	if rng == nil {
		return nil, errs.NewWarn("nil rng")
	}
	if r.IsEmpty() {
		return nil, errs.NewWarn("sample on empty range")
	}

	bar := pb.StartNew(n)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	xs := make([]float64, n)
	for i := range xs {
		v, err := r.Random(rng)
		if err != nil {
			return nil, err
		}
		xs[i] = float64(v)
		bar.Increment()
	}
	bar.Finish()
	sort.Float64s(xs)

	rep := &SampleReport{
		Expr: r.String(),
		N:    n,
		Mean: stat.Mean(xs, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, xs, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, xs, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, xs, nil),
	}
	if n > 1 {
		rep.Std = stat.StdDev(xs, nil)
	}

	// 95% CI（常態近似）：mean ± z(0.975) * std / sqrt(n)
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	half := z * rep.Std / math.Sqrt(float64(n))
	rep.MeanCI = CI{Lo: rep.Mean - half, Hi: rep.Mean + half}
	return rep, nil
}
