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
	"math"
	"strings"
	"testing"

	"github.com/zintix-labs/rangelab"
	"github.com/zintix-labs/rangelab/sdk/core"
)

func TestDescribeClosedForm(t *testing.T) {
	rep := DescribeRange(rangelab.To(1, 4))
	if rep.Empty {
		t.Fatalf("expected non-empty report")
	}
	if rep.Count != 4 || rep.First != 1 || rep.Last != 4 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Sum != 10 || rep.Mean != 2.5 {
		t.Fatalf("unexpected sum/mean: %+v", rep)
	}
	if rep.Min != 1 || rep.Max != 4 {
		t.Fatalf("unexpected min/max: %+v", rep)
	}
}

func TestDescribeDescending(t *testing.T) {
	p, err := rangelab.DownTo(10, 1).Step(4) // 10 6 2
	if err != nil {
		t.Fatal(err)
	}
	rep := Describe(p)
	if rep.Count != 3 || rep.First != 10 || rep.Last != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Sum != 18 || rep.Mean != 6 {
		t.Fatalf("unexpected sum/mean: %+v", rep)
	}
	if rep.Min != 2 || rep.Max != 10 {
		t.Fatalf("unexpected min/max: %+v", rep)
	}
}

func TestDescribeHugeSpanNoIteration(t *testing.T) {
	// 閉式統計不物化元素：兆級 span 也要瞬間完成
	rep := DescribeRange(rangelab.To(int64(1), int64(1)<<40))
	if rep.Count != 1<<40 {
		t.Fatalf("unexpected count: %d", rep.Count)
	}
	wantMean := (1 + float64(int64(1)<<40)) / 2
	if rep.Mean != wantMean {
		t.Fatalf("unexpected mean: %v want %v", rep.Mean, wantMean)
	}
}

func TestDescribeEmpty(t *testing.T) {
	rep := DescribeRange(rangelab.To(4, 1))
	if !rep.Empty || rep.Count != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}

func TestSampleDeterministic(t *testing.T) {
	r := rangelab.To(0.0, 1.0)
	a, err := Sample(r, 500, core.NewPCG64(42), false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sample(r, 500, core.NewPCG64(42), false)
	if err != nil {
		t.Fatal(err)
	}
	if a.Mean != b.Mean || a.Std != b.Std || a.P50 != b.P50 {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestSampleAgainstClosedForm(t *testing.T) {
	r := rangelab.To(0.0, 1.0)
	rep, err := Sample(r, 5000, core.NewPCG64(7), false)
	if err != nil {
		t.Fatal(err)
	}
	if rep.N != 5000 {
		t.Fatalf("unexpected n: %d", rep.N)
	}
	// 均勻分布：mean ≈ 0.5、P50 ≈ 0.5（取樣誤差內）
	if math.Abs(rep.Mean-0.5) > 0.05 {
		t.Fatalf("sample mean too far from 0.5: %v", rep.Mean)
	}
	if math.Abs(rep.P50-0.5) > 0.05 {
		t.Fatalf("sample median too far from 0.5: %v", rep.P50)
	}
	if rep.MeanCI.Lo >= rep.MeanCI.Hi {
		t.Fatalf("degenerate CI: %+v", rep.MeanCI)
	}
	if rep.P10 >= rep.P50 || rep.P50 >= rep.P90 {
		t.Fatalf("quantiles out of order: %+v", rep)
	}
}

func TestSampleErrors(t *testing.T) {
	rng := core.NewPCG64(1)
	if _, err := Sample(rangelab.To(1, 10), 0, rng, false); err == nil {
		t.Fatalf("expected error for n < 1")
	}
	if _, err := Sample(rangelab.To(1, 10), 10, nil, false); err == nil {
		t.Fatalf("expected error for nil rng")
	}
	if _, err := Sample(rangelab.To(10, 1), 10, rng, false); err == nil {
		t.Fatalf("expected error for empty range")
	}
}

func TestRender(t *testing.T) {
	rep := DescribeRange(rangelab.To(1, 4))
	out := rep.Render()
	if !strings.Contains(out, "Progression Report") || !strings.Contains(out, "1..4") {
		t.Fatalf("unexpected render output:\n%s", out)
	}

	sRep, err := Sample(rangelab.To(0.0, 1.0), 100, core.NewPCG64(3), false)
	if err != nil {
		t.Fatal(err)
	}
	sOut := sRep.Render()
	if !strings.Contains(sOut, "Sample Report") || !strings.Contains(sOut, "Mean 95% CI") {
		t.Fatalf("unexpected render output:\n%s", sOut)
	}
}
