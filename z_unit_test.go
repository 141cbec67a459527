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

package rangelab

import (
	"math"
	"testing"

	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/sdk/core"
)

func assertSlice[N Number](t *testing.T, got, want []N) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d mismatch: got %v want %v", i, got, want)
		}
	}
}

// ------------------------------------------------------------
// Interval
// ------------------------------------------------------------

func TestIntervalContains(t *testing.T) {
	iv := Between(1, 4)
	for _, v := range []int{1, 2, 3, 4} {
		if !iv.Contains(v) {
			t.Fatalf("expected %d in %s", v, iv)
		}
	}
	for _, v := range []int{0, 5, -1} {
		if iv.Contains(v) {
			t.Fatalf("expected %d not in %s", v, iv)
		}
	}
}

func TestIntervalEmpty(t *testing.T) {
	iv := Between(4, 1)
	if !iv.IsEmpty() {
		t.Fatalf("expected [4, 1] empty")
	}
	if iv.Contains(2) {
		t.Fatalf("empty interval must contain nothing")
	}
	// 單點區間非空
	if Between(3, 3).IsEmpty() {
		t.Fatalf("expected [3, 3] non-empty")
	}
}

func TestIntervalOrderedKinds(t *testing.T) {
	// Interval 不限數值型別：字串、unsigned 都只有 membership
	s := Between("apple", "mango")
	if !s.Contains("banana") {
		t.Fatalf("expected banana in %s", s)
	}
	if s.Contains("zebra") {
		t.Fatalf("expected zebra not in %s", s)
	}

	u := Between(uint64(0), uint64(math.MaxUint64))
	if !u.Contains(math.MaxUint64) {
		t.Fatalf("expected max uint64 in full-width interval")
	}
}

func TestIntervalString(t *testing.T) {
	if got := Between(1, 4).String(); got != "[1, 4]" {
		t.Fatalf("unexpected interval string: %q", got)
	}
}

// ------------------------------------------------------------
// Progression / Range: 基本場景
// ------------------------------------------------------------

func TestRangeTo(t *testing.T) {
	r := To(1, 4)
	assertSlice(t, r.Slice(), []int{1, 2, 3, 4})
	if r.First() != 1 || r.Last() != 4 || r.Count() != 4 {
		t.Fatalf("unexpected range: first=%d last=%d count=%d", r.First(), r.Last(), r.Count())
	}
	if got := r.String(); got != "1..4" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestRangeToEmpty(t *testing.T) {
	r := To(4, 1)
	if !r.IsEmpty() || r.Count() != 0 {
		t.Fatalf("expected empty range, count=%d", r.Count())
	}
	if got := r.Slice(); got != nil {
		t.Fatalf("expected nil slice, got %v", got)
	}
}

func TestRangeSinglePoint(t *testing.T) {
	r := To(7, 7)
	assertSlice(t, r.Slice(), []int{7})
	if r.Last() != 7 {
		t.Fatalf("expected last 7, got %d", r.Last())
	}
}

func TestDownTo(t *testing.T) {
	p := DownTo(4, 1)
	assertSlice(t, p.Slice(), []int{4, 3, 2, 1})
	if got := p.String(); got != "4 downTo 1" {
		t.Fatalf("unexpected string: %q", got)
	}
	if !DownTo(1, 4).IsEmpty() {
		t.Fatalf("expected 1 downTo 4 empty")
	}
}

func TestStep(t *testing.T) {
	p, err := To(1, 10).Step(3)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []int{1, 4, 7, 10})
	if p.Last() != 10 {
		t.Fatalf("expected last 10, got %d", p.Last())
	}

	// end 不是格點：last 停在最遠不越界的格點
	p, err = To(1, 9).Step(3)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []int{1, 4, 7})
	if p.Last() != 7 || p.End() != 9 {
		t.Fatalf("expected last 7 end 9, got last=%d end=%d", p.Last(), p.End())
	}
	if got := p.String(); got != "1..9 step 3" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestStepScenarios(t *testing.T) {
	up, err := To(1, 4).Step(2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, up.Slice(), []int{1, 3})

	down, err := DownTo(4, 1).Step(2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, down.Slice(), []int{4, 2})
}

func TestRangeReversed(t *testing.T) {
	assertSlice(t, To(1, 4).Reversed().Slice(), []int{4, 3, 2, 1})
}

func TestStepKeepsDirection(t *testing.T) {
	p, err := DownTo(10, 1).Step(4)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []int{10, 6, 2})
	if got := p.String(); got != "10 downTo 1 step 4" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestStepRejectsNonPositive(t *testing.T) {
	for _, mag := range []int{0, -1, -5} {
		if _, err := To(1, 10).Step(mag); err == nil {
			t.Fatalf("expected error for magnitude %d", mag)
		} else if e, ok := errs.AsErr(err); !ok || e.ErrLv != errs.Warn {
			t.Fatalf("expected warn-level error, got %v", err)
		}
	}
	if _, err := To(1.0, 10.0).Step(math.NaN()); err == nil {
		t.Fatalf("expected error for NaN magnitude")
	}
}

func TestNewProgression(t *testing.T) {
	p, err := NewProgression(0, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []int{0, 5, 10})

	if _, err := NewProgression(0, 10, 0); err == nil {
		t.Fatalf("expected error for zero increment")
	}
}

func TestZeroValueProgressionIsEmpty(t *testing.T) {
	var p Progression[int]
	if !p.IsEmpty() || p.Count() != 0 {
		t.Fatalf("zero value must be empty")
	}
	for v := range p.All() {
		t.Fatalf("zero value yielded %v", v)
	}
}

// ------------------------------------------------------------
// Progression: overflow 邊界
// ------------------------------------------------------------

func TestIterationAtInt8UpperBound(t *testing.T) {
	// 經典 bug 場景：end == MaxInt8，cur += inc 會繞回負數而永不終止。
	r := To(int8(math.MaxInt8-2), int8(math.MaxInt8))
	assertSlice(t, r.Slice(), []int8{125, 126, 127})
	if r.Last() != math.MaxInt8 {
		t.Fatalf("expected last %d, got %d", math.MaxInt8, r.Last())
	}
}

func TestIterationAtInt8LowerBound(t *testing.T) {
	p := DownTo(int8(math.MinInt8+2), int8(math.MinInt8))
	assertSlice(t, p.Slice(), []int8{-126, -127, -128})
	if p.Last() != math.MinInt8 {
		t.Fatalf("expected last %d, got %d", math.MinInt8, p.Last())
	}
}

func TestIterationAtInt64UpperBound(t *testing.T) {
	r := To(int64(math.MaxInt64-2), int64(math.MaxInt64))
	assertSlice(t, r.Slice(), []int64{math.MaxInt64 - 2, math.MaxInt64 - 1, math.MaxInt64})
}

func TestLastNearUpperBoundWithStep(t *testing.T) {
	// end = MaxInt64 且 end 非格點：last 必須在不觸碰越界中間值的前提下算出
	p, err := To(int64(math.MaxInt64-10), int64(math.MaxInt64)).Step(4)
	if err != nil {
		t.Fatal(err)
	}
	want := int64(math.MaxInt64 - 2) // max-10, max-6, max-2
	if p.Last() != want {
		t.Fatalf("expected last %d, got %d", want, p.Last())
	}
	if p.Count() != 3 {
		t.Fatalf("expected count 3, got %d", p.Count())
	}
}

func TestFullWidthInt8Count(t *testing.T) {
	r := To(int8(math.MinInt8), int8(math.MaxInt8))
	if r.Count() != 256 {
		t.Fatalf("expected count 256, got %d", r.Count())
	}
	got := r.Slice()
	if len(got) != 256 || got[0] != math.MinInt8 || got[255] != math.MaxInt8 {
		t.Fatalf("unexpected full-width slice: len=%d first=%d last=%d", len(got), got[0], got[len(got)-1])
	}
}

func TestFullWidthInt64CountSaturates(t *testing.T) {
	r := To(int64(math.MinInt64), int64(math.MaxInt64))
	if r.Count() != math.MaxUint64 {
		t.Fatalf("expected saturated count, got %d", r.Count())
	}
	if r.Last() != math.MaxInt64 {
		t.Fatalf("expected last MaxInt64, got %d", r.Last())
	}
}

func TestMinInt64Magnitude(t *testing.T) {
	// |MinInt64| 在元素型別內不可表示，intMag 必須走 uint64
	p, err := NewProgression(int64(0), int64(math.MinInt64), int64(math.MinInt64))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []int64{0, math.MinInt64})
}

// ------------------------------------------------------------
// Progression: 迭代協議
// ------------------------------------------------------------

func TestIterationRestartable(t *testing.T) {
	p := To(1, 3).Progression()
	seq := p.All()
	first := make([]int, 0, 3)
	for v := range seq {
		first = append(first, v)
	}
	second := make([]int, 0, 3)
	for v := range seq {
		second = append(second, v)
	}
	assertSlice(t, first, []int{1, 2, 3})
	assertSlice(t, second, []int{1, 2, 3})
}

func TestIterationEarlyBreak(t *testing.T) {
	got := make([]int64, 0, 3)
	for v := range To(int64(0), int64(math.MaxInt64)).All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assertSlice(t, got, []int64{0, 1, 2})
}

// ------------------------------------------------------------
// Contains / Equal / Reversed
// ------------------------------------------------------------

func TestProgressionContains(t *testing.T) {
	p, err := To(1, 10).Step(3) // 1 4 7 10
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{1, 4, 7, 10} {
		if !p.Contains(v) {
			t.Fatalf("expected %d in %s", v, p)
		}
	}
	for _, v := range []int{0, 2, 9, 11} {
		if p.Contains(v) {
			t.Fatalf("expected %d not in %s", v, p)
		}
	}
}

func TestProgressionContainsDescending(t *testing.T) {
	p, err := DownTo(10, 1).Step(4) // 10 6 2
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{10, 6, 2} {
		if !p.Contains(v) {
			t.Fatalf("expected %d in %s", v, p)
		}
	}
	for _, v := range []int{1, 4, 11} {
		if p.Contains(v) {
			t.Fatalf("expected %d not in %s", v, p)
		}
	}
}

func TestReversedRoundTrip(t *testing.T) {
	p, err := To(1, 9).Step(3) // 1 4 7
	if err != nil {
		t.Fatal(err)
	}
	rev := p.Reversed()
	assertSlice(t, rev.Slice(), []int{7, 4, 1})

	back := rev.Reversed()
	if !back.Equal(p) {
		t.Fatalf("double reverse must visit the same sequence: %s vs %s", back, p)
	}
}

func TestReversedEmpty(t *testing.T) {
	rev := To(4, 1).Reversed()
	if !rev.IsEmpty() {
		t.Fatalf("reverse of empty must be empty")
	}
}

func TestEqual(t *testing.T) {
	a, _ := To(1, 10).Step(3) // 1 4 7 10
	b, _ := To(1, 12).Step(3) // 1 4 7 10 — 不同 end，同序列
	if !a.Equal(b) {
		t.Fatalf("expected %s equal %s", a, b)
	}
	c, _ := To(1, 10).Step(2)
	if a.Equal(c) {
		t.Fatalf("expected %s not equal %s", a, c)
	}
	if !To(4, 1).Progression().Equal(To(9, 3).Progression()) {
		t.Fatalf("all empty progressions are equal")
	}
	if To(4, 1).Progression().Equal(To(1, 4).Progression()) {
		t.Fatalf("empty must not equal non-empty")
	}
}

// ------------------------------------------------------------
// 浮點 kind
// ------------------------------------------------------------

func TestFloatProgression(t *testing.T) {
	p, err := To(1.0, 2.0).Step(0.25)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, p.Slice(), []float64{1.0, 1.25, 1.5, 1.75, 2.0})
	if p.Last() != 2.0 || p.Count() != 5 {
		t.Fatalf("unexpected float progression: last=%v count=%d", p.Last(), p.Count())
	}
}

func TestFloatUnitRange(t *testing.T) {
	assertSlice(t, To(1.0, 2.0).Slice(), []float64{1.0, 2.0})
}

func TestFloatLastMatchesIteration(t *testing.T) {
	// 非格點 end：Last() 必須與迭代的最後一個產出值完全一致（同一條公式）
	p, err := To(0.0, 1.0).Step(0.3)
	if err != nil {
		t.Fatal(err)
	}
	var final float64
	n := 0
	for v := range p.All() {
		final = v
		n++
	}
	if final != p.Last() {
		t.Fatalf("iterated last %v != Last() %v", final, p.Last())
	}
	if n != int(p.Count()) {
		t.Fatalf("iterated %d elements, count says %d", n, p.Count())
	}
}

func TestFloatNaNMakesEmpty(t *testing.T) {
	nan := math.NaN()
	cases := []Progression[float64]{
		To(nan, 1.0).Progression(),
		To(0.0, nan).Progression(),
		{start: 0, end: 1, inc: nan},
	}
	for i, p := range cases {
		if !p.IsEmpty() || p.Count() != 0 {
			t.Fatalf("case %d: NaN progression must be empty", i)
		}
		for v := range p.All() {
			t.Fatalf("case %d: yielded %v", i, v)
		}
	}
	if To(0.0, 10.0).Progression().Contains(nan) {
		t.Fatalf("NaN is a member of nothing")
	}
}

func TestFloatContainsSpanOnly(t *testing.T) {
	p, err := To(0.0, 1.0).Step(0.3)
	if err != nil {
		t.Fatal(err)
	}
	// 浮點只做 span 判定，不做格點判定
	if !p.Contains(0.5) {
		t.Fatalf("expected 0.5 in float span")
	}
	if p.Contains(1.5) {
		t.Fatalf("expected 1.5 out of span")
	}
}

// ------------------------------------------------------------
// Coerce
// ------------------------------------------------------------

func TestCoerce(t *testing.T) {
	if got := CoerceAtLeast(3, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := CoerceAtMost(9, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	v, err := CoerceIn(7, 1, 5)
	if err != nil || v != 5 {
		t.Fatalf("expected 5, got %d err=%v", v, err)
	}
	if _, err := CoerceIn(3, 5, 1); err == nil {
		t.Fatalf("expected error for inverted bounds")
	}
}

func TestCoerceInRange(t *testing.T) {
	v, err := CoerceInRange(42, To(1, 10))
	if err != nil || v != 10 {
		t.Fatalf("expected 10, got %d err=%v", v, err)
	}
	if _, err := CoerceInRange(3, To(10, 1)); err == nil {
		t.Fatalf("expected error for empty range")
	}
}

// ------------------------------------------------------------
// Random
// ------------------------------------------------------------

func TestRandomDeterministic(t *testing.T) {
	r := To(int64(-50), int64(50))
	a := core.NewPCG64(42)
	b := core.NewPCG64(42)
	for i := 0; i < 100; i++ {
		va, err := r.Random(a)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := r.Random(b)
		if err != nil {
			t.Fatal(err)
		}
		if va != vb {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, va, vb)
		}
		if !r.Contains(va) {
			t.Fatalf("draw %d out of range: %d", i, va)
		}
	}
}

func TestRandomFloatInRange(t *testing.T) {
	r := To(2.5, 7.5)
	rng := core.NewPCG64(7)
	for i := 0; i < 100; i++ {
		v, err := r.Random(rng)
		if err != nil {
			t.Fatal(err)
		}
		if v < 2.5 || v >= 7.5 {
			t.Fatalf("draw %d out of [2.5, 7.5): %v", i, v)
		}
	}
}

func TestRandomErrors(t *testing.T) {
	if _, err := To(4, 1).Random(core.NewPCG64(1)); err == nil {
		t.Fatalf("expected error on empty range")
	}
	if _, err := To(1, 4).Random(nil); err == nil {
		t.Fatalf("expected error on nil rng")
	}
}
