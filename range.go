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
	"iter"
	"math"

	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/sdk/core"
)

// Range 是單位步長的閉數值範圍：同時是 Interval（membership）也是
// Progression（迭代），但兩種能力是「組合」而非「繼承」——
// Contains 走 Interval 的定義，迭代走 Progression 的格點邏輯，
// 彼此不碰對方內部（單位步長下兩者的結論本來就一致）。
//
// 只能經由 To 建立，步長固定為該型別的單位步（整數 1 / 浮點 1.0）。
type Range[N Number] struct {
	iv Interval[N]
	pr Progression[N]
}

// Contains 走 Interval 定義：start <= v && v <= end。
func (r Range[N]) Contains(v N) bool { return r.iv.Contains(v) }

// Interval 回傳 membership 視角的閉區間。
func (r Range[N]) Interval() Interval[N] { return r.iv }

// Progression 回傳迭代視角的單位步長級數。
func (r Range[N]) Progression() Progression[N] { return r.pr }

func (r Range[N]) First() N        { return r.pr.First() }
func (r Range[N]) Last() N         { return r.pr.Last() }
func (r Range[N]) End() N          { return r.pr.End() }
func (r Range[N]) IsEmpty() bool   { return r.pr.IsEmpty() }
func (r Range[N]) Count() uint64   { return r.pr.Count() }
func (r Range[N]) All() iter.Seq[N] { return r.pr.All() }
func (r Range[N]) Slice() []N      { return r.pr.Slice() }
func (r Range[N]) String() string  { return r.pr.String() }

// Reversed 回傳逆向級數（不再是單位遞增範圍，所以型別是 Progression）。
func (r Range[N]) Reversed() Progression[N] { return r.pr.Reversed() }

// Step 回傳步長縮放後的級數；magnitude <= 0 回 InvalidArgument。
func (r Range[N]) Step(magnitude N) (Progression[N], error) { return r.pr.Step(magnitude) }

// Equal 回報兩個範圍是否含相同元素。
func (r Range[N]) Equal(o Range[N]) bool { return r.pr.Equal(o.pr) }

// Random 從範圍中均勻抽出一個元素；空範圍回錯誤。
//
//   - 整數 kind：在 [0, Count()) 均勻取 index 再映射回格點，無偏。
//     Count 飽和（全幅 span）時直接用 64-bit 原始輸出，每個元素仍等機率。
//   - 浮點 kind：start + u*(end-start)，u ∈ [0,1)。
func (r Range[N]) Random(rng core.RAND) (N, error) {
	if rng == nil {
		var z N
		return z, errs.NewWarn("nil rng")
	}
	if r.IsEmpty() {
		var z N
		return z, errs.NewWarn("random on empty range")
	}
	p := r.pr
	if isFloat[N]() {
		return p.start + N(rng.Float64())*(p.end-p.start), nil
	}
	s := stepperFor[N]()
	n := s.steps(p.start, p.end, p.inc)
	var idx uint64
	if n == math.MaxUint64 {
		idx = rng.Uint64()
	} else {
		idx = rng.Uint64N(n + 1)
	}
	return s.at(p.start, p.inc, idx), nil
}
