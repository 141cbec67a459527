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
	"github.com/zintix-labs/rangelab/errs"

	"golang.org/x/exp/constraints"
)

// CoerceAtLeast 回傳 max(v, lo)。
func CoerceAtLeast[T constraints.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// CoerceAtMost 回傳 min(v, hi)。
func CoerceAtMost[T constraints.Ordered](v, hi T) T {
	if v > hi {
		return hi
	}
	return v
}

// CoerceIn 把 v 夾進 [lo, hi]。lo > hi 是呼叫端參數錯誤，回 InvalidArgument。
func CoerceIn[T constraints.Ordered](v, lo, hi T) (T, error) {
	if lo > hi {
		var z T
		return z, errs.Warnf("coerce bounds inverted: lo=%v hi=%v", lo, hi)
	}
	return CoerceAtMost(CoerceAtLeast(v, lo), hi), nil
}

// CoerceInRange 把 v 夾進範圍 r；空範圍回 InvalidArgument。
func CoerceInRange[N Number](v N, r Range[N]) (N, error) {
	if r.IsEmpty() {
		var z N
		return z, errs.NewWarn("coerce into empty range")
	}
	iv := r.Interval()
	return CoerceAtMost(CoerceAtLeast(v, iv.Start()), iv.End()), nil
}
