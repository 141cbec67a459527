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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval 是任意全序型別上的閉區間 [start, end]，只提供 membership。
//
// 設計重點：
//   - start > end 是合法的值，語意就是「空區間」，不是錯誤。
//   - 沒有迭代能力：字串、unsigned 等型別只有順序沒有（本庫支援的）步進。
//   - 不可變 value object，可以自由複製與跨 goroutine 共用。
type Interval[T constraints.Ordered] struct {
	start T
	end   T
}

// Between 建立閉區間 [a, b]。不檢查 a、b 的大小關係（a > b 即空區間）。
func Between[T constraints.Ordered](a, b T) Interval[T] {
	return Interval[T]{start: a, end: b}
}

// Contains 回報 start <= v && v <= end。
func (iv Interval[T]) Contains(v T) bool {
	return iv.start <= v && v <= iv.end
}

// IsEmpty 回報區間是否不含任何值。
func (iv Interval[T]) IsEmpty() bool {
	return iv.start > iv.end
}

func (iv Interval[T]) Start() T { return iv.start }

func (iv Interval[T]) End() T { return iv.end }

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.start, iv.end)
}
