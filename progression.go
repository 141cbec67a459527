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

// Package rangelab 提供區間（Interval）、等差級數（Progression）與閉數值範圍（Range）
// 三種不可變 value object，以及 overflow-safe 的惰性迭代。
//
// 三個型別的分工：
//   - Interval[T]：任意全序型別的閉區間，只有 membership。
//   - Progression[N]：數值型別的等差級數 start, start+inc, ...，有惰性、有限、
//     可重啟的迭代；最後訪問值（last reachable element）是事先算好的，
//     不是邊走邊試出來的。
//   - Range[N]：單位步長的閉數值範圍，同時擁有 Interval 的 membership
//     與 Progression 的迭代，兩種能力各自獨立（composition，不互相偷看內部）。
//
// 所有值一旦建立永不變動；Step()/Reversed() 回傳新值。
// 因此任何數量的 goroutine 可以同時持有並各自迭代同一個值，不需要任何同步。
// 迭代 cursor 只存在於單次 All() 產生的 sequence 內，單一擁有者、不跨執行緒共用。
package rangelab

import (
	"fmt"
	"iter"
	"math"

	"github.com/zintix-labs/rangelab/errs"
)

// Progression 是等差級數 {start, end, inc}：start, start+inc, start+2*inc, ...
// 只走到「不越過 end 的最後一個格點」為止。
//
// 合約：
//   - inc != 0。經由 To/DownTo/NewProgression/Step/Reversed 建出的值必然滿足；
//     zero value（inc == 0）視為空級數，fail-safe 而非 panic。
//   - end 是邊界（bound），不保證是成員；實際最後訪問值請看 Last()。
//   - 空級數（inc>0 且 start>end，或 inc<0 且 start<end）是合法值：
//     Count()==0、All() 不產出任何元素、Contains 永遠 false。
type Progression[N Number] struct {
	start N
	end   N
	inc   N
}

// NewProgression 建立級數並驗證 inc != 0。
// 方向由 inc 的正負決定；想從既有級數縮放步長請用 Step()。
func NewProgression[N Number](start, end, inc N) (Progression[N], error) {
	if inc == 0 {
		return Progression[N]{}, errs.NewWarn("progression increment must be non-zero")
	}
	return Progression[N]{start: start, end: end, inc: inc}, nil
}

// First 回傳第一個訪問值（即 start）。空級數時結果無意義，請先檢查 IsEmpty。
func (p Progression[N]) First() N { return p.start }

// End 回傳宣告的邊界。注意這是 bound，不一定被訪問；最後訪問值是 Last()。
func (p Progression[N]) End() N { return p.end }

// Inc 回傳步長（含方向）。
func (p Progression[N]) Inc() N { return p.inc }

// IsEmpty 回報級數是否不產出任何元素。
//
// zero value（inc==0）與任何帶 NaN 端點/步長的浮點級數都視為空：
// NaN 的所有比較皆為 false，「空」是唯一不會讓迭代失控的總體行為。
func (p Progression[N]) IsEmpty() bool {
	if p.inc == 0 {
		return true
	}
	if p.start != p.start || p.end != p.end || p.inc != p.inc { // NaN guard
		return true
	}
	if p.inc > 0 {
		return p.start > p.end
	}
	return p.start < p.end
}

// Last 回傳實際的最後訪問值：start + k*inc 中不越過 end 的最遠格點。
//
// 這個值是用寬化算術一次算出來的（見 stepper），不是逐步相加試出來的；
// 所以 end 等於型別極值時不會繞回（wraparound）也不會死迴圈。
// 空級數時結果無意義，請先檢查 IsEmpty。
func (p Progression[N]) Last() N {
	if p.IsEmpty() {
		return p.start
	}
	s := stepperFor[N]()
	return s.at(p.start, p.inc, s.steps(p.start, p.end, p.inc))
}

// Count 回傳元素個數。空級數為 0；超出 uint64 時飽和為 math.MaxUint64
// （只有全幅 int64 span 配 step 1 這類極端組合會碰到）。
func (p Progression[N]) Count() uint64 {
	if p.IsEmpty() {
		return 0
	}
	n := stepperFor[N]().steps(p.start, p.end, p.inc)
	if n == math.MaxUint64 {
		return math.MaxUint64
	}
	return n + 1
}

// All 回傳惰性、有限、可重啟的元素序列。
//
//   - 每次呼叫（或每次 range 同一個回傳值）都從 start 重新開始；
//     cursor 活在這個 closure 內，Progression 本身沒有任何迭代狀態。
//   - cursor 用「剩餘步數」計數，不拿累加值跟邊界比大小，
//     所以到達型別極值時不會多走一步繞回去。
func (p Progression[N]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		if p.IsEmpty() {
			return
		}
		s := stepperFor[N]()
		n := s.steps(p.start, p.end, p.inc)
		for i := uint64(0); ; i++ {
			if !yield(s.at(p.start, p.inc, i)) {
				return
			}
			if i >= n {
				return
			}
		}
	}
}

// Slice 物化所有元素。大級數請自行節制（cap 只是避免單次超額配置）。
func (p Progression[N]) Slice() []N {
	n := p.Count()
	if n == 0 {
		return nil
	}
	if n > 1<<20 {
		n = 1 << 20
	}
	out := make([]N, 0, n)
	for v := range p.All() {
		out = append(out, v)
	}
	return out
}

// Contains 回報 v 是否為級數成員：落在閉 span 內、且在 inc 的格點上。
// 浮點 kind 只做 span 判定（捨入誤差下的格點判定沒有意義）。
func (p Progression[N]) Contains(v N) bool {
	if p.IsEmpty() || v != v {
		return false
	}
	if p.inc > 0 {
		if v < p.start || v > p.end {
			return false
		}
	} else {
		if v > p.start || v < p.end {
			return false
		}
	}
	return stepperFor[N]().divides(p.start, p.inc, v)
}

// Reversed 回傳走訪相同元素、順序相反的新級數：{Last(), start, -inc}。
// 空級數反轉後仍為空。receiver 不變。
func (p Progression[N]) Reversed() Progression[N] {
	if p.IsEmpty() {
		return Progression[N]{start: p.end, end: p.start, inc: -p.inc}
	}
	return Progression[N]{start: p.Last(), end: p.start, inc: -p.inc}
}

// Step 回傳步長絕對值改為 magnitude 的新級數。
//
//   - magnitude 必須 > 0，否則回 InvalidArgument（errs.Warn 級）。
//   - 方向永遠沿用 receiver：Step 只縮放大小，不反向（反向請用 Reversed）。
func (p Progression[N]) Step(magnitude N) (Progression[N], error) {
	if !(magnitude > 0) { // 同時擋掉 NaN
		return Progression[N]{}, errs.Warnf("step magnitude must be positive, got %v", magnitude)
	}
	inc := magnitude
	if p.inc < 0 {
		inc = -magnitude
	}
	return Progression[N]{start: p.start, end: p.end, inc: inc}, nil
}

// Equal 回報兩個級數是否走訪完全相同的序列。
// 兩個空級數相等；非空時比 first/last/inc（三者唯一決定序列）。
func (p Progression[N]) Equal(o Progression[N]) bool {
	pe, oe := p.IsEmpty(), o.IsEmpty()
	if pe || oe {
		return pe == oe
	}
	return p.start == o.start && p.Last() == o.Last() && p.inc == o.inc
}

func (p Progression[N]) String() string {
	if p.inc < 0 {
		if mag := -p.inc; mag != 1 {
			return fmt.Sprintf("%v downTo %v step %v", p.start, p.end, mag)
		}
		return fmt.Sprintf("%v downTo %v", p.start, p.end)
	}
	if p.inc == 1 {
		return fmt.Sprintf("%v..%v", p.start, p.end)
	}
	return fmt.Sprintf("%v..%v step %v", p.start, p.end, p.inc)
}
