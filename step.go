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

	"golang.org/x/exp/constraints"
)

// Number 是 Progression / Range 支援的數值型別集合。
//
// 只收 signed 整數與浮點數：
//   - unsigned 的「遞減步進」無法在元素型別內表示（increment 會是負數），
//     需要 unsigned 時請改用 Interval 做純 membership。
//   - 字串等其他 Ordered 型別同理：只有 Interval，沒有步進。
type Number interface {
	constraints.Signed | constraints.Float
}

// stepper 是每種數值 kind 的算術能力（capability seam）。
//
// Progression 只寫一次泛型邏輯，真正「怎麼加、怎麼算距離」由 stepper 決定：
//   - 整數 kind 共用一份補數寬化（two's complement widening）實作，
//     所有中間值都在 uint64 空間運算，永不越過元素型別的表示範圍。
//   - 浮點 kind 用平凡的 IEEE-754 算術（浮點不需要 overflow-safe，見 floatStepper）。
//
// 合約：除 unit() 外，呼叫端必須先保證 progression 非空（inc 與方向一致、無 NaN）。
type stepper[N Number] interface {
	// unit 回傳該型別的單位步長（整數 1 / 浮點 1.0）。
	unit() N

	// steps 回傳由 start 往 end 方向、以 inc 為步長時「可走的步數」，
	// 即 floor((end-start)/inc)；最後訪問值 = at(start, inc, steps)。
	// 超出 uint64 可表示範圍時飽和為 math.MaxUint64。
	steps(start, end, inc N) uint64

	// at 回傳 start + i*inc。整數實作保證精確且不觸碰越界中間值。
	at(start, inc N, i uint64) N

	// divides 回報 v 是否落在 start + k*inc (k>=0) 的格點上。
	// 呼叫端已先做過閉區間檢查；浮點 kind 不做格點判定，一律回 true。
	divides(start, inc, v N) bool
}

// isFloat 判斷 N 是否為浮點 kind。
// 用 1/2 的除法結果判斷（整數除法歸零），連 ~float32/~float64 的 named type 也正確。
func isFloat[N Number]() bool {
	return N(1)/N(2) != 0
}

func stepperFor[N Number]() stepper[N] {
	if isFloat[N]() {
		return floatStepper[N]{}
	}
	return intStepper[N]{}
}

// -----------------------------------------------------------------------------
//  整數 kind
// -----------------------------------------------------------------------------

// intStepper 以補數寬化處理所有 signed 整數寬度。
//
// 關鍵事實（overflow-safe 的根據）：
//   - Go 的 signed → uint64 轉換是 sign-extend（two's complement），
//     所以 uint64(end) - uint64(start) 的 wraparound 差值
//     正是任兩個同寬度整數的「真實無號距離」，uint64 必能精確表示。
//   - 反向截斷 uint64 → N 取低位，只要真值落在 N 的表示範圍內就精確還原。
//
// 因此 last/at 全程不會產生任何越界中間值，
// 不存在「end 是 MaxInt 時 cur += inc 繞回導致無窮迴圈」的經典 bug。
type intStepper[N Number] struct{}

func (intStepper[N]) unit() N { return 1 }

// intMag 回傳 inc 的絕對值（uint64）。
// 對 inc < 0：uint64(inc) 是補數表示，取負還原出正的絕對值；
// 連 MinInt64 都正確（|MinInt64| = 2^63 在 uint64 內可表示）。
func intMag[N Number](inc N) uint64 {
	if inc > 0 {
		return uint64(inc)
	}
	return -uint64(inc)
}

func (intStepper[N]) steps(start, end, inc N) uint64 {
	if inc > 0 {
		return (uint64(end) - uint64(start)) / uint64(inc)
	}
	return (uint64(start) - uint64(end)) / intMag(inc)
}

func (intStepper[N]) at(start, inc N, i uint64) N {
	// uint64 wraparound 乘加；真值保證在 N 的範圍內，截斷回 N 即精確結果。
	return N(uint64(start) + i*uint64(inc))
}

func (intStepper[N]) divides(start, inc, v N) bool {
	if inc > 0 {
		return (uint64(v)-uint64(start))%uint64(inc) == 0
	}
	return (uint64(start)-uint64(v))%intMag(inc) == 0
}

// -----------------------------------------------------------------------------
//  浮點 kind
// -----------------------------------------------------------------------------

// floatStepper 用平凡 IEEE-754 算術。
//
// 浮點不需要整數那套寬化：加法到達型別上限時飽和為 +Inf，不會繞回，
// 所以這裡只需要處理「步數超出 uint64」與 NaN 的防呆。
type floatStepper[N Number] struct{}

func (floatStepper[N]) unit() N { return 1 }

func (floatStepper[N]) steps(start, end, inc N) uint64 {
	f := math.Floor(float64((end - start) / inc))
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f >= float64(math.MaxUint64):
		// 步數飽和：span/inc 大到數不完（例如 ±MaxFloat64 配極小步長）。
		return math.MaxUint64
	default:
		return uint64(f)
	}
}

func (floatStepper[N]) at(start, inc N, i uint64) N {
	return start + N(float64(i))*inc
}

func (floatStepper[N]) divides(N, N, N) bool {
	// 浮點不做格點判定：repeated-add 的捨入會讓 % 判斷毫無意義。
	return true
}
