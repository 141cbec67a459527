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

// Package stats 提供級數/範圍的敘述統計：
//
//   - Describe：等差級數的閉式（closed-form）統計——不迭代任何元素，
//     count/sum/mean 直接用等差級數公式算，兆級元素也一樣 O(1)。
//   - Sample：對 Range 做均勻隨機取樣的經驗統計（gonum），
//     用來對巨大範圍「看個大概」而不用物化它。
package stats

import (
	"math"

	"github.com/zintix-labs/rangelab"
)

// CI 信賴區間
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// Report 是級數的閉式敘述統計。
//
// 數值欄位一律以 float64 敘事：int64 極值附近會有浮點精度損失，
// 這是「報表」不是「帳本」——精確值請直接用 Progression 的 First/Last/Count。
type Report struct {
	Expr  string  `json:"Expr"`
	Empty bool    `json:"Empty"`
	Count uint64  `json:"Count"`
	First float64 `json:"First"`
	Last  float64 `json:"Last"`
	Inc   float64 `json:"Inc"`
	Min   float64 `json:"Min"`
	Max   float64 `json:"Max"`
	Sum   float64 `json:"Sum"`
	Mean  float64 `json:"Mean"`
}

// Describe 回傳級數的閉式統計。空級數回傳 Empty=true 的報表（不是錯誤）。
func Describe[N rangelab.Number](p rangelab.Progression[N]) *Report {
	r := &Report{Expr: p.String()}
	if p.IsEmpty() {
		r.Empty = true
		return r
	}
	n := p.Count()
	first := float64(p.First())
	last := float64(p.Last())
	inc := float64(p.Inc())

	r.Count = n
	r.First = first
	r.Last = last
	r.Inc = inc
	r.Min = math.Min(first, last)
	r.Max = math.Max(first, last)
	// 等差級數和：n * (first + last) / 2
	fn := float64(n)
	r.Sum = fn * (first + last) / 2
	r.Mean = (first + last) / 2
	return r
}

// DescribeRange 是 Describe 的 Range 便利版。
func DescribeRange[N rangelab.Number](r rangelab.Range[N]) *Report {
	return Describe(r.Progression())
}
