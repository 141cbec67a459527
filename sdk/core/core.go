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

// Package core 提供 rangelab 取樣所需的亂數來源（PRNG）。
//
// Range.Random 與 stats.Sample 都吃 RAND 介面，不綁定實作：
// 預設實作是 PCG64（見 pcg64.go），測試可注入固定 seed 取得可重現序列。
package core

// RAND 定義核心亂數取樣能力。
//
// 為什麼要求 Uint64N 而不是只要求 Uint64？
// bounded 生成的無偏實作（乘法高位 + 拒絕採樣）應由 PRNG 自己決定 fast path，
// 而不是讓每個呼叫端重抄一次 debiasing。
type RAND interface {
	// Uint64 回傳 uint64 亂數。
	Uint64() uint64
	// Uint64N 回傳 [0,n) 的 uint64 亂數，若 n == 0 回傳 0。
	Uint64N(n uint64) uint64
	// IntN 回傳 [0,n) 的 int 亂數，若 n <= 0 回傳 -1。
	IntN(n int) int
	// Float64 回傳 [0,1) 的浮點亂數。
	Float64() float64
}

// Factory 以指定 seed 建立新的 RAND。
//
// 合約（很重要）：同一實作、同一版本下 New(seed) 必須是決定性的——
// 相同 seed 產生相同輸出序列。rangelab 的取樣測試與 API 的 seed 參數都依賴這點。
type Factory interface {
	New(seed int64) RAND
}

// DefaultFactory 以 PCG64 實作 Factory。
type DefaultFactory struct{}

// New 滿足合約。
func (DefaultFactory) New(seed int64) RAND {
	return NewPCG64(seed)
}

func Default() DefaultFactory {
	return DefaultFactory{}
}
