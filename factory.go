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

// To 建立閉範圍 [a, b]，步長為單位步。
// 純函數、永遠成功：a > b 時得到合法的空範圍。
func To[N Number](a, b N) Range[N] {
	return Range[N]{
		iv: Between(a, b),
		pr: Progression[N]{start: a, end: b, inc: stepperFor[N]().unit()},
	}
}

// DownTo 建立遞減級數 a, a-1, ..., 直到不低於 b。
// 純函數、永遠成功：a < b 時得到合法的空級數。
func DownTo[N Number](a, b N) Progression[N] {
	return Progression[N]{start: a, end: b, inc: -stepperFor[N]().unit()}
}
