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

package demo_presets

import (
	"embed"

	"github.com/zintix-labs/rangelab/catalog"
)

// FS provides embedded default preset YAMLs for external usage.
//
//go:embed *.yaml
var FS embed.FS

// Entries 回傳預設 preset 的登記資訊（名稱 → 檔名），與 FS 搭配交給 catalog.Register。
func Entries() []catalog.Entry {
	return []catalog.Entry{
		{Name: "percent", ConfigName: "percent.yaml"},
		{Name: "dice", ConfigName: "dice.yaml"},
		{Name: "countdown", ConfigName: "countdown.yaml"},
		{Name: "unit-grid", ConfigName: "unit_grid.yaml"},
		{Name: "int64-edge", ConfigName: "int64_edge.yaml"},
	}
}
