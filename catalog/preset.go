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

package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zintix-labs/rangelab/errs"

	"gopkg.in/yaml.v3"
)

// Preset 是一個具名 range 的宣告：kind + 端點 + 步長。
//
// 端點與步長以字串承載：JSON/YAML 的 number 走 float64，int64 極值會掉精度，
// 字串讓 int64 端點（例如 overflow 邊界測試用的 max int64）能無損往返；
// 真正的數值解析由 API 邊界（dto）依 kind 執行。
type Preset struct {
	Name  string `yaml:"name"           json:"name"`
	Kind  string `yaml:"kind"           json:"kind"`
	Start string `yaml:"start"          json:"start"`
	End   string `yaml:"end"            json:"end"`
	Step  string `yaml:"step,omitempty" json:"step,omitempty"` // 正的絕對值；空 = 單位步
	Down  bool   `yaml:"down,omitempty" json:"down,omitempty"` // true = 由 start 遞減到 end
	Desc  string `yaml:"desc,omitempty" json:"desc,omitempty"`
}

// 支援的數值 kind。與 dto 的 dispatch 對齊；unsigned 不在列
// （遞減步進無法在 unsigned 元素型別內表示）。
var kinds = map[string]struct{}{
	"int":     {},
	"int8":    {},
	"int16":   {},
	"int32":   {},
	"int64":   {},
	"float32": {},
	"float64": {},
}

// ValidKind 回報 kind 字串是否為支援的數值型別。
func ValidKind(kind string) bool {
	_, ok := kinds[strings.ToLower(strings.TrimSpace(kind))]
	return ok
}

// valid 執行最基本的設定檔檢查；數值解析留給 API 邊界依 kind 處理。
func (p *Preset) valid() error {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))

	if p.Name == "" {
		return errs.NewFatal("preset: empty name")
	}
	if !ValidKind(p.Kind) {
		return errs.NewFatal(fmt.Sprintf("preset %s: unsupported kind %q", p.Name, p.Kind))
	}
	if strings.TrimSpace(p.Start) == "" || strings.TrimSpace(p.End) == "" {
		return errs.NewFatal(fmt.Sprintf("preset %s: start and end are required", p.Name))
	}
	return nil
}

// GetPresetByYAML 解析 YAML 並執行基本檢查。
func GetPresetByYAML(raw []byte) (*Preset, error) {
	p := new(Preset)
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, errs.Wrap(err, "preset yaml unmarshal error")
	}
	if err := p.valid(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPresetByJSON 解析 JSON 並執行基本檢查。
func GetPresetByJSON(raw []byte) (*Preset, error) {
	p := new(Preset)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, errs.Wrap(err, "preset json unmarshal error")
	}
	if err := p.valid(); err != nil {
		return nil, err
	}
	return p, nil
}

func parsePresetByExt(filename string, raw []byte) (*Preset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return GetPresetByYAML(raw)
	case ".json":
		return GetPresetByJSON(raw)
	default:
		return nil, errs.NewFatal(fmt.Sprintf("unsupported config format: %q", filename))
	}
}
