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

package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/rangelab/catalog"
	"github.com/zintix-labs/rangelab/dto"
	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/server/httperr"
	"github.com/zintix-labs/rangelab/server/svrcfg"
)

// Presets 列出已登記的 preset 名稱（GET 限定）。
func (h *PresetHandler) Presets(w http.ResponseWriter, q *http.Request) {
	if q.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.cat.Names()); err != nil {
		httperr.Errs(w, err)
		return
	}
}

// Preset 讀取具名 preset 並評估（GET 限定；?name= 必填，?limit= 選填）。
func (h *PresetHandler) Preset(w http.ResponseWriter, q *http.Request) {
	if q.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := q.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	p, err := h.cat.PresetByName(name)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	limit := 0
	if s := q.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid limit value", http.StatusBadRequest)
			return
		}
		limit = n
	}

	result, err := dto.Eval(dto.FromPreset(p, limit), h.maxElements)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		httperr.Errs(w, err)
		return
	}
}

// ============================================================
// ** PresetHandler **
// ============================================================

type PresetHandler struct {
	cat         *catalog.Catalog
	maxElements int
}

func NewPresetHandler(sCfg *svrcfg.SvrCfg) (*PresetHandler, error) {
	if sCfg == nil || sCfg.Catalog == nil {
		return nil, errs.NewFatal("build preset handler error: nil catalog")
	}
	return &PresetHandler{cat: sCfg.Catalog, maxElements: sCfg.MaxElements}, nil
}
