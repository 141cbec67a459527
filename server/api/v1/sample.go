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
	"crypto/rand"
	"encoding/json"
	"math"
	"math/big"
	"net/http"

	"github.com/zintix-labs/rangelab/dto"
	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/sdk/core"
	"github.com/zintix-labs/rangelab/server/httperr"
)

// Sample 對 range 做均勻取樣並回傳統計報表（POST 限定）。
//
// seed 合約：
//   - 有給 seed：deterministic，同 seed 同報表（可回放）。
//   - 沒給 seed：以 crypto/rand 自動生成，回應中不保證可重現。
func (h *SampleHandler) Sample(w http.ResponseWriter, q *http.Request) {
	if q.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, err := dto.DecodeSampleRequest(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seed, err := resolveSeed(req.Seed)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	result, err := dto.Sample(req, h.fac.New(seed), false)
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

// resolveSeed 解析 seed。
//   - nil：自動生成（crypto/rand），方便快速測試。
//   - 非 nil：直接採用，deterministic。
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	return randomSeed()
}

// randomSeed 使用 crypto/rand 產生 [0, MaxInt64) 的種子。
// 目的：避免 math/rand 的 deterministic 來源造成 seed 品質偏差。
func randomSeed() (int64, error) {
	rnd, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, errs.NewWarn("seed generate failed")
	}
	return rnd.Int64(), nil
}

// ============================================================
// ** SampleHandler **
// ============================================================

type SampleHandler struct {
	fac core.Factory
}

func NewSampleHandler(fac core.Factory) (*SampleHandler, error) {
	if fac == nil {
		fac = core.Default()
	}
	return &SampleHandler{fac: fac}, nil
}
