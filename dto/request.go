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

package dto

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/zintix-labs/rangelab/catalog"
	"github.com/zintix-labs/rangelab/errs"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// EvalRequest 描述一個要評估的 range/progression。
//
// start/end/step 以字串承載（query string 本來就是字串；JSON 也請用字串），
// 原因同 catalog.Preset：JSON number 走 float64，int64 極值會掉精度。
// step 是「正的絕對值」；方向由 down 決定，與核心 API 的 Step 合約一致。
type EvalRequest struct {
	Kind  string `json:"kind"`
	Start string `json:"start"`
	End   string `json:"end"`
	Step  string `json:"step,omitempty"`
	Down  bool   `json:"down,omitempty"`
	Limit int    `json:"limit,omitempty"` // 回傳元素數上限；0 = server 預設
}

// ContainsRequest 是 membership 查詢：value 是否為該 range/progression 的成員。
type ContainsRequest struct {
	EvalRequest
	Value string `json:"value"`
}

// SampleRequest 是取樣統計請求。seed 省略時由 server 以 crypto/rand 產生。
type SampleRequest struct {
	EvalRequest
	N    int    `json:"n"`
	Seed *int64 `json:"seed,omitempty"`
}

// DecodeEvalRequest 會把 HTTP 請求解碼成 EvalRequest。
//
// 支援：
//   - GET：從 query string 讀取參數（kind/start/end/step/down/limit）。
//   - POST：從 JSON body 反序列化。
//
// 注意：
//   - 這裡只負責「解碼（decode）」與基本型別轉換，不做數值合法性校驗；
//     kind dispatch 與端點解析由 Eval* 系列依 kind 決定。
//   - 為避免過大 body 影響服務，POST 會對 body 做大小限制（預設 1MiB）。
//   - POST 會開啟 DisallowUnknownFields()，對未知欄位採用嚴格拒絕，以避免靜默丟資料。
func DecodeEvalRequest(r *http.Request) (*EvalRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(EvalRequest)
	switch r.Method {
	case http.MethodGet:
		if err := req.fromQuery(r); err != nil {
			return nil, err
		}
		return req, nil
	case http.MethodPost:
		if err := decodeJSONBody(r, req); err != nil {
			return nil, err
		}
		return req, nil
	default:
		return nil, errs.NewWarn("method not allowed: " + r.Method)
	}
}

// DecodeContainsRequest 同 DecodeEvalRequest，外加 value 欄位。
func DecodeContainsRequest(r *http.Request) (*ContainsRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	req := new(ContainsRequest)
	switch r.Method {
	case http.MethodGet:
		if err := req.EvalRequest.fromQuery(r); err != nil {
			return nil, err
		}
		req.Value = r.URL.Query().Get("value")
		if req.Value == "" {
			return nil, errs.NewWarn("value is required")
		}
		return req, nil
	case http.MethodPost:
		if err := decodeJSONBody(r, req); err != nil {
			return nil, err
		}
		if req.Value == "" {
			return nil, errs.NewWarn("value is required")
		}
		return req, nil
	default:
		return nil, errs.NewWarn("method not allowed: " + r.Method)
	}
}

// DecodeSampleRequest 解碼取樣請求（POST 限定：seed/n 屬於會變動結果的參數，
// 不鼓勵被 proxy/cache 的 GET 載體）。
func DecodeSampleRequest(r *http.Request) (*SampleRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}
	if r.Method != http.MethodPost {
		return nil, errs.NewWarn("method not allowed: " + r.Method)
	}
	req := new(SampleRequest)
	if err := decodeJSONBody(r, req); err != nil {
		return nil, err
	}
	return req, nil
}

// FromPreset 把 catalog 的 preset 轉成 EvalRequest。
func FromPreset(p *catalog.Preset, limit int) *EvalRequest {
	return &EvalRequest{
		Kind:  p.Kind,
		Start: p.Start,
		End:   p.End,
		Step:  p.Step,
		Down:  p.Down,
		Limit: limit,
	}
}

func (req *EvalRequest) fromQuery(r *http.Request) error {
	q := r.URL.Query()
	req.Kind = q.Get("kind")
	req.Start = q.Get("start")
	req.End = q.Get("end")
	req.Step = q.Get("step")

	if s := q.Get("down"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return errs.NewWarn("invalid down value " + err.Error())
		}
		req.Down = v
	}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return errs.NewWarn("invalid limit value " + err.Error())
		}
		req.Limit = v
	}
	return nil
}

func decodeJSONBody(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() { _, _ = io.Copy(io.Discard, body) }()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errs.NewWarn("invalid json: " + err.Error())
	}
	// 只允許單一 JSON document
	if dec.More() {
		return errs.NewWarn("invalid json: trailing data")
	}
	return nil
}
