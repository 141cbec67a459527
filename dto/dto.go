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

// Package dto 是 HTTP 邊界的資料轉換層：
// 把字串化的請求（kind/start/end/step）依 kind 分派到核心的泛型型別上，
// 再把結果整理成可序列化的回應。
//
// kind dispatch 只存在這一層：核心（rangelab）永遠是泛型，
// handler（server/api）永遠只看非泛型的 request/response struct。
package dto

import (
	"strconv"
	"strings"

	"github.com/zintix-labs/rangelab"
	"github.com/zintix-labs/rangelab/errs"
	"github.com/zintix-labs/rangelab/sdk/core"
	"github.com/zintix-labs/rangelab/stats"

	"golang.org/x/exp/constraints"
)

// EvalResponse 是 range/progression 評估結果。
//
// first/last/elements 以字串回傳，理由同 EvalRequest：int64 無損往返。
type EvalResponse struct {
	Expr      string   `json:"expr"`
	Kind      string   `json:"kind"`
	Empty     bool     `json:"empty"`
	Count     uint64   `json:"count"`
	First     string   `json:"first,omitempty"`
	Last      string   `json:"last,omitempty"`
	Elements  []string `json:"elements,omitempty"`
	Truncated bool     `json:"truncated,omitempty"` // elements 被 limit 截斷
}

// ContainsResponse 是 membership 查詢結果。
type ContainsResponse struct {
	Expr     string `json:"expr"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Contains bool   `json:"contains"`
}

// -----------------------------------------------------------------------------
//  kind dispatch
// -----------------------------------------------------------------------------

// codec 是單一 kind 的字串編解碼。
type codec[N rangelab.Number] struct {
	kind   string
	parse  func(string) (N, error)
	format func(N) string
}

func signedCodec[N constraints.Signed](kind string, bits int) codec[N] {
	return codec[N]{
		kind: kind,
		parse: func(s string) (N, error) {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
			return N(v), err
		},
		format: func(v N) string { return strconv.FormatInt(int64(v), 10) },
	}
}

func floatCodec[N constraints.Float](kind string, bits int) codec[N] {
	return codec[N]{
		kind: kind,
		parse: func(s string) (N, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
			return N(v), err
		},
		format: func(v N) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) },
	}
}

// Eval 依 kind 評估 range/progression。maxElements 是 server 設定的元素回傳上限。
func Eval(req *EvalRequest, maxElements int) (*EvalResponse, error) {
	switch normKind(req.Kind) {
	case "int":
		return evalAs(req, signedCodec[int]("int", strconv.IntSize), maxElements)
	case "int8":
		return evalAs(req, signedCodec[int8]("int8", 8), maxElements)
	case "int16":
		return evalAs(req, signedCodec[int16]("int16", 16), maxElements)
	case "int32":
		return evalAs(req, signedCodec[int32]("int32", 32), maxElements)
	case "int64":
		return evalAs(req, signedCodec[int64]("int64", 64), maxElements)
	case "float32":
		return evalAs(req, floatCodec[float32]("float32", 32), maxElements)
	case "float64":
		return evalAs(req, floatCodec[float64]("float64", 64), maxElements)
	default:
		return nil, errs.Warnf("unsupported kind: %q", req.Kind)
	}
}

// Contains 依 kind 執行 membership 查詢。
// 有 step/down 時用 progression 格點語意，否則用閉區間語意（兩者對單位步等價）。
func Contains(req *ContainsRequest) (*ContainsResponse, error) {
	switch normKind(req.Kind) {
	case "int":
		return containsAs(req, signedCodec[int]("int", strconv.IntSize))
	case "int8":
		return containsAs(req, signedCodec[int8]("int8", 8))
	case "int16":
		return containsAs(req, signedCodec[int16]("int16", 16))
	case "int32":
		return containsAs(req, signedCodec[int32]("int32", 32))
	case "int64":
		return containsAs(req, signedCodec[int64]("int64", 64))
	case "float32":
		return containsAs(req, floatCodec[float32]("float32", 32))
	case "float64":
		return containsAs(req, floatCodec[float64]("float64", 64))
	default:
		return nil, errs.Warnf("unsupported kind: %q", req.Kind)
	}
}

// Describe 依 kind 回傳閉式統計報表。
func Describe(req *EvalRequest) (*stats.Report, error) {
	switch normKind(req.Kind) {
	case "int":
		return describeAs(req, signedCodec[int]("int", strconv.IntSize))
	case "int8":
		return describeAs(req, signedCodec[int8]("int8", 8))
	case "int16":
		return describeAs(req, signedCodec[int16]("int16", 16))
	case "int32":
		return describeAs(req, signedCodec[int32]("int32", 32))
	case "int64":
		return describeAs(req, signedCodec[int64]("int64", 64))
	case "float32":
		return describeAs(req, floatCodec[float32]("float32", 32))
	case "float64":
		return describeAs(req, floatCodec[float64]("float64", 64))
	default:
		return nil, errs.Warnf("unsupported kind: %q", req.Kind)
	}
}

// Sample 依 kind 對「單位步長、遞增」的 range 做取樣統計。
// step/down 請求直接拒絕：Random 的均勻性合約定義在 Range 上。
// showpb 控制進度條（server 端請傳 false）。
func Sample(req *SampleRequest, rng core.RAND, showpb bool) (*stats.SampleReport, error) {
	if req.Down || strings.TrimSpace(req.Step) != "" {
		return nil, errs.NewWarn("sample supports plain ranges only (no step/down)")
	}
	switch normKind(req.Kind) {
	case "int":
		return sampleAs(req, signedCodec[int]("int", strconv.IntSize), rng, showpb)
	case "int8":
		return sampleAs(req, signedCodec[int8]("int8", 8), rng, showpb)
	case "int16":
		return sampleAs(req, signedCodec[int16]("int16", 16), rng, showpb)
	case "int32":
		return sampleAs(req, signedCodec[int32]("int32", 32), rng, showpb)
	case "int64":
		return sampleAs(req, signedCodec[int64]("int64", 64), rng, showpb)
	case "float32":
		return sampleAs(req, floatCodec[float32]("float32", 32), rng, showpb)
	case "float64":
		return sampleAs(req, floatCodec[float64]("float64", 64), rng, showpb)
	default:
		return nil, errs.Warnf("unsupported kind: %q", req.Kind)
	}
}

func normKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// -----------------------------------------------------------------------------
//  泛型實作
// -----------------------------------------------------------------------------

func buildProg[N rangelab.Number](req *EvalRequest, c codec[N]) (rangelab.Progression[N], error) {
	var zero rangelab.Progression[N]
	start, err := c.parse(req.Start)
	if err != nil {
		return zero, errs.Warnf("invalid start %q for kind %s", req.Start, c.kind)
	}
	end, err := c.parse(req.End)
	if err != nil {
		return zero, errs.Warnf("invalid end %q for kind %s", req.End, c.kind)
	}

	var p rangelab.Progression[N]
	if req.Down {
		p = rangelab.DownTo(start, end)
	} else {
		p = rangelab.To(start, end).Progression()
	}

	if strings.TrimSpace(req.Step) != "" {
		mag, err := c.parse(req.Step)
		if err != nil {
			return zero, errs.Warnf("invalid step %q for kind %s", req.Step, c.kind)
		}
		p, err = p.Step(mag)
		if err != nil {
			return zero, err
		}
	}
	return p, nil
}

func evalAs[N rangelab.Number](req *EvalRequest, c codec[N], maxElements int) (*EvalResponse, error) {
	p, err := buildProg(req, c)
	if err != nil {
		return nil, err
	}
	resp := &EvalResponse{
		Expr:  p.String(),
		Kind:  c.kind,
		Empty: p.IsEmpty(),
		Count: p.Count(),
	}
	if resp.Empty {
		return resp, nil
	}
	resp.First = c.format(p.First())
	resp.Last = c.format(p.Last())

	limit := req.Limit
	if limit <= 0 || limit > maxElements {
		limit = maxElements
	}
	elements := make([]string, 0, min(uint64(limit), resp.Count))
	for v := range p.All() {
		if len(elements) >= limit {
			resp.Truncated = true
			break
		}
		elements = append(elements, c.format(v))
	}
	resp.Elements = elements
	return resp, nil
}

func containsAs[N rangelab.Number](req *ContainsRequest, c codec[N]) (*ContainsResponse, error) {
	p, err := buildProg(&req.EvalRequest, c)
	if err != nil {
		return nil, err
	}
	v, err := c.parse(req.Value)
	if err != nil {
		return nil, errs.Warnf("invalid value %q for kind %s", req.Value, c.kind)
	}
	return &ContainsResponse{
		Expr:     p.String(),
		Kind:     c.kind,
		Value:    req.Value,
		Contains: p.Contains(v),
	}, nil
}

func describeAs[N rangelab.Number](req *EvalRequest, c codec[N]) (*stats.Report, error) {
	p, err := buildProg(req, c)
	if err != nil {
		return nil, err
	}
	return stats.Describe(p), nil
}

func sampleAs[N rangelab.Number](req *SampleRequest, c codec[N], rng core.RAND, showpb bool) (*stats.SampleReport, error) {
	start, err := c.parse(req.Start)
	if err != nil {
		return nil, errs.Warnf("invalid start %q for kind %s", req.Start, c.kind)
	}
	end, err := c.parse(req.End)
	if err != nil {
		return nil, errs.Warnf("invalid end %q for kind %s", req.End, c.kind)
	}
	return stats.Sample(rangelab.To(start, end), req.N, rng, showpb)
}
