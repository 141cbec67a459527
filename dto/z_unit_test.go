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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zintix-labs/rangelab/catalog"
	"github.com/zintix-labs/rangelab/sdk/core"
)

func TestDecodeEvalRequestGET(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/eval?kind=int&start=1&end=10&step=3&down=false&limit=5", nil)
	req, err := DecodeEvalRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Kind != "int" || req.Start != "1" || req.End != "10" || req.Step != "3" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Down || req.Limit != 5 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeEvalRequestPOST(t *testing.T) {
	payload := map[string]any{
		"kind":  "int64",
		"start": "9223372036854775805",
		"end":   "9223372036854775807",
	}
	data, _ := json.Marshal(payload)
	r := httptest.NewRequest(http.MethodPost, "/eval", bytes.NewReader(data))
	req, err := DecodeEvalRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Start != "9223372036854775805" || req.End != "9223372036854775807" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDecodeEvalRequestRejectsUnknownFields(t *testing.T) {
	data := []byte(`{"kind":"int","start":"1","end":"4","bogus":true}`)
	r := httptest.NewRequest(http.MethodPost, "/eval", bytes.NewReader(data))
	if _, err := DecodeEvalRequest(r); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestDecodeEvalRequestRejectsTrailingData(t *testing.T) {
	data := []byte(`{"kind":"int","start":"1","end":"4"}{"kind":"int"}`)
	r := httptest.NewRequest(http.MethodPost, "/eval", bytes.NewReader(data))
	if _, err := DecodeEvalRequest(r); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestDecodeContainsRequestRequiresValue(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/contains?kind=int&start=1&end=4", nil)
	if _, err := DecodeContainsRequest(r); err == nil {
		t.Fatalf("expected error for missing value")
	}
}

func TestDecodeSampleRequestPOSTOnly(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/sample?kind=int&start=1&end=4&n=10", nil)
	if _, err := DecodeSampleRequest(r); err == nil {
		t.Fatalf("expected error for GET sample")
	}
}

func TestEvalBasic(t *testing.T) {
	req := &EvalRequest{Kind: "int", Start: "1", End: "4"}
	resp, err := Eval(req, 100)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Expr != "1..4" || resp.Count != 4 || resp.Empty {
		t.Fatalf("unexpected response: %+v", resp)
	}
	want := []string{"1", "2", "3", "4"}
	if len(resp.Elements) != 4 {
		t.Fatalf("unexpected elements: %v", resp.Elements)
	}
	for i := range want {
		if resp.Elements[i] != want[i] {
			t.Fatalf("unexpected elements: %v", resp.Elements)
		}
	}
	if resp.First != "1" || resp.Last != "4" || resp.Truncated {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEvalDownWithStep(t *testing.T) {
	req := &EvalRequest{Kind: "int", Start: "10", End: "1", Step: "4", Down: true}
	resp, err := Eval(req, 100)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Expr != "10 downTo 1 step 4" || resp.Count != 3 || resp.Last != "2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEvalInt64EdgeLossless(t *testing.T) {
	// int64 極值經 JSON float64 會掉精度；字串邊界必須無損
	req := &EvalRequest{Kind: "int64", Start: "9223372036854775805", End: "9223372036854775807"}
	resp, err := Eval(req, 100)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Count != 3 || resp.Last != "9223372036854775807" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Elements[0] != "9223372036854775805" {
		t.Fatalf("unexpected elements: %v", resp.Elements)
	}
}

func TestEvalTruncation(t *testing.T) {
	req := &EvalRequest{Kind: "int", Start: "1", End: "1000000"}
	resp, err := Eval(req, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Truncated || len(resp.Elements) != 10 {
		t.Fatalf("expected truncation at 10, got %d truncated=%v", len(resp.Elements), resp.Truncated)
	}
	if resp.Count != 1000000 {
		t.Fatalf("count must reflect the full progression: %d", resp.Count)
	}
}

func TestEvalEmpty(t *testing.T) {
	req := &EvalRequest{Kind: "int", Start: "4", End: "1"}
	resp, err := Eval(req, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Empty || resp.Count != 0 || len(resp.Elements) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEvalRejectsBadInput(t *testing.T) {
	cases := []*EvalRequest{
		{Kind: "uint8", Start: "1", End: "4"},
		{Kind: "int", Start: "abc", End: "4"},
		{Kind: "int", Start: "1", End: ""},
		{Kind: "int8", Start: "1", End: "999"}, // 超出 int8
		{Kind: "int", Start: "1", End: "10", Step: "0"},
		{Kind: "int", Start: "1", End: "10", Step: "-2"},
	}
	for i, req := range cases {
		if _, err := Eval(req, 100); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, req)
		}
	}
}

func TestContainsDispatch(t *testing.T) {
	req := &ContainsRequest{
		EvalRequest: EvalRequest{Kind: "int", Start: "1", End: "10", Step: "3"},
		Value:       "7",
	}
	resp, err := Contains(req)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Contains {
		t.Fatalf("expected 7 in 1..10 step 3")
	}

	req.Value = "8"
	resp, err = Contains(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Contains {
		t.Fatalf("expected 8 off-grid")
	}
}

func TestDescribeDispatch(t *testing.T) {
	req := &EvalRequest{Kind: "float64", Start: "0", End: "1", Step: "0.25"}
	rep, err := Describe(req)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Count != 5 || rep.Mean != 0.5 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestSampleDispatch(t *testing.T) {
	req := &SampleRequest{
		EvalRequest: EvalRequest{Kind: "int", Start: "1", End: "6"},
		N:           1000,
	}
	rep, err := Sample(req, core.NewPCG64(42), false)
	if err != nil {
		t.Fatal(err)
	}
	if rep.N != 1000 {
		t.Fatalf("unexpected n: %d", rep.N)
	}
	if rep.Mean < 2.5 || rep.Mean > 4.5 {
		t.Fatalf("dice mean out of plausible band: %v", rep.Mean)
	}
}

func TestSampleRejectsStepAndDown(t *testing.T) {
	rng := core.NewPCG64(1)
	req := &SampleRequest{
		EvalRequest: EvalRequest{Kind: "int", Start: "1", End: "10", Step: "2"},
		N:           10,
	}
	if _, err := Sample(req, rng, false); err == nil {
		t.Fatalf("expected error for step sample")
	}
	req = &SampleRequest{
		EvalRequest: EvalRequest{Kind: "int", Start: "10", End: "1", Down: true},
		N:           10,
	}
	if _, err := Sample(req, rng, false); err == nil {
		t.Fatalf("expected error for down sample")
	}
}

func TestFromPreset(t *testing.T) {
	p := &catalog.Preset{Name: "countdown", Kind: "int", Start: "10", End: "0", Down: true}
	req := FromPreset(p, 50)
	resp, err := Eval(req, 100)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Expr != "10 downTo 0" || resp.Count != 11 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
