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
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/zintix-labs/rangelab/catalog"
	"github.com/zintix-labs/rangelab/dto"
	"github.com/zintix-labs/rangelab/server/svrcfg"
)

func testCfg(t *testing.T) *svrcfg.SvrCfg {
	t.Helper()
	cat, err := catalog.New(fstest.MapFS{
		"dice.yaml": &fstest.MapFile{Data: []byte(
			"name: dice\nkind: int8\nstart: \"1\"\nend: \"6\"\n")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.Register(catalog.Entry{Name: "dice", ConfigName: "dice.yaml"}); err != nil {
		t.Fatal(err)
	}
	cat.Freeze()
	cfg := &svrcfg.SvrCfg{Catalog: cat, MaxElements: 100}
	if err := cfg.Vaild(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestEvalHandlerGET(t *testing.T) {
	h, err := NewEvalHandler(testCfg(t))
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	h.Eval(w, httptest.NewRequest(http.MethodGet, "/v1/eval?kind=int&start=1&end=4", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	resp := new(dto.EvalResponse)
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatal(err)
	}
	if resp.Expr != "1..4" || resp.Count != 4 || len(resp.Elements) != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEvalHandlerBadKind(t *testing.T) {
	h, err := NewEvalHandler(testCfg(t))
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	h.Eval(w, httptest.NewRequest(http.MethodGet, "/v1/eval?kind=uint8&start=1&end=4", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestContainsHandler(t *testing.T) {
	h, err := NewEvalHandler(testCfg(t))
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	h.Contains(w, httptest.NewRequest(http.MethodGet, "/v1/contains?kind=int&start=1&end=10&step=3&value=7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	resp := new(dto.ContainsResponse)
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Contains || resp.Value != "7" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDescribeHandlerMethod(t *testing.T) {
	h, err := NewEvalHandler(testCfg(t))
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	h.Describe(w, httptest.NewRequest(http.MethodGet, "/v1/describe?kind=int&start=1&end=4", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestSampleHandlerDeterministicSeed(t *testing.T) {
	h, err := NewSampleHandler(nil)
	if err != nil {
		t.Fatal(err)
	}
	body := `{"kind":"int","start":"1","end":"6","n":500,"seed":42}`

	run := func() string {
		w := httptest.NewRecorder()
		h.Sample(w, httptest.NewRequest(http.MethodPost, "/v1/sample", strings.NewReader(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
		return w.Body.String()
	}
	if run() != run() {
		t.Fatalf("same seed must reproduce the same report")
	}
}

func TestPresetHandler(t *testing.T) {
	h, err := NewPresetHandler(testCfg(t))
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.Presets(w, httptest.NewRequest(http.MethodGet, "/v1/presets", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var names []string
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "dice" {
		t.Fatalf("unexpected names: %v", names)
	}

	w = httptest.NewRecorder()
	h.Preset(w, httptest.NewRequest(http.MethodGet, "/v1/preset?name=dice", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	resp := new(dto.EvalResponse)
	if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
		t.Fatal(err)
	}
	if resp.Kind != "int8" || resp.Count != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = httptest.NewRecorder()
	h.Preset(w, httptest.NewRequest(http.MethodGet, "/v1/preset?name=ghost", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown preset, got %d", w.Code)
	}
}
