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

// Package index 提供主頁（landing page）：列出可用的 API endpoints。
package index

import "net/http"

const indexHTML = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>rangelab</title></head>
<body>
<h1>rangelab</h1>
<p>Range / progression evaluation service.</p>
<ul>
  <li><code>GET|POST /v1/eval</code> — evaluate a range/progression (kind, start, end, step, down, limit)</li>
  <li><code>GET|POST /v1/contains</code> — membership query (adds value)</li>
  <li><code>POST /v1/describe</code> — closed-form statistics report</li>
  <li><code>POST /v1/sample</code> — uniform sampling statistics (n, seed)</li>
  <li><code>GET /v1/presets</code> — registered preset names</li>
  <li><code>GET /v1/preset?name=...</code> — evaluate a named preset</li>
</ul>
</body>
</html>
`

// IndexHandlerFn 回傳主頁 HTML。
func IndexHandlerFn(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}
