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

package stats

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// Render 回傳報表的方框表格字串。
func (r *Report) Render() string {
	p := message.NewPrinter(lang)
	if r.Empty {
		return fmtTable("Progression Report", []string{"Expr", "Empty"}, map[string]string{
			"Expr":  r.Expr,
			"Empty": "true",
		})
	}
	msg := map[string]string{
		"Expr":  r.Expr,
		"Count": p.Sprintf("%d", r.Count),
		"First": p.Sprintf("%g", r.First),
		"Last":  p.Sprintf("%g", r.Last),
		"Inc":   p.Sprintf("%g", r.Inc),
		"Min":   p.Sprintf("%g", r.Min),
		"Max":   p.Sprintf("%g", r.Max),
		"Sum":   p.Sprintf("%g", r.Sum),
		"Mean":  p.Sprintf("%g", r.Mean),
	}
	keys := []string{"Expr", "Count", "First", "Last", "Inc", "Min", "Max", "Sum", "Mean"}
	return fmtTable("Progression Report", keys, msg)
}

// StdOut 直接把報表印到標準輸出。
func (r *Report) StdOut() {
	fmt.Print(r.Render())
}

// Render 回傳取樣報表的方框表格字串。
func (sr *SampleReport) Render() string {
	p := message.NewPrinter(lang)
	msg := map[string]string{
		"Expr":        sr.Expr,
		"Samples":     p.Sprintf("%d", sr.N),
		"Mean":        p.Sprintf("%.4f", sr.Mean),
		"Mean 95% CI": p.Sprintf("[%.4f, %.4f]", sr.MeanCI.Lo, sr.MeanCI.Hi),
		"Std":         p.Sprintf("%.4f", sr.Std),
		"P10":         p.Sprintf("%.4f", sr.P10),
		"P50":         p.Sprintf("%.4f", sr.P50),
		"P90":         p.Sprintf("%.4f", sr.P90),
	}
	keys := []string{"Expr", "Samples", "Mean", "Mean 95% CI", "Std", "P10", "P50", "P90"}
	return fmtTable("Sample Report", keys, msg)
}

// StdOut 直接把取樣報表印到標準輸出。
func (sr *SampleReport) StdOut() {
	fmt.Print(sr.Render())
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider

	return fmtStr
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
