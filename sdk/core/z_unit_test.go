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

package core

import (
	"math"
	"testing"
)

func TestCoreDeterminism(t *testing.T) {
	c1 := Default().New(7)
	c2 := Default().New(7)
	for i := 0; i < 5; i++ {
		if c1.Uint64() != c2.Uint64() {
			t.Fatalf("Uint64 mismatch at %d", i)
		}
	}
	if c1.IntN(10) != c2.IntN(10) {
		t.Fatalf("IntN mismatch")
	}
	if c1.Uint64N(10) != c2.Uint64N(10) {
		t.Fatalf("Uint64N mismatch")
	}
}

func TestSeedsDiverge(t *testing.T) {
	c1 := NewPCG64(1)
	c2 := NewPCG64(2)
	same := 0
	for i := 0; i < 16; i++ {
		if c1.Uint64() == c2.Uint64() {
			same++
		}
	}
	if same == 16 {
		t.Fatalf("adjacent seeds produced identical streams")
	}
}

func TestUint64NBounds(t *testing.T) {
	c := NewPCG64(11)
	if got := c.Uint64N(0); got != 0 {
		t.Fatalf("expected 0 for n=0, got %d", got)
	}
	for _, n := range []uint64{1, 2, 7, 8, 1000} {
		for i := 0; i < 200; i++ {
			if got := c.Uint64N(n); got >= n {
				t.Fatalf("Uint64N(%d) out of bound: %d", n, got)
			}
		}
	}
}

func TestIntNBounds(t *testing.T) {
	c := NewPCG64(13)
	if got := c.IntN(0); got != -1 {
		t.Fatalf("expected -1 for n=0, got %d", got)
	}
	if got := c.IntN(-5); got != -1 {
		t.Fatalf("expected -1 for n<0, got %d", got)
	}
	for i := 0; i < 200; i++ {
		if got := c.IntN(6); got < 0 || got > 5 {
			t.Fatalf("IntN(6) out of bound: %d", got)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	c := NewPCG64(17)
	for i := 0; i < 1000; i++ {
		v := c.Float64()
		if v < 0 || v >= 1 || math.IsNaN(v) {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}
