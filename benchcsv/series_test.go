// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import "testing"

func TestCollectionAdd(t *testing.T) {
	var c Collection
	c.Add("b", []string{"1"}, []float64{1})
	c.Add("a", []string{"1"}, []float64{2})
	c.Add("b", []string{"2"}, []float64{3})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if k, s := c.At(0); k != "b" || s.Len() != 2 {
		t.Errorf("At(0) = %q with %d points, want b with 2", k, s.Len())
	}
	if k, s := c.At(1); k != "a" || s.Len() != 1 {
		t.Errorf("At(1) = %q with %d points, want a with 1", k, s.Len())
	}
}

func TestCollectionAddMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add with mismatched lengths did not panic")
		}
	}()
	var c Collection
	c.Add("k", []string{"1", "2"}, []float64{1})
}
