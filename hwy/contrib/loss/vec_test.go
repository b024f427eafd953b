// Copyright 2025 go-highway Authors
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

package loss

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestBinaryCrossEntropyVec(t *testing.T) {
	y := []float64{1, 0, 1, 1}
	p := []float64{0.4, 0.6, 0.9, 0.9}
	want, err := BinaryCrossEntropy(y, p)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("contiguous", func(t *testing.T) {
		got, err := BinaryCrossEntropyVec(mat.NewVecDense(4, y), mat.NewVecDense(4, p))
		if err != nil {
			t.Fatal(err)
		}
		if !sameFloat(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("strided column views", func(t *testing.T) {
		// Column 0 holds the labels, column 1 the probabilities.
		m := mat.NewDense(4, 2, []float64{
			1, 0.4,
			0, 0.6,
			1, 0.9,
			1, 0.9,
		})
		got, err := BinaryCrossEntropyVec(m.ColView(0), m.ColView(1))
		if err != nil {
			t.Fatal(err)
		}
		if !sameFloat(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := BinaryCrossEntropyVec(mat.NewVecDense(2, []float64{1, 0}), mat.NewVecDense(1, []float64{0.5}))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("err = %v, want ErrLengthMismatch", err)
		}
		if !strings.Contains(err.Error(), "(2 != 1)") {
			t.Errorf("err = %q, want both lengths in the message", err)
		}
	})
}

func TestBinaryCrossEntropyXLogYVec(t *testing.T) {
	got, err := BinaryCrossEntropyXLogYVec(mat.NewVecDense(2, []float64{1, 0}), mat.NewVecDense(2, []float64{1, 0}))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}

	strict, err := BinaryCrossEntropyVec(mat.NewVecDense(2, []float64{1, 0}), mat.NewVecDense(2, []float64{1, 0}))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(strict) {
		t.Errorf("strict got %v, want NaN", strict)
	}
}
