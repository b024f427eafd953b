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
	stdmath "math"

	"github.com/ajroetker/go-logloss/hwy"
)

// maxBlockLanes sizes the block buffers. The widest dispatch target has
// 64-byte registers, which hold 8 float64 lanes.
const maxBlockLanes = 8

// TermFunc evaluates the log-likelihood y*ln(p) + (1-y)*ln(1-p) of one sample.
type TermFunc func(y, p float64) float64

// StrictTerm follows IEEE-754 throughout, so 0 * -Inf is NaN.
//
// The explicit float64 conversions stop the compiler from fusing the
// products into the sum, which keeps arm64 and amd64 results identical.
func StrictTerm(y, p float64) float64 {
	return float64(y*stdmath.Log(p)) + float64((1-y)*stdmath.Log(1-p))
}

// XLogYTerm drops any product whose coefficient is exactly zero.
func XLogYTerm(y, p float64) float64 {
	var s float64
	if y != 0 {
		s = float64(y * stdmath.Log(p))
	}
	if c := 1 - y; c != 0 {
		s += float64(c * stdmath.Log(1-p))
	}
	return s
}

// BaseLogLikelihood is the scalar reference kernel. It returns
// Σ term(float64(y[i]), float64(p[i])) over min(len(y), len(p)) elements,
// accumulated left to right.
func BaseLogLikelihood[L, P hwy.Lanes](y []L, p []P, term TermFunc) float64 {
	n := min(len(y), len(p))
	var sum float64
	for i := range n {
		sum += term(float64(y[i]), float64(p[i]))
	}
	return sum
}

// BaseLogLikelihoodBlocked computes the same sum as BaseLogLikelihood, one
// lane-width block at a time: each block is converted and evaluated into a
// buffer, then folded into the running sum in index order. The per-element
// expression and the accumulation order are unchanged, so the result is
// bit-identical to the scalar kernel.
func BaseLogLikelihoodBlocked[L, P hwy.Lanes](y []L, p []P, term TermFunc) float64 {
	n := min(len(y), len(p))
	lanes := hwy.MaxLanes[float64]()

	var yb, pb, tb [maxBlockLanes]float64
	var sum float64

	block := func(offset, count int) {
		for j := range count {
			yb[j] = float64(y[offset+j])
			pb[j] = float64(p[offset+j])
		}
		for j := range count {
			tb[j] = term(yb[j], pb[j])
		}
		for j := range count {
			sum += tb[j]
		}
	}

	hwy.ProcessWithTail[float64](n,
		func(offset int) { block(offset, lanes) },
		block,
	)
	return sum
}

// BaseTerms writes term(float64(y[i]), float64(p[i])) to dst[i] for every
// i < min(len(y), len(p), len(dst)).
func BaseTerms[L, P hwy.Lanes](y []L, p []P, dst []float64, term TermFunc) {
	n := min(len(y), len(p), len(dst))
	for i := range n {
		dst[i] = term(float64(y[i]), float64(p[i]))
	}
}

// BaseTermsBlocked is the blocked form of BaseTerms.
func BaseTermsBlocked[L, P hwy.Lanes](y []L, p []P, dst []float64, term TermFunc) {
	n := min(len(y), len(p), len(dst))
	lanes := hwy.MaxLanes[float64]()

	var yb, pb [maxBlockLanes]float64
	block := func(offset, count int) {
		for j := range count {
			yb[j] = float64(y[offset+j])
			pb[j] = float64(p[offset+j])
		}
		out := dst[offset : offset+count]
		for j := range out {
			out[j] = term(yb[j], pb[j])
		}
	}

	hwy.ProcessWithTail[float64](n,
		func(offset int) { block(offset, lanes) },
		block,
	)
}

// BaseGrad writes dL/dp for the summed loss, (p - y) / (p * (1 - p)), to
// dst[i] for every i < min(len(y), len(p), len(dst)). Probabilities of
// exactly 0 or 1 give ±Inf or NaN; nothing is clamped.
func BaseGrad[L, P hwy.Lanes](y []L, p []P, dst []float64) {
	n := min(len(y), len(p), len(dst))
	for i := range n {
		yi, pi := float64(y[i]), float64(p[i])
		dst[i] = (pi - yi) / float64(pi*(1-pi))
	}
}
