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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-logloss/hwy"
)

var (
	// ErrLengthMismatch is returned when the label and probability
	// sequences have different lengths.
	ErrLengthMismatch = errors.New("loss: label and probability lengths differ")

	// ErrShortBuffer is returned when a destination slice is shorter than
	// the inputs.
	ErrShortBuffer = errors.New("loss: destination buffer too short")

	// ErrEmptyInput is returned by MeanBinaryCrossEntropy for zero samples.
	ErrEmptyInput = errors.New("loss: empty input")
)

// kernel selects how the reductions walk their inputs. Both kernels produce
// identical bits; the choice only affects loop structure.
type kernel int

const (
	kernelScalar kernel = iota
	kernelBlocked
)

// activeKernel is overridden by z_loss_dispatch.go.
var activeKernel = kernelScalar

func logLikelihood[L, P hwy.Lanes](y []L, p []P, term TermFunc) float64 {
	if activeKernel == kernelBlocked {
		return BaseLogLikelihoodBlocked(y, p, term)
	}
	return BaseLogLikelihood(y, p, term)
}

func checkLengths(ny, np int) error {
	if ny != np {
		return errors.Wrapf(ErrLengthMismatch, "len(y) != len(p) (%d != %d)", ny, np)
	}
	return nil
}

// BinaryCrossEntropy returns the summed binary cross-entropy
//
//	-Σ [ y[i]*ln(p[i]) + (1-y[i])*ln(1-p[i]) ]
//
// Labels and probabilities may be any integer or float type; each element is
// converted to float64 first. Out-of-range values are not rejected and
// degenerate inputs yield +Inf or NaN (0 * -Inf is NaN). An empty input
// returns 0.
//
// The only error is ErrLengthMismatch when len(y) != len(p).
func BinaryCrossEntropy[L, P hwy.Lanes](y []L, p []P) (float64, error) {
	if err := checkLengths(len(y), len(p)); err != nil {
		return 0, err
	}
	return -logLikelihood(y, p, StrictTerm), nil
}

// BinaryCrossEntropyXLogY is BinaryCrossEntropy with the xlogy convention:
// a product whose coefficient (y or 1-y) is exactly zero contributes zero,
// even if the logarithm is infinite. With labels in {0, 1} a perfectly
// confident correct prediction therefore costs 0 rather than NaN.
func BinaryCrossEntropyXLogY[L, P hwy.Lanes](y []L, p []P) (float64, error) {
	if err := checkLengths(len(y), len(p)); err != nil {
		return 0, err
	}
	return -logLikelihood(y, p, XLogYTerm), nil
}

// MeanBinaryCrossEntropy returns BinaryCrossEntropy divided by the number of
// samples. It returns ErrEmptyInput for empty inputs.
func MeanBinaryCrossEntropy[L, P hwy.Lanes](y []L, p []P) (float64, error) {
	sum, err := BinaryCrossEntropy(y, p)
	if err != nil {
		return 0, err
	}
	if len(y) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "mean of zero samples")
	}
	return sum / float64(len(y)), nil
}

// BinaryCrossEntropyTerms writes the per-sample loss
// -(y[i]*ln(p[i]) + (1-y[i])*ln(1-p[i])) to dst[i]. Summing dst in index
// order reproduces BinaryCrossEntropy exactly.
func BinaryCrossEntropyTerms[L, P hwy.Lanes](y []L, p []P, dst []float64) error {
	if err := checkLengths(len(y), len(p)); err != nil {
		return err
	}
	if len(dst) < len(y) {
		return errors.Wrapf(ErrShortBuffer, "len(dst) = %d, need %d", len(dst), len(y))
	}
	dst = dst[:len(y)]
	if activeKernel == kernelBlocked {
		BaseTermsBlocked(y, p, dst, StrictTerm)
	} else {
		BaseTerms(y, p, dst, StrictTerm)
	}
	for i := range dst {
		dst[i] = -dst[i]
	}
	return nil
}

// BinaryCrossEntropyGrad writes the derivative of the summed loss with
// respect to each probability, (p[i] - y[i]) / (p[i] * (1 - p[i])), to dst[i].
func BinaryCrossEntropyGrad[L, P hwy.Lanes](y []L, p []P, dst []float64) error {
	if err := checkLengths(len(y), len(p)); err != nil {
		return err
	}
	if len(dst) < len(y) {
		return errors.Wrapf(ErrShortBuffer, "len(dst) = %d, need %d", len(dst), len(y))
	}
	BaseGrad(y, p, dst)
	return nil
}
