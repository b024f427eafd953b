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

// Package loss provides binary cross-entropy (log-loss) evaluation.
//
// BinaryCrossEntropy reduces a label sequence Y and a probability sequence P
// to the summed log-loss
//
//	-Σ [ Y[i]*ln(P[i]) + (1-Y[i])*ln(1-P[i]) ]
//
// Every element is converted to float64 before any arithmetic and the sum is
// accumulated in a single index-ascending pass, so the result is the same on
// every platform and for every dispatch level.
//
// # Numeric edge cases
//
// Inputs are not range checked. A probability of exactly 0 or 1 paired with
// the opposite label produces ln(0) = -Inf, and the result is +Inf. Negative
// probabilities produce NaN. Under BinaryCrossEntropy a zero coefficient
// multiplied by an infinite logarithm is NaN, as IEEE-754 specifies:
//
//	BinaryCrossEntropy([]float64{1}, []float64{1.0})      // NaN
//	BinaryCrossEntropyXLogY([]float64{1}, []float64{1.0}) // 0
//
// BinaryCrossEntropyXLogY treats a term with a zero coefficient as exactly
// zero, which is the xlogy convention used by most numeric libraries.
//
// Non-finite results are returned as values, never as errors. The only
// errors are structural: mismatched lengths and short destination buffers.
package loss
