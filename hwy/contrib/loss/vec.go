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

import "gonum.org/v1/gonum/mat"

// BinaryCrossEntropyVec is BinaryCrossEntropy for gonum vectors.
func BinaryCrossEntropyVec(y, p mat.Vector) (float64, error) {
	return BinaryCrossEntropy(vecData(y), vecData(p))
}

// BinaryCrossEntropyXLogYVec is BinaryCrossEntropyXLogY for gonum vectors.
func BinaryCrossEntropyXLogYVec(y, p mat.Vector) (float64, error) {
	return BinaryCrossEntropyXLogY(vecData(y), vecData(p))
}

// vecData returns the elements of v in order. Contiguous raw vectors are
// used in place; everything else is copied through AtVec.
func vecData(v mat.Vector) []float64 {
	if rv, ok := v.(mat.RawVectorer); ok {
		raw := rv.RawVector()
		if raw.Inc == 1 {
			return raw.Data[:raw.N]
		}
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
