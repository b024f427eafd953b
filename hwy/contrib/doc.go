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

// Package contrib holds the kernels built on the hwy dispatch layer.
//
// # Subpackages
//
//   - loss: Binary cross-entropy (log-loss) with per-sample terms,
//     mean and gradient helpers, and gonum vector adapters
//
// # Loss Functions (hwy/contrib/loss)
//
//	import "github.com/ajroetker/go-logloss/hwy/contrib/loss"
//
//	ce, err := loss.BinaryCrossEntropy(labels, probs)  // summed log-loss
//	ce, err = loss.BinaryCrossEntropyXLogY(labels, probs) // 0*log(0) = 0
//
// Kernels pick a block width from hwy.MaxLanes at init. Setting
// HWY_NO_SIMD=1 forces the scalar kernels; results are identical either way.
package contrib
