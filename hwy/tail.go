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

package hwy

// ProcessWithTail walks [0, size) in blocks of MaxLanes[T]() elements.
//
// It calls:
//   - fullFn(offset) for each full block, in ascending offset order
//   - tailFn(offset, count) once for the tail if size is not a multiple of the block width
//
// Example:
//
//	hwy.ProcessWithTail[float64](len(data),
//	    func(offset int) {
//	        block := data[offset : offset+hwy.MaxLanes[float64]()]
//	        // ...
//	    },
//	    func(offset, count int) {
//	        tail := data[offset : offset+count]
//	        // ...
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	maxLanes := MaxLanes[T]()

	// Process full vectors
	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	// Process tail if any
	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}
