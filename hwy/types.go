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

// Package hwy provides the numeric type constraints and runtime CPU dispatch
// shared by the loss kernels.
//
// Dispatch is decided once at init from the CPU feature flags reported by
// golang.org/x/sys/cpu. Kernels use the detected register width to size the
// blocks they process; the per-element arithmetic never depends on it.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-logloss/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.MaxLanes[float64]())
//
//	hwy.ProcessWithTail[float64](len(data),
//	    func(offset int) { /* full block at data[offset:] */ },
//	    func(offset, count int) { /* tail of count elements */ },
//	)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every Lanes value converts to float64 with a plain conversion.
type Lanes interface {
	Floats | Integers
}
