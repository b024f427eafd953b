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

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

// TestCurrentDispatch checks that init left a consistent configuration behind.
func TestCurrentDispatch(t *testing.T) {
	t.Logf("dispatch: %s, width %d bytes", CurrentName(), CurrentWidth())

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", CurrentWidth())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but CurrentLevel() = %v", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with HWY_NO_SIMD=%q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()
	if got := MaxLanes[float64](); got != width/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, width/8)
	}
	if got := MaxLanes[float32](); got != width/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, width/4)
	}
	if got := MaxLanes[int8](); got != width {
		t.Errorf("MaxLanes[int8]() = %d, want %d", got, width)
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width := currentLevel, currentWidth
	t.Cleanup(func() { setLevel(level, width) })

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentName() != "scalar" {
		t.Errorf("after setScalarMode: level %v, name %q", CurrentLevel(), CurrentName())
	}
	if MaxLanes[float64]() != 2 {
		t.Errorf("scalar MaxLanes[float64]() = %d, want 2", MaxLanes[float64]())
	}
}
