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

// NOTE: This file is named "z_loss_dispatch.go" (starting with 'z')
// so its init() runs after the other files in the package.

package loss

import "github.com/ajroetker/go-logloss/hwy"

func init() {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return
	}
	activeKernel = kernelBlocked
}
