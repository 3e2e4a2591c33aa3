// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uart

import "sync/atomic"

// Delay is the pause between pings.
type Delay func()

var spins uint32

// BusyWait returns a Delay that spins for n iterations. The time taken
// depends entirely on the processor and is not calibrated.
func BusyWait(n int) Delay {
	return func() {
		for i := 0; i < n; i++ {
			// The counter keeps the loop from being optimised away.
			atomic.AddUint32(&spins, 1)
		}
	}
}
