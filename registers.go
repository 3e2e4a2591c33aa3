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

// Registers is the hardware capability used by the console: the transmit
// ready flag and the transmit data register of the UART.
type Registers interface {
	// TxReady returns true when the hardware can accept the next byte.
	TxReady() bool
	// TxData submits one byte for transmission. The caller must have
	// observed TxReady returning true since the previous TxData.
	TxData(c byte)
}
