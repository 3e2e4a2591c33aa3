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

const hexits = "0123456789abcdef"

// UART is a polled transmitter over a set of UART registers.
type UART struct {
	regs Registers
}

// New creates a UART that transmits through the registers provided.
func New(r Registers) *UART {
	return &UART{regs: r}
}

// PutChar waits until the transmitter is ready and then writes one character.
// There is no timeout; if the hardware never becomes ready, PutChar never returns.
func (u *UART) PutChar(c byte) {
	for !u.regs.TxReady() {
	}
	u.regs.TxData(c)
}

// Puts transmits a string, converting each LF to a CR/LF pair.
// Transmission stops at the end of the string or at a NUL character.
func (u *UART) Puts(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		if s[i] == '\n' {
			u.PutChar('\r')
		}
		u.PutChar(s[i])
	}
}

// PutRaw transmits a string unchanged, stopping at the end of the string
// or at a NUL character.
func (u *UART) PutRaw(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		u.PutChar(s[i])
	}
}

// PutNibble transmits the low 4 bits of n as a lower case hex digit.
func (u *UART) PutNibble(n byte) {
	u.PutChar(hexits[n&0xf])
}

// PutByte transmits b as 2 lower case hex digits, high nibble first.
func (u *UART) PutByte(b byte) {
	u.PutNibble(b >> 4)
	u.PutNibble(b & 0xf)
}
