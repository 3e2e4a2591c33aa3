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

//go:build tinygo

package uart

import (
	"errors"
	"runtime/volatile"
	"unsafe"
)

// CSRBase is the physical address of the UART CSR block when running
// directly on the SoC.
var CSRBase uintptr = 0xf0001000

// Volatile is the UART CSR block accessed at its physical address.
type Volatile struct {
	data      *volatile.Register32
	ready     *volatile.Register32
	readyMask uint32
}

// Open returns the UART CSRs at CSRBase using the layout from the config.
// The UIO device number is ignored.
func Open(c *Config) (*Volatile, error) {
	if c.dataOffs%regSize != 0 || c.readyOffs%regSize != 0 {
		return nil, errors.New("register offset is not 32 bit aligned")
	}
	v := &Volatile{
		data:      (*volatile.Register32)(unsafe.Pointer(CSRBase + c.dataOffs)),
		ready:     (*volatile.Register32)(unsafe.Pointer(CSRBase + c.readyOffs)),
		readyMask: c.readyMask,
	}
	return v, nil
}

// TxReady returns true if any of the ready bits are set.
func (v *Volatile) TxReady() bool {
	return v.ready.HasBits(v.readyMask)
}

// TxData writes the byte to the transmit data CSR.
func (v *Volatile) TxData(c byte) {
	v.data.Set(uint32(c))
}

// Close is a no-op; the CSRs are always mapped.
func (v *Volatile) Close() {
}
