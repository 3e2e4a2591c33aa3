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

const (
	regSize      = 4       // CSRs are 32 bits wide
	nUnits       = 8       // Number of UIO devices that may be selected
	DefaultDelay = 1 << 23 // Busy-wait iterations between pings
)

// Config contains the register layout and timing for the console.
// A configuration is initialised through config methods on this structure e.g:
//   c := NewConfig()
//   c.Unit(1).TxData(0x00).TxReady(0x04, 1)
//   d, err := uart.Open(c)
type Config struct {
	unit      int
	dataOffs  uintptr
	readyOffs uintptr
	readyMask uint32
	delay     int
}

// The default config.
// The default is UIO device 0, with the transmit data CSR at offset 0,
// the transmit ready CSR at offset 4 with bit 0 as the ready flag, and
// the standard ping delay.
//
// Before the device is opened, this may be modified
// to overwrite the default configuration e.g
// DefaultConfig.Unit(2).TxReady(0x08, 0x20)
var DefaultConfig *Config

func init() {
	DefaultConfig = NewConfig()
}

// NewConfig creates a Config with the default layout.
func NewConfig() *Config {
	c := new(Config)
	c.Clear()
	return c
}

// Clear resets the configuration to the default layout.
func (c *Config) Clear() *Config {
	c.unit = 0
	c.dataOffs = 0x00
	c.readyOffs = 0x04
	c.readyMask = 1
	c.delay = DefaultDelay
	return c
}

// Unit selects the UIO device (/dev/uioN) that maps the SoC CSRs.
func (c *Config) Unit(u int) *Config {
	c.unit = u % nUnits
	return c
}

// TxData sets the byte offset of the transmit data CSR within the map.
func (c *Config) TxData(offs uintptr) *Config {
	c.dataOffs = offs
	return c
}

// TxReady sets the byte offset of the transmit ready CSR and the bits
// that indicate ready. The transmitter is ready when any bit of the mask
// is set in the CSR. A zero mask selects bit 0.
func (c *Config) TxReady(offs uintptr, mask uint32) *Config {
	if mask == 0 {
		mask = 1
	}
	c.readyOffs = offs
	c.readyMask = mask
	return c
}

// Delay sets the number of busy-wait iterations between pings.
// Negative values are treated as 0.
func (c *Config) Delay(n int) *Config {
	if n < 0 {
		n = 0
	}
	c.delay = n
	return c
}
