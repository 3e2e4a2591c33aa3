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

// BuildTime is embedded into the startup banner. It is set at link time e.g
//   go build -ldflags "-X 'github.com/aamcrae/uart.BuildTime=$(date +%T)'"
var BuildTime = "unknown"

const pingText = "Ping...\r\n"

// Firmware sequences the console output: the startup banner, then
// a ping after every delay, forever.
type Firmware struct {
	uart  *UART
	delay Delay
}

// NewFirmware creates the console program, using the delay from the config.
func NewFirmware(u *UART, c *Config) *Firmware {
	return NewFirmwareDelay(u, BusyWait(c.delay))
}

// NewFirmwareDelay creates the console program with a custom delay.
func NewFirmwareDelay(u *UART, d Delay) *Firmware {
	return &Firmware{uart: u, delay: d}
}

// Banner returns the startup banner text.
func Banner() string {
	return "SoC started! (built: " + BuildTime + ")\n"
}

// Startup emits the banner.
func (f *Firmware) Startup() {
	f.uart.Puts(Banner())
}

// Ping waits for the delay, then emits one ping line. The ping text
// already has a CR/LF, so it is sent unchanged.
func (f *Firmware) Ping() {
	f.delay()
	f.uart.PutRaw(pingText)
}

// Run emits the banner and then pings forever. Run never returns.
func (f *Firmware) Run() {
	f.Startup()
	for {
		f.Ping()
	}
}
