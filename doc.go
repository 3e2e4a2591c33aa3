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

/*

Package uart is a polled (non-interrupt) transmit-only serial console for a
system-on-chip, used to emit a startup banner and a periodic diagnostic ping.

The console is built from a small stack of output primitives: a blocking
single-character transmitter, a string emitter that converts LF line endings
to CR/LF pairs, and a hex formatter for bytes and nibbles. The hardware is
reached through the Registers interface, which exposes the transmit-ready flag
and the transmit-data register. Three implementations are provided:

 - Device maps the SoC CSRs through a Linux UIO driver (see Open).
 - Sim is an in-memory register pair that records what was transmitted.
 - When built with TinyGo, Volatile accesses the CSRs at fixed physical addresses.

A typical program is:

  d, err := uart.Open(uart.DefaultConfig)
  if err != nil {
      log.Fatalf("%s", err)
  }
  uart.NewFirmware(uart.New(d), uart.DefaultConfig).Run()

Run never returns. There is no receive path, no buffering and no timeout;
if the hardware never reports ready, the transmitter waits forever.

*/
package uart
