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

import (
	"runtime"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

// counter is a Delay that counts calls and stops the
// calling goroutine on the call after limit.
type counter struct {
	calls int
	limit int
}

func (d *counter) delay() {
	d.calls++
	if d.calls > d.limit {
		runtime.Goexit()
	}
}

// runFor runs the firmware until it has sent n pings.
func runFor(n int) (*Sim, *counter) {
	s := NewSim(nil).Hold(2)
	d := &counter{limit: n}
	fw := NewFirmwareDelay(New(s), d.delay)
	done := make(chan bool)
	go func() {
		defer close(done)
		fw.Run()
	}()
	<-done
	return s, d
}

func TestBanner(t *testing.T) {
	c := qt.New(t)
	c.Patch(&BuildTime, "12:34:56")
	c.Assert(Banner(), qt.Equals, "SoC started! (built: 12:34:56)\n")
	s := NewSim(nil)
	NewFirmwareDelay(New(s), func() {}).Startup()
	c.Assert(s.String(), qt.Equals, "SoC started! (built: 12:34:56)\r\n")
}

func TestPing(t *testing.T) {
	c := qt.New(t)
	s := NewSim(nil)
	d := &counter{limit: 10}
	fw := NewFirmwareDelay(New(s), d.delay)
	fw.Ping()
	c.Assert(d.calls, qt.Equals, 1)
	c.Assert(s.String(), qt.Equals, "Ping...\r\n")
}

func TestRun(t *testing.T) {
	c := qt.New(t)
	c.Patch(&BuildTime, "00:00:01")
	for _, n := range []int{0, 1, 2, 17} {
		s, d := runFor(n)
		out := s.String()
		banner := "SoC started! (built: 00:00:01)\r\n"
		c.Assert(strings.HasPrefix(out, banner), qt.IsTrue, qt.Commentf("output %q", out))
		c.Assert(strings.Count(out, "SoC started!"), qt.Equals, 1)
		c.Assert(strings.Count(out, "Ping...\r\n"), qt.Equals, n)
		c.Assert(out[len(banner):], qt.Equals, strings.Repeat("Ping...\r\n", n))
		c.Assert(d.calls, qt.Equals, n+1)
		c.Assert(s.Violations, qt.Equals, 0)
	}
}

func TestBusyWait(t *testing.T) {
	c := qt.New(t)
	before := spins
	BusyWait(1000)()
	c.Assert(spins-before, qt.Equals, uint32(1000))
	BusyWait(0)()
	c.Assert(spins-before, qt.Equals, uint32(1000))
}

func TestNewFirmwareUsesConfigDelay(t *testing.T) {
	c := qt.New(t)
	s := NewSim(nil)
	fw := NewFirmware(New(s), NewConfig().Delay(10))
	before := spins
	fw.Ping()
	c.Assert(spins-before, qt.Equals, uint32(10))
	c.Assert(s.String(), qt.Equals, "Ping...\r\n")
}
