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
	"fmt"
	"io"
	"sync/atomic"
)

// Sim is an in-memory UART register pair. Every byte written to the
// transmit data register is appended to a RAM log, and copied to
// an optional io.Writer.
type Sim struct {
	log      ram
	out      io.Writer
	hold     int // Not-ready polls after each write
	busy     int // Remaining not-ready polls
	observed bool
	stalled  int32
	polls    uint64

	Writes     int // Number of bytes written
	Violations int // Writes made without ready being observed
}

// NewSim creates a simulated UART. If out is non-nil, transmitted
// bytes are also written to it.
func NewSim(out io.Writer) *Sim {
	return &Sim{out: out}
}

// Hold sets the number of polls for which the ready flag stays low
// after each byte is written, approximating the time on the wire.
func (s *Sim) Hold(n int) *Sim {
	if n < 0 {
		n = 0
	}
	s.hold = n
	return s
}

// Stall holds the ready flag low until Stall(false) is called.
// It is safe to call from a different goroutine than the transmitter.
func (s *Sim) Stall(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&s.stalled, v)
}

// Polls returns the number of times the ready flag has been read.
func (s *Sim) Polls() uint64 {
	return atomic.LoadUint64(&s.polls)
}

// TxReady implements Registers.
func (s *Sim) TxReady() bool {
	atomic.AddUint64(&s.polls, 1)
	if atomic.LoadInt32(&s.stalled) != 0 {
		return false
	}
	if s.busy > 0 {
		s.busy--
		return false
	}
	s.observed = true
	return true
}

// TxData implements Registers.
func (s *Sim) TxData(c byte) {
	if !s.observed {
		s.Violations++
	}
	s.observed = false
	s.busy = s.hold
	s.Writes++
	s.log = append(s.log, c)
	if s.out != nil {
		s.out.Write([]byte{c})
	}
}

// Bytes returns the bytes transmitted so far.
func (s *Sim) Bytes() []byte {
	return s.log
}

// String returns the text transmitted so far.
func (s *Sim) String() string {
	return string(s.log)
}

// Reset discards the transmitted log and the counters.
func (s *Sim) Reset() {
	s.log = s.log[:0]
	s.busy = 0
	s.observed = false
	s.Writes = 0
	s.Violations = 0
	atomic.StoreUint64(&s.polls, 0)
}

// Open returns a reader over the bytes transmitted so far.
func (s *Sim) Open() *ramIO {
	return s.log.Open()
}

type ram []byte

// Open creates a type that can use a Reader interface to the
// underlying byte array.
func (base ram) Open() *ramIO {
	return &ramIO{Data: base, max: len(base)}
}

// ramIO implements various io interfaces, using an underlying byte array.
type ramIO struct {
	Data    []byte
	current int
	max     int
}

// Seek moves the offset
func (r *ramIO) Seek(offs int64, whence int) (int64, error) {
	n := int(offs)
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		n += r.current
	case io.SeekEnd:
		n = r.max + n
	default:
		return 0, fmt.Errorf("unknown whence")
	}
	if n < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	r.current = n
	return int64(r.current), nil
}

func (r *ramIO) ReadByte() (byte, error) {
	if r.current >= r.max {
		return 0, io.EOF
	}
	b := r.Data[r.current]
	r.current++
	return b, nil
}

func (r *ramIO) Read(p []byte) (int, error) {
	if r.current >= r.max {
		return 0, io.EOF
	}
	n := copy(p, r.Data[r.current:r.max])
	r.current += n
	return n, nil
}

func (r *ramIO) ReadAt(p []byte, offs int64) (int, error) {
	if offs < 0 || int(offs) >= r.max {
		return 0, io.EOF
	}
	n := copy(p, r.Data[offs:r.max])
	if n != len(p) {
		return n, io.EOF
	}
	return n, nil
}
