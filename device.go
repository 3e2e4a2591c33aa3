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

//go:build !tinygo

package uart

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device paths.
var (
	drvMemBase = "/sys/class/uio/uio%d/maps/map0/addr"
	drvMemSize = "/sys/class/uio/uio%d/maps/map0/size"
	drvUioBase = "/dev/uio%d"
)

// Device is the UART CSR block of the SoC, mapped into this process
// through a UIO driver.
type Device struct {
	mmapFile *os.File
	path     string
	memBase  int
	memSize  int
	mem      []byte

	dataOffs  uintptr
	readyOffs uintptr
	readyMask uint32
}

// Single instance of Device.
var device *Device

// Open maps the UART CSRs using the configuration provided.
func Open(c *Config) (*Device, error) {
	if device != nil {
		return nil, fmt.Errorf("Device already open; must close it first")
	}
	base, err := readDriverValue(fmt.Sprintf(drvMemBase, c.unit))
	if err != nil {
		return nil, err
	}
	size, err := readDriverValue(fmt.Sprintf(drvMemSize, c.unit))
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf(drvUioBase, c.unit)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, err
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	d, err := newDevice(mem, c)
	if err != nil {
		unix.Munmap(mem)
		f.Close()
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	d.mmapFile = f
	d.path = path
	d.memBase = base
	d.memSize = size
	device = d
	return d, nil
}

// newDevice validates the register layout against the memory area
// and initialises the Device fields.
func newDevice(mem []byte, c *Config) (*Device, error) {
	for _, offs := range []uintptr{c.dataOffs, c.readyOffs} {
		if offs%regSize != 0 {
			return nil, fmt.Errorf("register offset 0x%x is not 32 bit aligned", offs)
		}
		if offs+regSize > uintptr(len(mem)) {
			return nil, fmt.Errorf("register offset 0x%x outside map of %d bytes", offs, len(mem))
		}
	}
	if c.dataOffs == c.readyOffs {
		return nil, fmt.Errorf("data and ready registers share offset 0x%x", c.dataOffs)
	}
	d := new(Device)
	d.mem = mem
	d.memSize = len(mem)
	d.dataOffs = c.dataOffs
	d.readyOffs = c.readyOffs
	d.readyMask = c.readyMask
	return d, nil
}

// TxReady returns true if the transmit ready CSR has any of the ready bits set.
func (d *Device) TxReady() bool {
	return d.rd(d.readyOffs)&d.readyMask != 0
}

// TxData writes the byte to the transmit data CSR.
func (d *Device) TxData(c byte) {
	d.wr(d.dataOffs, uint32(c))
}

// Close unmaps the CSRs, releasing all the resources associated with the device.
func (d *Device) Close() {
	if device == d {
		device = nil
	}
	if d.mmapFile != nil {
		unix.Munmap(d.mem)
		d.mmapFile.Close()
		d.mmapFile = nil
	}
	d.mem = nil
}

// Description returns a human readable string describing the device
func (d *Device) Description() string {
	var s strings.Builder
	fmt.Fprint(&s, "UART")
	if d.path != "" {
		fmt.Fprintf(&s, " %s", d.path)
	}
	fmt.Fprintf(&s, " base 0x%08x size %d", d.memBase, d.memSize)
	fmt.Fprintf(&s, " data@0x%x ready@0x%x/0x%x", d.dataOffs, d.readyOffs, d.readyMask)
	return s.String()
}

// rd reads one 32 bit word from the mapped CSR area
func (d *Device) rd(offs uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&d.mem[offs])))
}

// wr writes one 32 bit word to the mapped CSR area
func (d *Device) wr(offs uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&d.mem[offs])), v)
}

// readDriverValue opens and reads a string from a device file and decodes
// the string as an integer. This is used to retrieve the map parameters
// from the UIO kernel device driver.
func readDriverValue(s string) (int, error) {
	var val int
	f, err := os.Open(s)
	if err != nil {
		return -1, err
	}
	defer f.Close()
	n, err := fmt.Fscanf(f, "%v", &val)
	if err != nil {
		return -1, fmt.Errorf("%s: %v", s, err)
	}
	if n != 1 {
		return -1, fmt.Errorf("%s: no value found", s)
	}
	return val, nil
}
