// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package firmware implements an SBI execution environment, serving the
// calls issued by an S-mode supervisor from a machine mode monitor.
package firmware

import (
	"errors"
	"io"
	"log"

	"github.com/usbarmory/sbi-menu/sbi"
)

// Errors returned for calls after which the calling context must not be
// resumed.
var (
	ErrShutdown    = errors.New("system shutdown")
	ErrReboot      = errors.New("system reboot")
	ErrHartStopped = errors.New("hart stopped")
)

// Defaults reported by the Base extension.
const (
	SpecVersion = 1 << 24 // v1.0
	ImplID      = 0x474f  // "GO"
	ImplVersion = 1 << 16 // v1.0
)

// Firmware represents the SBI implementation for a set of harts.
type Firmware struct {
	// Out receives legacy console output
	Out io.Writer
	// In polls for legacy console input
	In func() (c byte, valid bool)

	// SpecVersion is the implemented SBI specification version
	SpecVersion int64
	// ImplID is the SBI implementation ID
	ImplID int64
	// ImplVersion is the SBI implementation version
	ImplVersion int64

	// MVendorID is the mvendorid CSR value
	MVendorID int64
	// MArchID is the marchid CSR value
	MArchID int64
	// MImpID is the mimpid CSR value
	MImpID int64

	// Harts holds the HSM state of each hart, indexed by hart ID
	Harts []int64
	// Hart is the ID of the calling hart
	Hart int64

	// Debug enables logging of every call
	Debug bool
}

// New returns an SBI implementation with the given console and n harts,
// hart 0 is the started calling hart while all others are stopped.
func New(out io.Writer, in func() (byte, bool), n int) *Firmware {
	fw := &Firmware{
		Out:         out,
		In:          in,
		SpecVersion: SpecVersion,
		ImplID:      ImplID,
		ImplVersion: ImplVersion,
		Harts:       make([]int64, n),
	}

	for i := range fw.Harts {
		fw.Harts[i] = sbi.HART_STOPPED
	}

	if n > 0 {
		fw.Harts[0] = sbi.HART_STARTED
	}

	return fw
}

// Handle serves an SBI call. A non-nil error is returned when the calling
// hart must not be resumed (shutdown, reboot or stop requests).
func (fw *Firmware) Handle(eid int64, fid int64, a [6]int64) (ret sbi.Ret, err error) {
	switch eid {
	case sbi.EXT_LEGACY_PUTCHAR:
		if fw.Out != nil {
			fw.Out.Write([]byte{byte(a[0])})
		}
	case sbi.EXT_LEGACY_GETCHAR:
		ret.Error = -1

		if fw.In == nil {
			break
		}

		if c, ok := fw.In(); ok {
			ret.Error = int64(c)
		}
	case sbi.EXT_LEGACY_SHUTDOWN:
		err = ErrShutdown
	case sbi.EXT_BASE:
		ret = fw.base(fid, a)
	case sbi.EXT_HSM:
		ret, err = fw.hsm(fid, a)
	case sbi.EXT_SRST:
		ret, err = fw.srst(fid, a)
	default:
		ret.Error = sbi.SBI_ERR_NOT_SUPPORTED
	}

	if fw.Debug && eid != sbi.EXT_LEGACY_PUTCHAR && eid != sbi.EXT_LEGACY_GETCHAR {
		log.Printf("SM SBI eid:%#x fid:%d a0:%#x a1:%#x ret:%d/%#x err:%v", eid, fid, a[0], a[1], ret.Error, ret.Value, err)
	}

	return
}

// Call implements sbi.Gateway for execution environments which never stop
// (e.g. tests), errors are reported as a failed call.
func (fw *Firmware) Call(eid, fid, a0, a1, a2, a3, a4, a5 int64) sbi.Ret {
	ret, err := fw.Handle(eid, fid, [6]int64{a0, a1, a2, a3, a4, a5})

	if err != nil {
		ret.Error = sbi.SBI_ERR_FAILED
	}

	return ret
}

// Serves reports whether an extension is served by Handle.
func (fw *Firmware) Serves(eid int64) bool {
	switch eid {
	case sbi.EXT_LEGACY_PUTCHAR, sbi.EXT_LEGACY_GETCHAR, sbi.EXT_LEGACY_SHUTDOWN,
		sbi.EXT_BASE, sbi.EXT_HSM, sbi.EXT_SRST:
		return true
	}

	return false
}

func (fw *Firmware) base(fid int64, a [6]int64) (ret sbi.Ret) {
	switch fid {
	case sbi.BASE_GET_SPEC_VERSION:
		ret.Value = fw.SpecVersion
	case sbi.BASE_GET_IMPL_ID:
		ret.Value = fw.ImplID
	case sbi.BASE_GET_IMPL_VERSION:
		ret.Value = fw.ImplVersion
	case sbi.BASE_PROBE_EXTENSION:
		if fw.Serves(a[0]) {
			ret.Value = 1
		}
	case sbi.BASE_GET_MVENDORID:
		ret.Value = fw.MVendorID
	case sbi.BASE_GET_MARCHID:
		ret.Value = fw.MArchID
	case sbi.BASE_GET_MIMPID:
		ret.Value = fw.MImpID
	default:
		ret.Error = sbi.SBI_ERR_NOT_SUPPORTED
	}

	return
}
