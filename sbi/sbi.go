// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sbi implements the supervisor side of the RISC-V Supervisor Binary
// Interface (SBI), the call contract between S-mode software and the
// execution environment (firmware or hypervisor) beneath it.
//
// A call places six argument words in a0-a5, the function identifier in a6
// and the extension identifier in a7, then traps with `ecall`. On return a0
// and a1 hold the (error, value) pair.
package sbi

import (
	"errors"
	"fmt"
)

// Extension identifiers
const (
	// legacy console output, a0 = character
	EXT_LEGACY_PUTCHAR = 0x01
	// legacy console input, character (or -1) returned in a0
	EXT_LEGACY_GETCHAR = 0x02
	// legacy system shutdown
	EXT_LEGACY_SHUTDOWN = 0x08

	EXT_BASE = 0x10
	EXT_HSM  = 0x48534d   // "HSM"
	EXT_SRST = 0x53525354 // "SRST"
)

// Base extension function identifiers
const (
	BASE_GET_SPEC_VERSION = 0
	BASE_GET_IMPL_ID      = 1
	BASE_GET_IMPL_VERSION = 2
	BASE_PROBE_EXTENSION  = 3
	BASE_GET_MVENDORID    = 4
	BASE_GET_MARCHID      = 5
	BASE_GET_MIMPID       = 6
)

// Hart State Management extension function identifiers
const (
	HSM_HART_START      = 0
	HSM_HART_STOP       = 1
	HSM_HART_GET_STATUS = 2
)

// Hart states returned by HSM_HART_GET_STATUS
const (
	HART_STARTED = iota
	HART_STOPPED
	HART_START_PENDING
	HART_STOP_PENDING
	HART_SUSPENDED
	HART_SUSPEND_PENDING
	HART_RESUME_PENDING
)

// System Reset extension function identifiers and arguments
const (
	SRST_SYSTEM_RESET = 0

	RESET_TYPE_SHUTDOWN    = 0
	RESET_TYPE_COLD_REBOOT = 1
	RESET_TYPE_WARM_REBOOT = 2

	RESET_REASON_NONE           = 0
	RESET_REASON_SYSTEM_FAILURE = 1
)

// Standard SBI status codes
const (
	SBI_SUCCESS               = 0
	SBI_ERR_FAILED            = -1
	SBI_ERR_NOT_SUPPORTED     = -2
	SBI_ERR_INVALID_PARAM     = -3
	SBI_ERR_DENIED            = -4
	SBI_ERR_INVALID_ADDRESS   = -5
	SBI_ERR_ALREADY_AVAILABLE = -6
	SBI_ERR_ALREADY_STARTED   = -7
	SBI_ERR_ALREADY_STOPPED   = -8
)

// Errors corresponding to standard SBI status codes.
var (
	ErrFailed           = errors.New("failed")
	ErrNotSupported     = errors.New("not supported")
	ErrInvalidParam     = errors.New("invalid parameter")
	ErrDenied           = errors.New("denied")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrAlreadyAvailable = errors.New("already available")
	ErrAlreadyStarted   = errors.New("already started")
	ErrAlreadyStopped   = errors.New("already stopped")
)

var statusErrors = map[int64]error{
	SBI_ERR_FAILED:            ErrFailed,
	SBI_ERR_NOT_SUPPORTED:     ErrNotSupported,
	SBI_ERR_INVALID_PARAM:     ErrInvalidParam,
	SBI_ERR_DENIED:            ErrDenied,
	SBI_ERR_INVALID_ADDRESS:   ErrInvalidAddress,
	SBI_ERR_ALREADY_AVAILABLE: ErrAlreadyAvailable,
	SBI_ERR_ALREADY_STARTED:   ErrAlreadyStarted,
	SBI_ERR_ALREADY_STOPPED:   ErrAlreadyStopped,
}

// Ret represents the register pair returned by an SBI call.
//
// The meaning of each slot depends on the extension. Standard extensions
// return a status code in Error and their payload in Value, legacy console
// extensions return their single result word in Error.
type Ret struct {
	// Error is the a0 register on return
	Error int64
	// Value is the a1 register on return
	Value int64
}

// Err returns the error matching a standard SBI status code held in the Error
// slot, nil on SBI_SUCCESS. It is meaningless for legacy extensions.
func (r Ret) Err() error {
	if r.Error == SBI_SUCCESS {
		return nil
	}

	if err, ok := statusErrors[r.Error]; ok {
		return err
	}

	return fmt.Errorf("unknown SBI error %d", r.Error)
}

// Gateway represents a synchronous SBI call interface.
//
// Implementations must not validate, retry or translate calls, every
// invocation is a single round trip to the execution environment and may
// have arbitrary side effects (including never returning).
type Gateway interface {
	Call(eid, fid, a0, a1, a2, a3, a4, a5 int64) Ret
}

// GatewayFunc adapts an ordinary function to the Gateway interface.
type GatewayFunc func(eid, fid, a0, a1, a2, a3, a4, a5 int64) Ret

// Call calls f(eid, fid, a0, a1, a2, a3, a4, a5).
func (f GatewayFunc) Call(eid, fid, a0, a1, a2, a3, a4, a5 int64) Ret {
	return f(eid, fid, a0, a1, a2, a3, a4, a5)
}

// ECALL is the Gateway which traps into the execution environment through
// the `ecall` instruction.
type ECALL struct{}

// Call performs an SBI call, it blocks until the execution environment
// returns control to the calling hart.
func (ECALL) Call(eid, fid, a0, a1, a2, a3, a4, a5 int64) Ret {
	err, val := ecall(a0, a1, a2, a3, a4, a5, fid, eid)
	return Ret{Error: err, Value: val}
}
