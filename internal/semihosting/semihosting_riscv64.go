// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package semihosting implements the RISC-V semihosting calls required to
// terminate an emulated machine (e.g. QEMU with `-semihosting`).
package semihosting

import (
	"unsafe"
)

const (
	SYS_EXIT = 0x18

	ADP_Stopped_ApplicationExit = 0x20026
)

// defined in semihosting_riscv64.s
func call(op uint64, param uint64) uint64

// Exit terminates the emulator with success exit status.
func Exit() {
	block := [2]uint64{ADP_Stopped_ApplicationExit, 0}
	call(SYS_EXIT, uint64(uintptr(unsafe.Pointer(&block[0]))))
}
