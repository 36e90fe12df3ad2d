// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package sbi

// defined in ecall_riscv64.s
func ecall(a0, a1, a2, a3, a4, a5, fid, eid int64) (err int64, val int64)
