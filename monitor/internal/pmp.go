// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package sm

import (
	"github.com/usbarmory/tamago/riscv64"
	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/sbi-menu/mem"
)

const (
	smStart = mem.MonitorStart
	smEnd   = mem.MonitorStart + mem.MonitorSize + mem.MonitorDMASize
)

// configurePMP restricts the supervisor to its own memory and the
// peripherals required by the TamaGo runtime (PRCI and CLINT), the UART is
// only reachable through the SBI legacy console.
func configurePMP() (err error) {
	// grant PRCI access
	if err = fu540.RV64.WritePMP(0, fu540.PRCI_BASE, false, false, false, riscv64.PMP_A_OFF, false); err != nil {
		return
	}

	if err = fu540.RV64.WritePMP(1, fu540.PRCI_BASE+0x1000, true, true, false, riscv64.PMP_A_TOR, false); err != nil {
		return
	}

	// grant CLINT access
	if err = fu540.RV64.WritePMP(2, fu540.CLINT_BASE, false, false, false, riscv64.PMP_A_OFF, false); err != nil {
		return
	}

	if err = fu540.RV64.WritePMP(3, fu540.CLINT_BASE+0x10000, true, true, false, riscv64.PMP_A_TOR, false); err != nil {
		return
	}

	// grant supervisor memory access
	if err = fu540.RV64.WritePMP(4, mem.SupervisorStart, false, false, false, riscv64.PMP_A_OFF, false); err != nil {
		return
	}

	if err = fu540.RV64.WritePMP(5, mem.SupervisorStart+mem.SupervisorSize, true, true, true, riscv64.PMP_A_TOR, false); err != nil {
		return
	}

	// protect Security Monitor
	if err = fu540.RV64.WritePMP(6, smStart, false, false, false, riscv64.PMP_A_OFF, false); err != nil {
		return
	}

	return fu540.RV64.WritePMP(7, smEnd, false, false, false, riscv64.PMP_A_TOR, false)
}
