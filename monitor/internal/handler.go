// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package sm

import (
	"github.com/usbarmory/tamago/board/qemu/sifive_u"

	"github.com/usbarmory/GoTEE/monitor"
	"github.com/usbarmory/GoTEE/sbi"

	"github.com/usbarmory/sbi-menu/firmware"
)

// Firmware serves the SBI calls of the supervisor, its legacy console is
// backed by the serial port also used by the monitor console.
var Firmware = firmware.New(sifive_u.UART0, sifive_u.UART0.Rx, 1)

// sbiHandler serves supervisor `ecall` traps, a7 holds the extension ID, a6
// the function ID and a0-a5 the arguments. Results are returned in a0/a1.
//
// Extensions not implemented by Firmware (e.g. timer, IPI, remote fence
// required by the TamaGo runtime) are served by the GoTEE SBI handler.
func sbiHandler(ctx *monitor.ExecCtx) (err error) {
	eid := int64(ctx.X17)

	if !Firmware.Serves(eid) {
		return sbi.Handler(ctx)
	}

	args := [6]int64{
		int64(ctx.X10),
		int64(ctx.X11),
		int64(ctx.X12),
		int64(ctx.X13),
		int64(ctx.X14),
		int64(ctx.X15),
	}

	ret, err := Firmware.Handle(eid, int64(ctx.X16), args)

	ctx.X10 = uint64(ret.Error)
	ctx.X11 = uint64(ret.Value)

	// any error stops the supervisor context
	return
}
