// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

// Package sm implements the Security Monitor (M-mode) hosting the SBI menu
// supervisor.
package sm

import (
	"errors"
	"log"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/sbi-menu/firmware"
	"github.com/usbarmory/sbi-menu/util"
)

// LastStop holds the registers of the most recent supervisor stop.
var LastStop *util.Trace

// Run loads the supervisor and executes it until it requests a shutdown,
// reboot or stops its hart.
func Run() (err error) {
	var os *monitor.ExecCtx

	if os, err = loadSupervisor(); err != nil {
		return
	}

	// a hart stopped in a previous run is brought back up
	Firmware.Start()

	run(os)

	return
}

func run(ctx *monitor.ExecCtx) {
	log.Printf("SM starting sp:%#.8x pc:%#.8x", ctx.X2, ctx.PC)

	err := ctx.Run()

	LastStop = &util.Trace{
		PC:  ctx.PC,
		RA:  ctx.X1,
		SP:  ctx.X2,
		Err: err,
	}

	switch {
	case errors.Is(err, firmware.ErrShutdown), errors.Is(err, firmware.ErrReboot), errors.Is(err, firmware.ErrHartStopped):
		log.Printf("SM supervisor %v pc:%#.8x", err, ctx.PC)
		return
	}

	log.Printf("SM stopped %s", LastStop)
}
