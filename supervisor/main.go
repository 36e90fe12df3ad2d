// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

// The supervisor is a TamaGo unikernel running in S-mode, it serves an
// interactive SBI menu on the console provided by the execution environment.
//
// The TamaGo runtime acts as entry trampoline: it points the stack at the end
// of the RAM window declared below and transfers control to main, which never
// returns.
package main

import (
	"log"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/soc/sifive/fu540"

	"github.com/usbarmory/sbi-menu/console"
	"github.com/usbarmory/sbi-menu/mem"
	"github.com/usbarmory/sbi-menu/menu"
	"github.com/usbarmory/sbi-menu/sbi"
)

//go:linkname ramStart runtime/goos.RamStart
var ramStart uint64 = mem.SupervisorStart

//go:linkname ramSize runtime/goos.RamSize
var ramSize uint64 = mem.SupervisorSize

//go:linkname hwinit runtime/goos.Hwinit1
func hwinit() {
	fu540.RV64.InitSupervisor()
}

// printk can be invoked before package initialization, it therefore issues
// the legacy console call directly.
//
//go:linkname printk runtime/goos.Printk
func printk(c byte) {
	sbi.ECALL{}.Call(sbi.EXT_LEGACY_PUTCHAR, 0, int64(c), 0, 0, 0, 0, 0)
}

func main() {
	gw := sbi.ECALL{}
	con := console.New(gw)

	log.SetFlags(log.Ltime)
	log.SetOutput(con)

	log.Printf("%s/%s (%s) • SBI menu supervisor", runtime.GOOS, runtime.GOARCH, runtime.Version())

	// never returns
	menu.New(gw, con).Run()
}
