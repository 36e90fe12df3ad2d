// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

// The monitor is a TamaGo unikernel running in M-mode, it acts as SBI
// execution environment for the SBI menu supervisor.
package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/board/qemu/sifive_u"
	"github.com/usbarmory/tamago/dma"

	"github.com/usbarmory/sbi-menu/internal/semihosting"
	"github.com/usbarmory/sbi-menu/mem"
	"github.com/usbarmory/sbi-menu/monitor/cmd"
	"github.com/usbarmory/sbi-menu/monitor/internal"
)

// This example embeds the supervisor ELF binary within the monitor
// executable, using Go embed package.

//go:embed assets/supervisor.elf
var osELF []byte

//go:linkname ramStart runtime/goos.RamStart
var ramStart uint64 = mem.MonitorStart

//go:linkname ramSize runtime/goos.RamSize
var ramSize uint64 = mem.MonitorSize

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// Move DMA region to prevent supervisor access.
	dma.Init(mem.MonitorDMAStart, mem.MonitorDMASize)
	mem.Init()

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • SBI Security Monitor (M-mode)", runtime.GOOS, runtime.GOARCH, runtime.Version())

	sm.Supervisor = osELF
}

func main() {
	cmd.SerialConsole(sifive_u.UART0)

	log.Printf("SM says goodbye")
	semihosting.Exit()
}
