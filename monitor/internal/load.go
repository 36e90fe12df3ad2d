// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package sm

import (
	"fmt"
	"log"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/sbi-menu/mem"
	"github.com/usbarmory/sbi-menu/util"

	"github.com/usbarmory/armory-boot/exec"
)

// Supervisor holds the supervisor ELF image.
var Supervisor []byte

// loadSupervisor loads the SBI menu TamaGo unikernel as S-mode context.
func loadSupervisor() (os *monitor.ExecCtx, err error) {
	image := &exec.ELFImage{
		Region: mem.SupervisorRegion,
		ELF:    Supervisor,
	}

	if err = image.Load(); err != nil {
		return nil, fmt.Errorf("SM could not load supervisor image, %v", err)
	}

	if os, err = monitor.Load(image.Entry(), image.Region, false); err != nil {
		return nil, fmt.Errorf("SM could not load supervisor, %v", err)
	}

	log.Printf("SM loaded supervisor addr:%#x size:%d entry:%#x", os.Memory.Start(), len(Supervisor), os.PC)

	if err = configurePMP(); err != nil {
		return nil, fmt.Errorf("SM could not configure PMP, %v", err)
	}

	// set stack pointer to the end of supervisor memory
	os.X2 = uint64(os.Memory.End())

	// serve SBI calls
	os.Handler = sbiHandler

	if err = util.SetDebugTarget(Supervisor); err != nil {
		log.Printf("SM supervisor symbols unavailable, %v", err)
	}

	return
}
