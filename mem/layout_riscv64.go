// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mem defines the memory layout shared by the security monitor and
// the SBI menu supervisor it hosts.
package mem

import (
	"github.com/usbarmory/tamago/dma"
)

const (
	// Security Monitor
	MonitorStart = 0x90000000
	MonitorSize  = 0x07f00000 // 127MB

	// Security Monitor DMA (relocated to avoid conflicts with supervisor)
	MonitorDMAStart = 0x97f00000
	MonitorDMASize  = 0x00100000 // 1MB

	// Supervisor (S-mode)
	SupervisorStart = 0x80000000
	SupervisorSize  = 0x02000000 // 32MB
)

// SupervisorRegion is the memory reserved for the supervisor image.
var SupervisorRegion *dma.Region

// Init reserves the supervisor memory, it must be called before loading its
// image.
func Init() {
	SupervisorRegion, _ = dma.NewRegion(SupervisorStart, SupervisorSize, false)
	SupervisorRegion.Reserve(SupervisorSize, 0)
}
