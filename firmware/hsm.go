// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package firmware

import (
	"fmt"

	"github.com/usbarmory/sbi-menu/sbi"
)

func (fw *Firmware) valid(hart int64) bool {
	return hart >= 0 && hart < int64(len(fw.Harts))
}

func (fw *Firmware) hsm(fid int64, a [6]int64) (ret sbi.Ret, err error) {
	switch fid {
	case sbi.HSM_HART_START:
		hart := a[0]

		switch {
		case !fw.valid(hart):
			ret.Error = sbi.SBI_ERR_INVALID_PARAM
		case fw.Harts[hart] != sbi.HART_STOPPED:
			ret.Error = sbi.SBI_ERR_ALREADY_AVAILABLE
		default:
			// secondary harts are parked by the monitor
			ret.Error = sbi.SBI_ERR_FAILED
		}
	case sbi.HSM_HART_STOP:
		if !fw.valid(fw.Hart) || fw.Harts[fw.Hart] != sbi.HART_STARTED {
			ret.Error = sbi.SBI_ERR_FAILED
			return
		}

		fw.Harts[fw.Hart] = sbi.HART_STOPPED
		err = ErrHartStopped
	case sbi.HSM_HART_GET_STATUS:
		hart := a[0]

		if !fw.valid(hart) {
			ret.Error = sbi.SBI_ERR_INVALID_PARAM
			return
		}

		ret.Value = fw.Harts[hart]
	default:
		ret.Error = sbi.SBI_ERR_NOT_SUPPORTED
	}

	return
}

func (fw *Firmware) srst(fid int64, a [6]int64) (ret sbi.Ret, err error) {
	if fid != sbi.SRST_SYSTEM_RESET {
		ret.Error = sbi.SBI_ERR_NOT_SUPPORTED
		return
	}

	switch a[0] {
	case sbi.RESET_TYPE_SHUTDOWN:
		err = ErrShutdown
	case sbi.RESET_TYPE_COLD_REBOOT, sbi.RESET_TYPE_WARM_REBOOT:
		err = ErrReboot
	default:
		ret.Error = sbi.SBI_ERR_INVALID_PARAM
	}

	return
}

// Start marks the calling hart as started, allowing a stopped supervisor
// to be run again.
func (fw *Firmware) Start() {
	if fw.valid(fw.Hart) {
		fw.Harts[fw.Hart] = sbi.HART_STARTED
	}
}

var hartStates = map[int64]string{
	sbi.HART_STARTED:         "started",
	sbi.HART_STOPPED:         "stopped",
	sbi.HART_START_PENDING:   "start pending",
	sbi.HART_STOP_PENDING:    "stop pending",
	sbi.HART_SUSPENDED:       "suspended",
	sbi.HART_SUSPEND_PENDING: "suspend pending",
	sbi.HART_RESUME_PENDING:  "resume pending",
}

// StateName returns the description of an HSM hart state.
func StateName(state int64) string {
	if name, ok := hartStates[state]; ok {
		return name
	}

	return fmt.Sprintf("unknown (%d)", state)
}
