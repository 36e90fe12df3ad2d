// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64
// +build tamago,riscv64

package cmd

import (
	"bytes"
	"fmt"
	"regexp"

	"golang.org/x/term"

	"github.com/usbarmory/sbi-menu/firmware"
	"github.com/usbarmory/sbi-menu/monitor/internal"
)

func init() {
	Add(Cmd{
		Name: "menu",
		Help: "run SBI menu supervisor (S-mode) until shutdown",
		Fn:   menuCmd,
	})

	Add(Cmd{
		Name: "harts",
		Help: "show HSM hart states",
		Fn:   hartsCmd,
	})

	Add(Cmd{
		Name: "stack",
		Help: "show where the supervisor last stopped",
		Fn:   stackCmd,
	})

	Add(Cmd{
		Name:    "debug",
		Args:    1,
		Pattern: regexp.MustCompile(`^debug (on|off)$`),
		Syntax:  "<on|off>",
		Help:    "log supervisor SBI calls",
		Fn:      debugCmd,
	})
}

func menuCmd(_ *term.Terminal, _ []string) (string, error) {
	return "", sm.Run()
}

func hartsCmd(_ *term.Terminal, _ []string) (string, error) {
	var buf bytes.Buffer

	buf.WriteString("| hart | state           |\n")
	buf.WriteString("|------|-----------------|\n")

	for i, state := range sm.Firmware.Harts {
		fmt.Fprintf(&buf, "| %4d | %-15s |\n", i, firmware.StateName(state))
	}

	return buf.String(), nil
}

func stackCmd(_ *term.Terminal, _ []string) (string, error) {
	if sm.LastStop == nil {
		return "supervisor not run yet", nil
	}

	return sm.LastStop.String(), nil
}

func debugCmd(_ *term.Terminal, arg []string) (string, error) {
	sm.Firmware.Debug = arg[0] == "on"
	return fmt.Sprintf("SBI call logging: %s", arg[0]), nil
}
