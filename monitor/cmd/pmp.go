// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64 && sifive_u
// +build tamago,riscv64,sifive_u

package cmd

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/soc/sifive/fu540"
)

const pmpEntries = 16

func init() {
	Add(Cmd{
		Name: "pmp",
		Help: "show PMP CSRs",
		Fn:   pmpCmd,
	})

	Add(Cmd{
		Name:    "pmp ",
		Args:    1,
		Pattern: regexp.MustCompile(`^pmp (\d+)$`),
		Syntax:  "<index>",
		Help:    "show PMP CSR",
		Fn:      pmpCmd,
	})
}

func pmpCmd(_ *term.Terminal, arg []string) (res string, err error) {
	var buf bytes.Buffer

	first, last := 0, pmpEntries-1

	if len(arg) > 0 {
		i, err := strconv.ParseUint(arg[0], 10, 8)

		if err != nil || i >= pmpEntries {
			return "", fmt.Errorf("invalid index, %v", arg[0])
		}

		first, last = int(i), int(i)
	}

	for i := first; i <= last; i++ {
		addr, r, w, x, a, l, err := fu540.RV64.ReadPMP(i)

		if err != nil {
			return "", err
		}

		fmt.Fprintf(&buf, "PMP:%.2d addr:%#.16x A:%d R:%v W:%v X:%v L:%v\n", i, addr, a, r, w, x, l)
	}

	return buf.String(), nil
}
