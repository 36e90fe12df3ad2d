// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package util provides debugging helpers for execution contexts hosted by
// the monitor.
package util

import (
	"bytes"
	"debug/elf"
	"debug/gosym"
	"errors"
	"fmt"
)

var target *gosym.Table

// SetDebugTarget sets the Go ELF image used to resolve program counters of
// a hosted execution context.
func SetDebugTarget(buf []byte) (err error) {
	target, err = symTable(buf)
	return
}

func symTable(buf []byte) (*gosym.Table, error) {
	exe, err := elf.NewFile(bytes.NewReader(buf))

	if err != nil {
		return nil, err
	}

	text := exe.Section(".text")
	pcln := exe.Section(".gopclntab")

	if text == nil || pcln == nil {
		return nil, errors.New("missing Go symbol sections")
	}

	lineTableData, err := pcln.Data()

	if err != nil {
		return nil, err
	}

	lineTable := gosym.NewLineTable(lineTableData, text.Addr)

	var symTableData []byte

	// Go >= 1.3 linkers emit an empty .gosymtab
	if sym := exe.Section(".gosymtab"); sym != nil {
		if symTableData, err = sym.Data(); err != nil {
			return nil, err
		}
	}

	return gosym.NewTable(symTableData, lineTable)
}

// PCToLine returns the source location, within the debug target, of a
// program counter.
func PCToLine(pc uint64) (s string, err error) {
	if target == nil {
		return "", errors.New("no debug target")
	}

	file, line, fn := target.PCToLine(pc)

	if fn == nil {
		return "", fmt.Errorf("pc %#x not found", pc)
	}

	return fmt.Sprintf("%s:%d (%s)", file, line, fn.Name), nil
}

// Trace records where a hosted execution context stopped.
type Trace struct {
	PC  uint64
	RA  uint64
	SP  uint64
	Err error
}

// String returns the stop registers and, when a debug target is set, the
// source locations of the program counter and return address.
func (t *Trace) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "pc:%#.8x ra:%#.8x sp:%#.8x err:%v", t.PC, t.RA, t.SP, t.Err)

	for _, pc := range []uint64{t.PC, t.RA} {
		if line, err := PCToLine(pc); err == nil {
			fmt.Fprintf(&buf, "\n  %s", line)
		}
	}

	return buf.String()
}
