// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package menu implements an interactive SBI menu, each operator keystroke
// selects an SBI request whose result is printed on the console.
package menu

import (
	"fmt"
	"io"

	"github.com/usbarmory/sbi-menu/sbi"
)

const (
	banner  = "\nSBI interactive menu\nChoose an SBI command:\n"
	invalid = "\nplease choose a listed option\n"
	prompt  = "\nnext option: "
)

// Terminal represents the operator console.
//
// WriteString may stop at a NUL terminator, reporting io.ErrShortWrite, the
// menu only writes fixed strings without one.
type Terminal interface {
	io.Writer
	io.ByteReader
	io.ByteWriter
	io.StringWriter
}

// Menu represents the menu state machine.
type Menu struct {
	gw  sbi.Gateway
	con Terminal
}

// New returns a menu issuing SBI requests through gw and interacting with
// the operator through con.
func New(gw sbi.Gateway, con Terminal) *Menu {
	return &Menu{
		gw:  gw,
		con: con,
	}
}

// Banner prints the welcome banner and the list of available commands.
func (m *Menu) Banner() {
	m.con.WriteString(banner)

	for _, cmd := range cmds {
		fmt.Fprintf(m.con, "%c. %s\n", cmd.Key, cmd.Help)
	}

	m.con.WriteString("\n")
}

// Step waits for one command, dispatches it and prints the prompt for the
// next one.
func (m *Menu) Step() {
	c, _ := m.con.ReadByte()

	m.con.WriteString("Chosen option: ")
	m.con.WriteByte(c)
	m.con.WriteString("\n")

	if cmd := lookup(c); cmd != nil {
		cmd.Fn(m)
	} else {
		m.con.WriteString(invalid)
	}

	m.con.WriteString(prompt)
}

// Run prints the banner and serves commands forever, only a successful
// shutdown request ends it by never returning control.
func (m *Menu) Run() {
	m.Banner()

	for {
		m.Step()
	}
}
