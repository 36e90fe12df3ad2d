// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package menu

import (
	"fmt"

	"github.com/usbarmory/sbi-menu/sbi"
)

// Cmd represents a menu entry.
type Cmd struct {
	// Key is the character selecting the command
	Key byte
	// Help is the banner description
	Help string
	// Fn is the command handler
	Fn func(m *Menu)
}

var cmds = []Cmd{
	{
		Key:  '1',
		Help: "Get SBI implementation version",
		Fn:   versionCmd,
	},
	{
		Key:  '2',
		Help: "Hart get status",
		Fn:   hartStatusCmd,
	},
	{
		Key:  '3',
		Help: "Hart stop",
		Fn:   hartStopCmd,
	},
	{
		Key:  '4',
		Help: "System shutdown",
		Fn:   shutdownCmd,
	},
}

func lookup(key byte) *Cmd {
	for i := range cmds {
		if cmds[i].Key == key {
			return &cmds[i]
		}
	}

	return nil
}

// Version splits a packed implementation version in its major and minor
// numbers.
func Version(value int64) (major int64, minor int64) {
	major = (value >> 16) & 0xffff
	minor = value & 0xffff

	return
}

// HartID converts an ASCII digit to a hart identifier. Characters outside
// '0'-'9' are not rejected and yield out of range (possibly negative)
// identifiers.
func HartID(c byte) int64 {
	return int64(c) - '0'
}

func versionCmd(m *Menu) {
	ret := m.gw.Call(sbi.EXT_BASE, sbi.BASE_GET_IMPL_VERSION, 0, 0, 0, 0, 0, 0)
	major, minor := Version(ret.Value)

	fmt.Fprintf(m.con, "SBI implementation version: %d.%d\n", major, minor)
}

func hartStatusCmd(m *Menu) {
	m.con.WriteString("Enter hart ID: ")

	c, _ := m.con.ReadByte()
	m.con.WriteByte(c)
	m.con.WriteString("\n")

	ret := m.gw.Call(sbi.EXT_HSM, sbi.HSM_HART_GET_STATUS, HartID(c), 0, 0, 0, 0, 0)

	// only single digit states render as digits
	m.con.WriteString("Hart status: ")
	m.con.WriteByte(byte(ret.Value + '0'))
	m.con.WriteString("\n")
}

// The HSM stop function has no hart argument, it always stops the calling
// hart.
func hartStopCmd(m *Menu) {
	m.con.WriteString("Stopping hart...\n")
	m.gw.Call(sbi.EXT_HSM, sbi.HSM_HART_STOP, 0, 0, 0, 0, 0, 0)
}

func shutdownCmd(m *Menu) {
	m.con.WriteString("Shutting the system down...\n")
	m.gw.Call(sbi.EXT_LEGACY_SHUTDOWN, 0, sbi.RESET_TYPE_SHUTDOWN, sbi.RESET_REASON_NONE, 0, 0, 0, 0)
}
