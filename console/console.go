// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package console implements byte oriented console I/O over the SBI legacy
// console extensions.
//
// Every character is a separate SBI call, there is no buffering.
package console

import (
	"io"

	"github.com/usbarmory/sbi-menu/sbi"
)

// NoChar is the legacy getchar result for "no character available".
const NoChar = -1

// Console represents an SBI legacy console.
type Console struct {
	gw sbi.Gateway
}

// New returns a console issuing its calls through the given gateway.
func New(gw sbi.Gateway) *Console {
	return &Console{
		gw: gw,
	}
}

// Putchar writes one character, the call result is ignored.
func (c *Console) Putchar(b byte) {
	c.gw.Call(sbi.EXT_LEGACY_PUTCHAR, 0, int64(b), 0, 0, 0, 0, 0)
}

// Getchar polls for one character. The legacy interface returns it in the
// error slot, NoChar signals that none is currently available.
func (c *Console) Getchar() int {
	return int(c.gw.Call(sbi.EXT_LEGACY_GETCHAR, 0, 0, 0, 0, 0, 0, 0).Error)
}

// ReadByte spins on Getchar until a character is available, it never
// returns an error.
func (c *Console) ReadByte() (byte, error) {
	for {
		if ch := c.Getchar(); ch != NoChar {
			return byte(ch), nil
		}
	}
}

// WriteByte implements io.ByteWriter.
func (c *Console) WriteByte(b byte) error {
	c.Putchar(b)
	return nil
}

// WriteString writes s one character at a time, stopping before the first
// NUL terminator if any. A string cut short by a terminator returns the
// number of characters written and io.ErrShortWrite.
func (c *Console) WriteString(s string) (n int, err error) {
	for ; n < len(s) && s[n] != 0; n++ {
		c.Putchar(s[n])
	}

	if n < len(s) {
		err = io.ErrShortWrite
	}

	return
}

// Write implements io.Writer, unlike WriteString it does not treat NUL as a
// terminator.
func (c *Console) Write(p []byte) (n int, err error) {
	for _, b := range p {
		c.Putchar(b)
	}

	return len(p), nil
}
