// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbitest

import (
	"errors"
	"testing"

	"github.com/usbarmory/sbi-menu/sbi"
)

func TestGatewayScript(t *testing.T) {
	gw := &Gateway{
		Results: map[Key]sbi.Ret{
			{EID: sbi.EXT_BASE, FID: sbi.BASE_GET_IMPL_VERSION}: {Value: 7},
		},
	}
	gw.Type("ab")

	if ret := gw.Call(sbi.EXT_BASE, sbi.BASE_GET_IMPL_VERSION, 0, 0, 0, 0, 0, 0); ret.Value != 7 {
		t.Errorf("scripted result: %+v", ret)
	}

	if ret := gw.Call(sbi.EXT_LEGACY_GETCHAR, 0, 0, 0, 0, 0, 0, 0); ret.Error != 'a' {
		t.Errorf("scripted input: %+v", ret)
	}

	gw.Call(sbi.EXT_LEGACY_PUTCHAR, 0, 'z', 0, 0, 0, 0, 0)

	if got := gw.Output(); got != "z" {
		t.Errorf("output: %q", got)
	}

	if n := len(gw.Firmware()); n != 1 {
		t.Errorf("firmware calls: %d", n)
	}

	gw.Reset()

	if len(gw.Calls) != 0 || gw.Output() != "" || len(gw.Input) != 1 {
		t.Errorf("reset: %+v", gw)
	}
}

func TestUnwind(t *testing.T) {
	gw := &Gateway{
		Halt: func(c Call) bool { return c.EID == sbi.EXT_SRST },
	}

	if err := Unwind(func() { gw.Call(sbi.EXT_SRST, 0, 0, 0, 0, 0, 0, 0) }); err != ErrHalted {
		t.Errorf("halt: got %v", err)
	}

	if err := Unwind(func() { gw.Call(sbi.EXT_LEGACY_GETCHAR, 0, 0, 0, 0, 0, 0, 0) }); err != ErrInputExhausted {
		t.Errorf("input: got %v", err)
	}

	if err := Unwind(func() {}); err != nil {
		t.Errorf("no panic: got %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("foreign panic was not propagated")
		}
	}()

	Unwind(func() { panic(errors.New("foreign")) })
}
