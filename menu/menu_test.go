// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package menu

import (
	"strings"
	"testing"

	"github.com/usbarmory/sbi-menu/console"
	"github.com/usbarmory/sbi-menu/sbi"
	"github.com/usbarmory/sbi-menu/sbi/sbitest"
)

func newMenu(gw *sbitest.Gateway) *Menu {
	return New(gw, console.New(gw))
}

func TestBanner(t *testing.T) {
	gw := &sbitest.Gateway{}
	newMenu(gw).Banner()

	out := gw.Output()

	for _, line := range []string{
		"1. Get SBI implementation version\n",
		"2. Hart get status\n",
		"3. Hart stop\n",
		"4. System shutdown\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("banner is missing %q:\n%s", line, out)
		}
	}

	if len(gw.Firmware()) != 0 {
		t.Errorf("unexpected firmware calls: %+v", gw.Firmware())
	}
}

func TestHartStatusDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		gw := &sbitest.Gateway{}
		gw.Type("2" + string(d))

		newMenu(gw).Step()

		calls := gw.Firmware()

		if len(calls) != 1 {
			t.Fatalf("hart %c: expected 1 firmware call, got %+v", d, calls)
		}

		c := calls[0]

		if c.EID != sbi.EXT_HSM || c.FID != sbi.HSM_HART_GET_STATUS {
			t.Errorf("hart %c: got eid:%#x fid:%d", d, c.EID, c.FID)
		}

		if c.Args[0] != int64(d-'0') {
			t.Errorf("hart %c: got a0:%d, want %d", d, c.Args[0], d-'0')
		}
	}
}

func TestHartStatusOutput(t *testing.T) {
	gw := &sbitest.Gateway{
		Results: map[sbitest.Key]sbi.Ret{
			{EID: sbi.EXT_HSM, FID: sbi.HSM_HART_GET_STATUS}: {Value: sbi.HART_STOPPED},
		},
	}
	gw.Type("23")

	newMenu(gw).Step()

	out := gw.Output()

	for _, s := range []string{"Chosen option: 2\n", "Enter hart ID: 3\n", "Hart status: 1\n"} {
		if !strings.Contains(out, s) {
			t.Errorf("output is missing %q:\n%q", s, out)
		}
	}
}

func TestHartStatusUnvalidated(t *testing.T) {
	gw := &sbitest.Gateway{}
	gw.Type("2a")

	newMenu(gw).Step()

	calls := gw.Firmware()

	if len(calls) != 1 {
		t.Fatalf("expected 1 firmware call, got %+v", calls)
	}

	if want := int64('a' - '0'); calls[0].Args[0] != want {
		t.Errorf("got a0:%d, want %d", calls[0].Args[0], want)
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		value int64
		major int64
		minor int64
	}{
		{0x00020001, 2, 1},
		{0xffff0000, 65535, 0},
		{0x0001000a, 1, 10},
		{0, 0, 0},
	}

	for _, tt := range tests {
		major, minor := Version(tt.value)

		if major != tt.major || minor != tt.minor {
			t.Errorf("%#x: got %d.%d, want %d.%d", tt.value, major, minor, tt.major, tt.minor)
		}
	}
}

func TestQueryVersion(t *testing.T) {
	gw := &sbitest.Gateway{
		Results: map[sbitest.Key]sbi.Ret{
			{EID: sbi.EXT_BASE, FID: sbi.BASE_GET_IMPL_VERSION}: {Value: 0x00020001},
		},
	}
	gw.Type("1")

	newMenu(gw).Step()

	calls := gw.Firmware()

	if len(calls) != 1 || calls[0].EID != sbi.EXT_BASE || calls[0].FID != sbi.BASE_GET_IMPL_VERSION {
		t.Fatalf("unexpected firmware calls: %+v", calls)
	}

	if out := gw.Output(); !strings.Contains(out, "SBI implementation version: 2.1\n") {
		t.Errorf("unexpected output:\n%q", out)
	}
}

func TestInvalidCommand(t *testing.T) {
	gw := &sbitest.Gateway{}
	gw.Type("9")

	err := sbitest.Unwind(newMenu(gw).Run)

	if err != sbitest.ErrInputExhausted {
		t.Fatalf("expected loop to wait for another command, got %v", err)
	}

	if calls := gw.Firmware(); len(calls) != 0 {
		t.Errorf("unexpected firmware calls: %+v", calls)
	}

	out := gw.Output()

	if !strings.Contains(out, "please choose a listed option") {
		t.Errorf("missing invalid option message:\n%q", out)
	}

	if !strings.HasSuffix(out, prompt) {
		t.Errorf("missing trailing prompt:\n%q", out)
	}

	// 1 command read plus the poll for the next one
	if n := gw.Count(sbi.EXT_LEGACY_GETCHAR); n != 2 {
		t.Errorf("expected 2 getchar calls, got %d", n)
	}
}

func TestShutdown(t *testing.T) {
	gw := &sbitest.Gateway{
		Halt: func(c sbitest.Call) bool {
			return c.EID == sbi.EXT_LEGACY_SHUTDOWN
		},
	}
	gw.Type("41")

	err := sbitest.Unwind(newMenu(gw).Run)

	if err != sbitest.ErrHalted {
		t.Fatalf("expected halt, got %v", err)
	}

	calls := gw.Firmware()

	if len(calls) != 1 {
		t.Fatalf("expected exactly 1 firmware call, got %+v", calls)
	}

	c := calls[0]

	if c.EID != 0x08 || c.FID != 0 || c.Args[0] != 0 || c.Args[1] != 0 {
		t.Errorf("unexpected shutdown call: %+v", c)
	}

	if len(gw.Input) != 1 {
		t.Errorf("commands processed after shutdown, remaining input: %v", gw.Input)
	}
}

func TestShutdownReturns(t *testing.T) {
	gw := &sbitest.Gateway{}
	gw.Type("4")

	err := sbitest.Unwind(newMenu(gw).Run)

	if err != sbitest.ErrInputExhausted {
		t.Fatalf("expected loop to continue, got %v", err)
	}

	if !strings.HasSuffix(gw.Output(), prompt) {
		t.Errorf("missing trailing prompt:\n%q", gw.Output())
	}
}

func TestHartStop(t *testing.T) {
	gw := &sbitest.Gateway{}
	// select hart 7 first, stop must not target it
	gw.Type("273")

	m := newMenu(gw)
	m.Step()
	gw.Reset()
	m.Step()

	calls := gw.Firmware()

	if len(calls) != 1 {
		t.Fatalf("expected 1 firmware call, got %+v", calls)
	}

	c := calls[0]

	if c.EID != sbi.EXT_HSM || c.FID != sbi.HSM_HART_STOP {
		t.Errorf("got eid:%#x fid:%d", c.EID, c.FID)
	}

	if c.Args != [6]int64{} {
		t.Errorf("unexpected arguments: %v", c.Args)
	}
}

func TestEcho(t *testing.T) {
	gw := &sbitest.Gateway{}
	gw.Type("x")

	newMenu(gw).Step()

	if out := gw.Output(); !strings.HasPrefix(out, "Chosen option: x\n") {
		t.Errorf("unexpected echo:\n%q", out)
	}
}
