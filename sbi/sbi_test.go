// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbi

import (
	"testing"
)

func TestRetErr(t *testing.T) {
	tests := []struct {
		status int64
		want   error
	}{
		{SBI_SUCCESS, nil},
		{SBI_ERR_FAILED, ErrFailed},
		{SBI_ERR_NOT_SUPPORTED, ErrNotSupported},
		{SBI_ERR_INVALID_PARAM, ErrInvalidParam},
		{SBI_ERR_DENIED, ErrDenied},
		{SBI_ERR_INVALID_ADDRESS, ErrInvalidAddress},
		{SBI_ERR_ALREADY_AVAILABLE, ErrAlreadyAvailable},
		{SBI_ERR_ALREADY_STARTED, ErrAlreadyStarted},
		{SBI_ERR_ALREADY_STOPPED, ErrAlreadyStopped},
	}

	for _, tt := range tests {
		if got := (Ret{Error: tt.status, Value: 42}).Err(); got != tt.want {
			t.Errorf("status %d: got %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRetErrUnknown(t *testing.T) {
	err := Ret{Error: -100}.Err()

	if err == nil {
		t.Fatal("expected error for unknown status")
	}

	if got, want := err.Error(), "unknown SBI error -100"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGatewayFunc(t *testing.T) {
	var got [8]int64

	gw := GatewayFunc(func(eid, fid, a0, a1, a2, a3, a4, a5 int64) Ret {
		got = [8]int64{eid, fid, a0, a1, a2, a3, a4, a5}
		return Ret{Error: 1, Value: 2}
	})

	ret := gw.Call(EXT_HSM, HSM_HART_GET_STATUS, 3, 4, 5, 6, 7, 8)

	if want := [8]int64{EXT_HSM, HSM_HART_GET_STATUS, 3, 4, 5, 6, 7, 8}; got != want {
		t.Errorf("arguments: got %v, want %v", got, want)
	}

	if ret.Error != 1 || ret.Value != 2 {
		t.Errorf("result: got %+v", ret)
	}
}

func TestExtensionIDs(t *testing.T) {
	if EXT_HSM != 0x48534D {
		t.Errorf("EXT_HSM: %#x", EXT_HSM)
	}

	if EXT_SRST != 0x53525354 {
		t.Errorf("EXT_SRST: %#x", EXT_SRST)
	}
}
