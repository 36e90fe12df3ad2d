// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sbitest provides a scripted SBI gateway for testing code built on
// package sbi.
package sbitest

import (
	"errors"

	"github.com/usbarmory/sbi-menu/sbi"
)

var (
	// ErrHalted unwinds a caller whose SBI call never returns.
	ErrHalted = errors.New("execution environment halted")
	// ErrInputExhausted unwinds a caller polling for console input after
	// the scripted input has been consumed.
	ErrInputExhausted = errors.New("scripted console input exhausted")
)

// Call represents a recorded SBI request.
type Call struct {
	EID  int64
	FID  int64
	Args [6]int64
}

// Key identifies an extension/function pair.
type Key struct {
	EID int64
	FID int64
}

// Gateway is an sbi.Gateway which records every request and answers with
// scripted results.
//
// Legacy console input requests are answered from Input, in order. Legacy
// console output requests are accumulated and available through Output.
type Gateway struct {
	// Calls holds every request, in issue order
	Calls []Call
	// Input holds the legacy getchar results (character or -1)
	Input []int64
	// Results maps requests to their result, unmapped requests return
	// a zero sbi.Ret
	Results map[Key]sbi.Ret
	// Halt reports whether a request never returns
	Halt func(Call) bool

	output []byte
}

// Call records the request and returns its scripted result.
//
// Requests for which Halt returns true panic with ErrHalted, after being
// recorded, so that the caller stack unwinds as if control never came back.
// A getchar request issued with no Input left panics with ErrInputExhausted.
func (g *Gateway) Call(eid, fid, a0, a1, a2, a3, a4, a5 int64) sbi.Ret {
	c := Call{
		EID:  eid,
		FID:  fid,
		Args: [6]int64{a0, a1, a2, a3, a4, a5},
	}

	g.Calls = append(g.Calls, c)

	if g.Halt != nil && g.Halt(c) {
		panic(ErrHalted)
	}

	switch eid {
	case sbi.EXT_LEGACY_PUTCHAR:
		g.output = append(g.output, byte(a0))
	case sbi.EXT_LEGACY_GETCHAR:
		if len(g.Input) == 0 {
			panic(ErrInputExhausted)
		}

		in := g.Input[0]
		g.Input = g.Input[1:]

		return sbi.Ret{Error: in}
	}

	return g.Results[Key{eid, fid}]
}

// Output returns all bytes written through legacy console output requests.
func (g *Gateway) Output() string {
	return string(g.output)
}

// Reset clears recorded requests and output, scripts are preserved.
func (g *Gateway) Reset() {
	g.Calls = nil
	g.output = nil
}

// Firmware returns the recorded requests which are not legacy console
// input or output.
func (g *Gateway) Firmware() (calls []Call) {
	for _, c := range g.Calls {
		if c.EID == sbi.EXT_LEGACY_PUTCHAR || c.EID == sbi.EXT_LEGACY_GETCHAR {
			continue
		}

		calls = append(calls, c)
	}

	return
}

// Count returns the number of recorded requests for the given extension.
func (g *Gateway) Count(eid int64) (n int) {
	for _, c := range g.Calls {
		if c.EID == eid {
			n++
		}
	}

	return
}

// Type queues a string as scripted console input.
func (g *Gateway) Type(s string) {
	for i := 0; i < len(s); i++ {
		g.Input = append(g.Input, int64(s[i]))
	}
}

// Unwind runs fn and returns the sentinel error it panicked with, if any.
// Panics other than ErrHalted and ErrInputExhausted are propagated.
func Unwind(fn func()) (err error) {
	defer func() {
		r := recover()

		if r == nil {
			return
		}

		if e, ok := r.(error); ok && (e == ErrHalted || e == ErrInputExhausted) {
			err = e
			return
		}

		panic(r)
	}()

	fn()

	return
}
