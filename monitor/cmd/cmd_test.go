// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/term"
)

type serial struct {
	io.Reader
	io.Writer
}

func session(input string) string {
	var out bytes.Buffer

	SerialConsole(&serial{
		Reader: strings.NewReader(input),
		Writer: &out,
	})

	return out.String()
}

func init() {
	Add(Cmd{
		Name:    "echo",
		Args:    1,
		Pattern: regexp.MustCompile(`^echo (\S+)$`),
		Syntax:  "<word>",
		Help:    "echo argument",
		Fn: func(_ *term.Terminal, arg []string) (string, error) {
			return "echo:" + arg[0], nil
		},
	})

	Add(Cmd{
		Name: "fail",
		Help: "always fails",
		Fn: func(_ *term.Terminal, _ []string) (string, error) {
			return "", errors.New("expected failure")
		},
	})
}

func TestConsoleHelp(t *testing.T) {
	Banner = "test monitor"

	out := session("exit\r")

	for _, s := range []string{"test monitor", "help", "exit", "echo", "<word>", "goodbye"} {
		if !strings.Contains(out, s) {
			t.Errorf("output is missing %q:\n%s", s, out)
		}
	}
}

func TestConsoleCommands(t *testing.T) {
	out := session("echo hello\rbogus\rfail\rquit\recho unreachable\r")

	if !strings.Contains(out, "echo:hello") {
		t.Errorf("missing command result:\n%s", out)
	}

	if !strings.Contains(out, "command error, unknown command") {
		t.Errorf("missing unknown command error:\n%s", out)
	}

	if !strings.Contains(out, "command error, expected failure") {
		t.Errorf("missing command error:\n%s", out)
	}

	if strings.Contains(out, "echo:unreachable") {
		t.Errorf("command served after quit:\n%s", out)
	}
}

func TestConsoleEOF(t *testing.T) {
	out := session("echo last\r")

	if !strings.Contains(out, "echo:last") {
		t.Errorf("missing command result:\n%s", out)
	}
}

func TestAddDefaultPattern(t *testing.T) {
	Add(Cmd{
		Name: "a.b",
		Fn: func(_ *term.Terminal, _ []string) (string, error) {
			return "", nil
		},
	})

	defer delete(cmds, "a.b")

	p := cmds["a.b"].Pattern

	if !p.MatchString("a.b") || p.MatchString("axb") || p.MatchString("a.b c") {
		t.Errorf("unexpected default pattern %v", p)
	}
}
