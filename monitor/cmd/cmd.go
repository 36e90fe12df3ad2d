// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the Security Monitor serial console.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"
)

// Banner is the console welcome message.
var Banner string

var cmds = make(map[string]*Cmd)

func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn: func(term *term.Terminal, _ []string) (string, error) {
			return Help(term), nil
		},
	})

	// leaving the console returns control to the monitor, which exits
	// QEMU through semihosting
	Add(Cmd{
		Name:    "exit",
		Pattern: regexp.MustCompile(`^(?:exit|quit)$`),
		Help:    "close console and power off",
		Fn: func(_ *term.Terminal, _ []string) (string, error) {
			return "goodbye", io.EOF
		},
	})
}

// Cmd represents a console command.
type Cmd struct {
	// Name is the command name, as shown in help
	Name string
	// Args is the number of arguments captured by Pattern
	Args int
	// Pattern matches the command line, defaults to Name
	Pattern *regexp.Regexp
	// Syntax is the argument syntax, as shown in help
	Syntax string
	// Help is the command description
	Help string
	// Fn is the command handler
	Fn func(term *term.Terminal, arg []string) (res string, err error)
}

// Add registers a console command.
func Add(cmd Cmd) {
	if cmd.Pattern == nil {
		cmd.Pattern = regexp.MustCompile(`^` + regexp.QuoteMeta(cmd.Name) + `$`)
	}

	cmds[cmd.Name] = &cmd
}

// Help returns the list of registered commands.
func Help(term *term.Terminal) string {
	var help bytes.Buffer
	var names []string

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(t, "%s\t%s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	t.Flush()

	return string(term.Escape.Cyan) + help.String() + string(term.Escape.Reset)
}

func handle(term *term.Terminal, line string) (err error) {
	var match *Cmd
	var arg []string

	for _, cmd := range cmds {
		m := cmd.Pattern.FindStringSubmatch(line)

		if len(m) > 0 && len(m)-1 == cmd.Args {
			match = cmd
			arg = m[1:]
			break
		}
	}

	if match == nil {
		return errors.New("unknown command, type `help`")
	}

	res, err := match.Fn(term, arg)

	if len(res) > 0 {
		fmt.Fprintln(term, res)
	}

	return
}

// Console serves commands over the given terminal until an `exit` command
// or EOF.
func Console(t *term.Terminal) {
	t.SetPrompt(string(t.Escape.Red) + "> " + string(t.Escape.Reset))

	fmt.Fprintf(t, "\n%s\n\n", Banner)
	fmt.Fprintf(t, "%s\n", Help(t))

	for {
		line, err := t.ReadLine()

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Printf("readline error, %v", err)
			continue
		}

		if err = handle(t, line); err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintf(t, "command error, %v\n", err)
		}
	}
}

// SerialConsole serves commands over a serial port.
func SerialConsole(uart io.ReadWriter) {
	Console(term.NewTerminal(uart, ""))
}
