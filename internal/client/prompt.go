// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// promptCredentials takes the username from the command line when given and
// asks for the rest. The password is read without echo from a terminal and
// as a plain line otherwise, so it can be piped in. Empty answers are
// returned as they are; the server decides whether they are acceptable.
func (a *App) promptCredentials() (username, password string, err error) {
	if len(a.command) > 1 {
		username = a.command[1]
	} else {
		_, _ = fmt.Fprint(a.errOut, "Username: ")
		if username, err = a.readLine(); err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
	}

	_, _ = fmt.Fprint(a.errOut, "Password: ")
	if a.inFD >= 0 && isTerminal(a.inFD) {
		raw, readErr := readPassword(a.inFD)
		_, _ = fmt.Fprintln(a.errOut)
		if readErr != nil {
			return "", "", fmt.Errorf("read password: %w", readErr)
		}
		return username, string(raw), nil
	}

	if password, err = a.readLine(); err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}

	return username, password, nil
}

// readLine returns one line without its line ending. End of input ends the
// line, so closed stdin reads as an empty answer.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
