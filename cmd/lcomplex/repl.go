package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aarzilli/golua/lua"
	"golang.org/x/term"
)

const prompt = "> "

func repl(L *lua.State) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return replLines(L, os.Stdin, os.Stdout)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		report(t, L, line)
	}
}

func replLines(L *lua.State, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		report(w, L, sc.Text())
	}
	return sc.Err()
}

func report(w io.Writer, L *lua.State, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	out, err := eval(L, line)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	if out != "" {
		fmt.Fprintln(w, out)
	}
}

// eval runs line as an expression if it parses as one, otherwise as a
// statement, and returns the results joined by tabs.
func eval(L *lua.State, line string) (string, error) {
	top := L.GetTop()
	defer L.SetTop(top)

	if L.LoadString("return "+line) != 0 {
		L.SetTop(top)
		if L.LoadString(line) != 0 {
			return "", errors.New(L.ToString(-1))
		}
	}
	if err := L.Call(0, lua.LUA_MULTRET); err != nil {
		return "", err
	}

	n := L.GetTop()
	parts := make([]string, 0, n-top)
	for i := top + 1; i <= n; i++ {
		L.GetGlobal("tostring")
		L.PushValue(i)
		if err := L.Call(1, 1); err != nil {
			return "", err
		}
		parts = append(parts, L.ToString(-1))
		L.Pop(1)
	}
	return strings.Join(parts, "\t"), nil
}
