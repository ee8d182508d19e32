package lcomplex

import (
	"errors"
	"fmt"

	"github.com/aarzilli/golua/lua"
)

var (
	ErrTypeMismatch  = errors.New("value is not a " + Marker)
	ErrBadArity      = errors.New("unexpected argument count")
	ErrNotClonable   = errors.New("value has no " + cloneHook + " metamethod")
	ErrBadSize       = errors.New("clone size does not match record size")
	ErrNotRegistered = errors.New("module is not opened in destination state")
)

// RaiseError raises a Lua error from Go code.
func RaiseError(L *lua.State, msg string) {
	L.Where(1)
	pos := L.ToString(-1)
	L.Pop(1)
	panic(L.NewError(pos + " " + msg))
}

func argError(L *lua.State, narg int, fname, msg string) {
	RaiseError(L, fmt.Sprintf("bad argument #%d to '%s' (%s)", narg, fname, msg))
}

func typeError(L *lua.State, narg int, fname, expected string) {
	argError(L, narg, fname, fmt.Sprintf("%s expected, got %s", expected, L.LTypename(narg)))
}
