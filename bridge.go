package lcomplex

import (
	"fmt"
	"unsafe"

	"github.com/aarzilli/golua/lua"
)

// Marker names the registry metatable of complex values. A userdata is a
// complex value if and only if its metatable is this one.
const Marker = "COMPLEX-27A6AB09-6B67-4D08-BF4C-E054141C07DC"

const cloneHook = "__lanesclone"

func absIndex(L *lua.State, idx int) int {
	if idx < 0 && idx > lua.LUA_REGISTRYINDEX {
		return L.GetTop() + idx + 1
	}
	return idx
}

// Push allocates a new complex userdata in L holding c. The module must have
// been opened in L.
func Push(L *lua.State, c Complex) int {
	ptr := (*Complex)(L.NewUserdata(Size))
	L.LGetMetaTable(Marker)
	L.SetMetaTable(-2)
	*ptr = c
	return 1
}

// userdata returns the record at idx, or nil if idx does not hold a complex
// value.
func userdata(L *lua.State, idx int) *Complex {
	idx = absIndex(L, idx)
	if L.Type(idx) != lua.LUA_TUSERDATA {
		return nil
	}
	if !L.GetMetaTable(idx) {
		return nil
	}
	L.LGetMetaTable(Marker)
	ok := L.RawEqual(-1, -2)
	L.Pop(2)
	if !ok {
		return nil
	}
	return (*Complex)(L.ToUserdata(idx))
}

// Test reports whether idx holds a complex value and returns a copy of it.
func Test(L *lua.State, idx int) (Complex, bool) {
	if p := userdata(L, idx); p != nil {
		return *p, true
	}
	return Complex{}, false
}

// Check returns the complex value at argument narg, raising a Lua error
// naming fname if it is anything else.
func Check(L *lua.State, narg int, fname string) Complex {
	p := userdata(L, narg)
	if p == nil {
		typeError(L, narg, fname, Marker)
	}
	return *p
}

func checkNumber(L *lua.State, narg int, fname string) float64 {
	if !L.IsNumber(narg) {
		typeError(L, narg, fname, "number")
	}
	return L.ToNumber(narg)
}

// complex_new implements COMPLEX.new(re, im).
func complex_new(L *lua.State) int {
	re := checkNumber(L, 1, "new")
	im := checkNumber(L, 2, "new")
	return Push(L, New(re, im))
}

func complex__tostring(L *lua.State) int {
	c := Check(L, 1, "tostring")
	L.PushString(c.String())
	return 1
}

func complex__add(L *lua.State) int {
	a := Check(L, 1, "__add")
	b := Check(L, 2, "__add")
	return Push(L, a.Add(b))
}

func complex__sub(L *lua.State) int {
	a := Check(L, 1, "__sub")
	b := Check(L, 2, "__sub")
	return Push(L, a.Sub(b))
}

func complex__mul(L *lua.State) int {
	a := Check(L, 1, "__mul")
	b := Check(L, 2, "__mul")
	return Push(L, a.Mul(b))
}

func complex__div(L *lua.State) int {
	a := Check(L, 1, "__div")
	c := Check(L, 2, "__div")
	return Push(L, a.Div(c))
}

// complexAbs returns the 'abs' method for the given mode.
func complexAbs(mode AbsMode) lua.LuaGoFunction {
	if mode == AbsMagnitude {
		return func(L *lua.State) int {
			L.PushNumber(Check(L, 1, "abs").Abs())
			return 1
		}
	}
	return func(L *lua.State) int {
		L.PushNumber(Check(L, 1, "abs").Norm())
		return 1
	}
}

// complex__lanesclone is called by Lanes with no arguments to learn the
// record size, and with (destination, source) to copy a record.
func complex__lanesclone(L *lua.State) int {
	switch n := L.GetTop(); n {
	case 0:
		L.PushInteger(int64(Size))
		return 1
	case 2:
		to := (*Complex)(L.ToUserdata(1))
		from := (*Complex)(L.ToUserdata(2))
		if to == nil || from == nil {
			RaiseError(L, cloneHook+": arguments must be userdata")
		}
		from.CloneTo(to)
		return 0
	default:
		RaiseError(L, fmt.Sprintf("%s: %v %d (want 0 or 2)", cloneHook, ErrBadArity, n))
	}
	return 0
}

// The record owns nothing outside its own block.
func complex__gc(L *lua.State) int {
	return 0
}

func lightUserdata(p unsafe.Pointer) *interface{} {
	return (*interface{})(p)
}
