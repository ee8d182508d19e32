// Copyright (c) 2010-2016 Steve Donovan

package lcomplex

import (
	"sort"

	"github.com/aarzilli/golua/lua"
	"go.uber.org/zap"
)

// Map associates Lua names with raw Go functions.
type Map map[string]lua.LuaGoFunction

func (m Map) names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// setFuncs stores the functions into the table on top of the stack.
func setFuncs(L *lua.State, funcs Map) {
	for _, name := range funcs.names() {
		L.PushGoFunction(funcs[name])
		L.SetField(-2, name)
	}
}

// RawRegister puts raw Go functions into the global table 'table', creating
// it if needed. The table is left on the stack.
func RawRegister(L *lua.State, table string, funcs Map) {
	L.GetGlobal(table)
	if L.IsNil(-1) {
		L.Pop(1)
		L.NewTable()
		L.PushValue(-1)
		L.SetGlobal(table)
	}
	setFuncs(L, funcs)
}

var moduleFuncs = Map{
	"new": complex_new,
}

func metaFuncs(opts Options) Map {
	return Map{
		"tostring":   complex__tostring,
		"__tostring": complex__tostring,
		"__add":      complex__add,
		"__sub":      complex__sub,
		"__mul":      complex__mul,
		"__div":      complex__div,
		"abs":        complexAbs(opts.Abs),
		cloneHook:    complex__lanesclone,
		"__gc":       complex__gc,
	}
}

// MetatableKey is the namespace field that exposes the metatable.
const MetatableKey = "__" + Marker + "MT"

// Module describes the outcome of opening the module in a state.
type Module struct {
	Namespace string
	Marker    string
	// Created is false when the metatable was already present, in which case
	// it was left as it was.
	Created   bool
	Methods   []string
}

// Open registers the namespace and the value metatable in L and leaves the
// namespace table on the stack.
func Open(L *lua.State, opts Options) *Module {
	if opts.Namespace == "" {
		opts.Namespace = DefaultOptions().Namespace
	}
	RawRegister(L, opts.Namespace, moduleFuncs)

	mt := metaFuncs(opts)
	created := L.NewMetaTable(Marker)
	if created {
		setFuncs(L, mt)
		L.PushValue(-1)
		L.SetField(-2, "__index")
	}
	L.SetField(-2, MetatableKey)

	if opts.Preload {
		preload(L, opts)
	}

	Logger().Debug("opened complex module",
		zap.String("namespace", opts.Namespace),
		zap.Bool("metatable_created", created))

	methods := append(mt.names(), "__index")
	sort.Strings(methods)
	return &Module{
		Namespace: opts.Namespace,
		Marker:    Marker,
		Created:   created,
		Methods:   methods,
	}
}

// Loader returns a module loader suitable for package.preload.
func Loader(opts Options) lua.LuaGoFunction {
	return func(L *lua.State) int {
		Open(L, opts)
		return 1
	}
}

func preload(L *lua.State, opts Options) {
	opts.Preload = false
	L.GetGlobal("package")
	if L.IsNil(-1) {
		L.Pop(1)
		return
	}
	L.GetField(-1, "preload")
	L.PushGoFunction(Loader(opts))
	L.SetField(-2, opts.Namespace)
	L.Pop(2)
}

// NewState makes a new Lua state with the standard libraries and this
// module opened.
func NewState(opts Options) *lua.State {
	L := lua.NewState()
	L.OpenLibs()
	Open(L, opts)
	L.Pop(1)
	return L
}

// Init is NewState with the default options.
func Init() *lua.State {
	return NewState(DefaultOptions())
}
