package lcomplex_test

import (
	"fmt"
	"strings"

	"github.com/aarzilli/golua/lua"
	"github.com/jjvbsag/lcomplex"
)

// printer prints its arguments through Lua's tostring, so that output can
// be checked by the example.
func printer(L *lua.State) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		L.GetGlobal("tostring")
		L.PushValue(i)
		L.Call(1, 1)
		parts = append(parts, L.ToString(-1))
		L.Pop(1)
	}
	fmt.Println(strings.Join(parts, "\t"))
	return 0
}

func Example() {
	const test = `
c1 = COMPLEX.new(1.2, 3.4)
c2 = COMPLEX.new(5.6, 7.8)
Print(c1 + c2)
Print(c1 - c2)
Print(c1 * c2)
Print(c1 / c2)
Print(c2:abs())
`
	L := lcomplex.Init()
	defer L.Close()

	L.Register("Print", printer)

	if err := L.DoString(test); err != nil {
		fmt.Println(err)
	}
	// Output:
	// {6.8,11.2}
	// {-4.4,-4.4}
	// {-19.8,28.4}
	// {0.36052060737527,0.10498915401302}
	// 92.2
}

func ExampleTransfer() {
	L1 := lcomplex.Init()
	defer L1.Close()
	L2 := lcomplex.Init()
	defer L2.Close()

	lcomplex.Push(L1, lcomplex.New(1.5, -2))
	if err := lcomplex.Transfer(L2, L1, -1); err != nil {
		fmt.Println(err)
		return
	}
	c, _ := lcomplex.Test(L2, -1)
	fmt.Println(c)
	// Output:
	// {1.5,-2}
}

func ExampleComplex_String() {
	fmt.Println(lcomplex.New(1.2, -3.4))
	fmt.Println(lcomplex.New(1, 0).Div(lcomplex.New(0, 0)).Re != 0)
	// Output:
	// {1.2,-3.4}
	// true
}
