package lcomplex

import (
	"math"
	"strconv"
	"unsafe"
)

// Complex is the record stored inside a Lua userdata. It holds no pointers,
// so a byte copy of it is a complete copy.
type Complex struct {
	Re float64
	Im float64
}

// Size is the number of bytes a Complex occupies in a Lua userdata.
const Size = unsafe.Sizeof(Complex{})

// New returns the complex number re+im*i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

func (a Complex) Mul(c Complex) Complex {
	return Complex{a.Re*c.Re - a.Im*c.Im, a.Re*c.Im + a.Im*c.Re}
}

// Div divides a by c. A zero divisor is not checked and yields NaN or Inf
// components.
func (a Complex) Div(c Complex) Complex {
	ccdd := c.Re*c.Re + c.Im*c.Im
	return Complex{(a.Re*c.Re + a.Im*c.Im) / ccdd, (a.Im*c.Re - a.Re*c.Im) / ccdd}
}

// Norm returns the squared magnitude re²+im². This is what the Lua 'abs'
// method returns by default.
func (a Complex) Norm() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

// Abs returns the modulus sqrt(re²+im²).
func (a Complex) Abs() float64 {
	return math.Sqrt(a.Norm())
}

// Complex128 converts to the builtin complex type.
func (a Complex) Complex128() complex128 {
	return complex(a.Re, a.Im)
}

// CloneTo copies the record into dst.
func (a *Complex) CloneTo(dst *Complex) {
	*dst = *a
}

// String formats the value as {re,im}, each field the way Lua 5.1 prints
// a number.
func (a Complex) String() string {
	buf := make([]byte, 0, 48)
	buf = append(buf, '{')
	buf = appendNumber(buf, a.Re)
	buf = append(buf, ',')
	buf = appendNumber(buf, a.Im)
	return string(append(buf, '}'))
}

// appendNumber follows LUA_NUMBER_FMT ("%.14g") including glibc's spelling
// of the non-finite values.
func appendNumber(buf []byte, f float64) []byte {
	switch {
	case math.IsInf(f, 1):
		return append(buf, "inf"...)
	case math.IsInf(f, -1):
		return append(buf, "-inf"...)
	case math.IsNaN(f):
		if math.Signbit(f) {
			return append(buf, "-nan"...)
		}
		return append(buf, "nan"...)
	}
	return strconv.AppendFloat(buf, f, 'g', 14, 64)
}
