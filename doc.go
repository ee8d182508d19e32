/*
Package lcomplex provides a complex number type for Lua, implemented in Go.

It uses Alessandro Arzilli's golua (https://github.com/aarzilli/golua).

A value is a 16 byte userdata holding two doubles. Its metatable is the
registry entry named by Marker, and every entry point checks it before
reading the fields. Values never change once created, and every operation
allocates a new one.

From Lua:

	c1 = COMPLEX.new(1.2, 3.4)
	c2 = COMPLEX.new(5.6, 7.8)
	print(c1 + c2)    --> {6.8,11.2}
	print(c1 / c2)    --> {0.36052060737527,0.10498915401302}
	print(c2:abs())   --> 92.2

Note that 'abs' returns the squared magnitude re²+im² unless the state was
opened with Options.Abs set to AbsMagnitude.

Division by zero is not checked, the result has NaN components.

Values can be moved between independent Lua states through the Lua Lanes
'__lanesclone' protocol. Transfer plays the role of Lanes: it asks the hook
for the record size, allocates a block in the destination state and has the
hook copy the record into it. Lane wraps a state that is fed this way and
runs chunks from its own goroutine.
*/
package lcomplex
