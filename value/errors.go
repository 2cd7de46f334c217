package value

import "errors"

// ErrNotComparable is wrapped by comparison failures, mirroring spec.md's
// NotComparable error kind (the C++ source's exception of the same name).
var ErrNotComparable = errors.New("value: not comparable")

// ErrNoSuchMethod is wrapped when a method lookup fails, mirroring
// spec.md's NoSuchMethod error kind. Defined here, next to the comparison
// protocol errors, so both value and class can produce it without either
// importing the other's error type.
var ErrNoSuchMethod = errors.New("value: no such method")
