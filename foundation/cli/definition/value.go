// File: value.go
// Title: Tagged Optional Value
// Description: Value distinguishes an unset definition from one set to any
//              value, nil included.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package definition

import "fmt"

// Value is either Unset or Set(v)
type Value struct {
	v   interface{}
	set bool
}

// Unset returns the empty Value
func Unset() Value {
	return Value{}
}

// Set wraps v as a set Value
func Set(v interface{}) Value {
	return Value{v: v, set: true}
}

// IsSet reports whether the value was set
func (v Value) IsSet() bool {
	return v.set
}

// Get returns the wrapped value and whether it was set
func (v Value) Get() (interface{}, bool) {
	return v.v, v.set
}

// Or returns the wrapped value, or fallback when unset
func (v Value) Or(fallback interface{}) interface{} {
	if !v.set {
		return fallback
	}
	return v.v
}

// String renders the value for logs and help output
func (v Value) String() string {
	if !v.set {
		return "<unset>"
	}
	if v.v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.v)
}
