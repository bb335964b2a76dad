// File: handler.go
// Title: Handler Descriptors
// Description: A Handler pairs a function with the ordered list of
//              parameters it takes. Parameters are bound by name from the
//              registry or resolved by type from a dependency resolver.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package registry

import (
	"context"
	"fmt"
	"reflect"
)

// ParamKind tells the binder where a parameter's value comes from
type ParamKind int

const (
	// ParamValue is bound by name to an argument or switch
	ParamValue ParamKind = iota

	// ParamDependency is resolved by type from the dependency resolver
	ParamDependency
)

// String returns the string representation of the kind
func (k ParamKind) String() string {
	switch k {
	case ParamValue:
		return "value"
	case ParamDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

// Param describes one handler parameter
type Param struct {
	Name string
	Kind ParamKind
	Type reflect.Type
}

// Arg declares a parameter bound to the argument or switch called name
func Arg(name string) Param {
	return Param{Name: name, Kind: ParamValue}
}

// Dep declares a parameter resolved from the dependency resolver by type T
func Dep[T any](name string) Param {
	return Param{Name: name, Kind: ParamDependency, Type: reflect.TypeFor[T]()}
}

// HandlerFunc is invoked with the bound values in parameter order
type HandlerFunc func(ctx context.Context, args Args) error

// Handler is an explicit handler descriptor
type Handler struct {
	Params []Param
	Fn     HandlerFunc
}

// ParamNames returns the names of the value parameters in order
func (h Handler) ParamNames() []string {
	names := make([]string, 0, len(h.Params))
	for _, p := range h.Params {
		if p.Kind == ParamValue {
			names = append(names, p.Name)
		}
	}
	return names
}

// Args carries the values bound to a handler's parameters
type Args struct {
	params []Param
	values []interface{}
}

// NewArgs pairs params with their bound values
func NewArgs(params []Param, values []interface{}) Args {
	return Args{params: params, values: values}
}

// Values returns the bound values in parameter order
func (a Args) Values() []interface{} {
	return a.values
}

// Len returns the number of bound values
func (a Args) Len() int {
	return len(a.values)
}

// Get returns the value bound to the named parameter
func (a Args) Get(name string) (interface{}, bool) {
	for i, p := range a.params {
		if p.Name == name && i < len(a.values) {
			return a.values[i], true
		}
	}
	return nil, false
}

// String returns the named value as a string, "" when absent or nil
func (a Args) String(name string) string {
	v, _ := a.Get(name)
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Bool returns the named value as a bool. Switches hold bools; a short flag
// on an argument stores true.
func (a Args) Bool(name string) bool {
	v, _ := a.Get(name)
	b, _ := v.(bool)
	return b
}

// Dependency returns the value resolved for the named dependency parameter
func Dependency[T any](a Args, name string) (T, bool) {
	v, ok := a.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
