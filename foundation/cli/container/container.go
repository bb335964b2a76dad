// File: container.go
// Title: Dependency Container
// Description: Stores values and lazy providers keyed by reflect.Type.
//              Providers run once and their result is cached. An interface
//              type without an exact entry resolves to the single stored
//              value implementing it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

// Package container is a type keyed dependency container. It implements
// the executor's Resolver so handlers can declare dependency parameters.
package container

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

// Provider builds a value on first use
type Provider func(c *Container) (interface{}, error)

// Options configures the container
type Options struct {
	Logger *mdwlog.Logger
}

// Container holds dependencies by type
type Container struct {
	instances map[reflect.Type]interface{}
	providers map[reflect.Type]Provider
	resolving map[reflect.Type]bool
	logger    *mdwlog.Logger
}

// New creates an empty container
func New(opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Container{
		instances: make(map[reflect.Type]interface{}),
		providers: make(map[reflect.Type]Provider),
		resolving: make(map[reflect.Type]bool),
		logger:    opts.Logger.WithField("component", "cli-container"),
	}
}

// Set stores value under t. The value must be assignable to t.
func (c *Container) Set(t reflect.Type, value interface{}) error {
	if t == nil {
		return invalid("type cannot be nil")
	}
	if value == nil {
		if !nillable(t) {
			return invalid(fmt.Sprintf("nil is not a valid %s", t))
		}
	} else if !reflect.TypeOf(value).AssignableTo(t) {
		return invalid(fmt.Sprintf("%T is not assignable to %s", value, t))
	}

	c.instances[t] = value
	delete(c.providers, t)
	c.logger.Debug("dependency stored", mdwlog.Fields{"type": t.String()})
	return nil
}

// SetProvider registers a lazy provider for t
func (c *Container) SetProvider(t reflect.Type, provider Provider) error {
	if t == nil || provider == nil {
		return invalid("type and provider are required")
	}
	delete(c.instances, t)
	c.providers[t] = provider
	return nil
}

// Has reports whether t can be resolved without trying providers
func (c *Container) Has(t reflect.Type) bool {
	if _, ok := c.instances[t]; ok {
		return true
	}
	_, ok := c.providers[t]
	return ok
}

// Types returns the registered type names, sorted
func (c *Container) Types() []string {
	names := make([]string, 0, len(c.instances)+len(c.providers))
	for t := range c.instances {
		names = append(names, t.String())
	}
	for t := range c.providers {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// Resolve returns the dependency registered for t
func (c *Container) Resolve(t reflect.Type) (interface{}, error) {
	if t == nil {
		return nil, invalid("type cannot be nil")
	}

	if value, ok := c.instances[t]; ok {
		return value, nil
	}

	if provider, ok := c.providers[t]; ok {
		return c.provide(t, provider)
	}

	if t.Kind() == reflect.Interface {
		return c.resolveInterface(t)
	}

	return nil, unresolved(t, "no dependency registered")
}

func (c *Container) provide(t reflect.Type, provider Provider) (interface{}, error) {
	if c.resolving[t] {
		return nil, unresolved(t, "dependency cycle detected")
	}
	c.resolving[t] = true
	defer delete(c.resolving, t)

	value, err := provider(c)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("provider for %s failed", t)).
			WithCode(mdwerror.CodeUnresolvedDependency).
			WithOperation("container.Resolve").
			WithDetail("type", t.String())
	}
	if err := c.Set(t, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (c *Container) resolveInterface(t reflect.Type) (interface{}, error) {
	var (
		match   interface{}
		matches []string
	)
	for vt, value := range c.instances {
		if value != nil && reflect.TypeOf(value).Implements(t) {
			match = value
			matches = append(matches, vt.String())
		}
	}

	switch len(matches) {
	case 0:
		return nil, unresolved(t, "no dependency registered")
	case 1:
		return match, nil
	default:
		sort.Strings(matches)
		return nil, unresolved(t, "ambiguous: implemented by "+strings.Join(matches, ", "))
	}
}

// Provide stores value under T
func Provide[T any](c *Container, value T) error {
	return c.Set(reflect.TypeFor[T](), value)
}

// ProvideFunc registers a lazy provider for T
func ProvideFunc[T any](c *Container, fn func(c *Container) (T, error)) error {
	return c.SetProvider(reflect.TypeFor[T](), func(c *Container) (interface{}, error) {
		return fn(c)
	})
}

// Get resolves T
func Get[T any](c *Container) (T, error) {
	var zero T
	value, err := c.Resolve(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, unresolved(reflect.TypeFor[T](), fmt.Sprintf("stored %T does not match", value))
	}
	return typed, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func unresolved(t reflect.Type, reason string) error {
	return mdwerror.New(fmt.Sprintf("cannot resolve %s: %s", t, reason)).
		WithCode(mdwerror.CodeUnresolvedDependency).
		WithOperation("container.Resolve").
		WithDetail("type", t.String())
}

func invalid(message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("container.Set")
}
