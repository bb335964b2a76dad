// File: executor.go
// Title: Binder and Dispatcher
// Description: Implements parameter binding, dependency resolution and
//              handler invocation with panic recovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-16 v0.2.0: Descriptor based binding

package executor

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

// Resolver supplies dependency parameters by type
type Resolver interface {
	Resolve(t reflect.Type) (interface{}, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(t reflect.Type) (interface{}, error)

// Resolve implements Resolver
func (f ResolverFunc) Resolve(t reflect.Type) (interface{}, error) {
	return f(t)
}

// Definitions looks up registered arguments and switches
type Definitions interface {
	Argument(name string) (*definition.Definition, bool)
	Switch(name string) (*definition.Definition, bool)
}

// Options configures executor behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Engine binds and dispatches commands
type Engine struct {
	logger *mdwlog.Logger
}

// New creates a new executor
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Engine{logger: opts.Logger.WithField("component", "cli-executor")}
}

// Bind resolves every handler parameter of cmd in declaration order
func (e *Engine) Bind(cmd *registry.Command, resolver Resolver, defs Definitions) (registry.Args, error) {
	params := cmd.Handler().Params
	values := make([]interface{}, 0, len(params))

	for _, param := range params {
		value, err := e.bindParam(cmd, param, resolver, defs)
		if err != nil {
			return registry.Args{}, err
		}
		values = append(values, value)
	}

	return registry.NewArgs(params, values), nil
}

func (e *Engine) bindParam(cmd *registry.Command, param registry.Param, resolver Resolver, defs Definitions) (interface{}, error) {
	if cmd.Declares(param.Name) {
		if def, ok := defs.Argument(param.Name); ok {
			if err := def.Validate(cmd.IsRequired(param.Name)); err != nil {
				return nil, err
			}
			return def.Value(), nil
		}
		if def, ok := defs.Switch(param.Name); ok {
			return def.Value(), nil
		}
	}

	if param.Kind == registry.ParamDependency && param.Type != nil {
		if resolver == nil {
			return nil, unresolvedDependency(cmd, param, fmt.Errorf("no dependency resolver configured"))
		}
		value, err := resolver.Resolve(param.Type)
		if err != nil {
			return nil, unresolvedDependency(cmd, param, err)
		}
		e.logger.Trace("dependency resolved", mdwlog.Fields{
			"command": cmd.Name(),
			"param":   param.Name,
			"type":    param.Type.String(),
		})
		return value, nil
	}

	return nil, mdwerror.New(fmt.Sprintf("command %q: cannot bind parameter %q", cmd.Name(), param.Name)).
		WithCode(mdwerror.CodeUnresolvedParameter).
		WithOperation("executor.Bind").
		WithDetail("command", cmd.Name()).
		WithDetail("param", param.Name)
}

// Dispatch binds cmd's parameters and invokes its handler
func (e *Engine) Dispatch(ctx context.Context, cmd *registry.Command, resolver Resolver, defs Definitions) error {
	args, err := e.Bind(cmd, resolver, defs)
	if err != nil {
		e.logger.Debug("binding failed", mdwlog.Fields{
			"command": cmd.Name(),
			"error":   err.Error(),
		})
		return err
	}

	start := time.Now()
	e.logger.Debug("dispatching command", mdwlog.Fields{
		"command": cmd.Name(),
		"params":  args.Len(),
	})

	if err := e.invoke(ctx, cmd, args); err != nil {
		e.logger.Debug("command failed", mdwlog.Fields{
			"command":  cmd.Name(),
			"duration": time.Since(start).String(),
			"error":    err.Error(),
		})
		return err
	}

	e.logger.Debug("command finished", mdwlog.Fields{
		"command":  cmd.Name(),
		"duration": time.Since(start).String(),
	})
	return nil
}

func (e *Engine) invoke(ctx context.Context, cmd *registry.Command, args registry.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mdwerror.New(fmt.Sprint(r)).
				WithCode(mdwerror.CodeWorker).
				WithOperation("executor.Dispatch").
				WithDetail("command", cmd.Name()).
				WithDetail("panic", fmt.Sprint(r))
		}
	}()

	if handlerErr := cmd.Handler().Fn(ctx, args); handlerErr != nil {
		return mdwerror.Wrap(handlerErr, "").
			WithCode(mdwerror.CodeWorker).
			WithOperation("executor.Dispatch").
			WithDetail("command", cmd.Name()).
			WithDetail("message", handlerErr.Error())
	}
	return nil
}

// Plan returns the parameter names Bind takes from defs, in order. For a
// complete descriptor these are exactly the names the command declares.
func Plan(cmd *registry.Command, defs Definitions) []string {
	var names []string
	for _, param := range cmd.Handler().Params {
		if !cmd.Declares(param.Name) {
			continue
		}
		if _, ok := defs.Argument(param.Name); ok {
			names = append(names, param.Name)
			continue
		}
		if _, ok := defs.Switch(param.Name); ok {
			names = append(names, param.Name)
		}
	}
	return names
}

func unresolvedDependency(cmd *registry.Command, param registry.Param, cause error) error {
	return mdwerror.Wrap(cause, fmt.Sprintf("command %q: cannot resolve %s for parameter %q", cmd.Name(), param.Type, param.Name)).
		WithCode(mdwerror.CodeUnresolvedDependency).
		WithOperation("executor.Bind").
		WithDetail("command", cmd.Name()).
		WithDetail("param", param.Name).
		WithDetail("type", param.Type.String())
}
