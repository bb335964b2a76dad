// File: executor_test.go
// Title: Binder and Dispatcher Tests
// Description: Tests for parameter binding, validation during binding,
//              dependency resolution, handler failures and Plan.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16

package executor

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/mCLI/foundation/cli/container"
	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

type clock struct{ now string }

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(registry.Options{Logger: mdwlog.Discard()})
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(reg.RegisterArgument(definition.New("name").SetFormat("string:1..8")))
	must(reg.RegisterArgument(definition.New("dir")))
	must(reg.RegisterSwitch(definition.New("force")))
	return reg
}

func newEngine() *Engine {
	return New(Options{Logger: mdwlog.Discard()})
}

func TestDispatchBindsInParamOrder(t *testing.T) {
	reg := newRegistry(t)
	name, _ := reg.Argument("name")
	name.SetValue("demo")

	var got []interface{}
	cmd := registry.NewCommand("create", registry.Handler{
		Params: []registry.Param{registry.Arg("force"), registry.Arg("dir"), registry.Arg("name")},
		Fn: func(_ context.Context, args registry.Args) error {
			got = args.Values()
			return nil
		},
	}).WithRequired("name").WithOptional("dir").WithSwitch("force")

	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if diff := cmp.Diff([]interface{}{false, nil, "demo"}, got); diff != "" {
		t.Errorf("bound values mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchWithoutRequiredArgs(t *testing.T) {
	reg := newRegistry(t)
	ran := false
	cmd := registry.NewCommand("run", registry.Handler{
		Fn: func(context.Context, registry.Args) error { ran = true; return nil },
	})

	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); err != nil || !ran {
		t.Fatalf("Dispatch() = %v, ran %v", err, ran)
	}
}

func TestDispatchValidation(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		set   bool
		want  mdwerror.Code
	}{
		{"missing", nil, false, mdwerror.CodeMissingRequired},
		{"too long", "much-too-long", true, mdwerror.CodeFormatValidation},
		{"supplied", "ok", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry(t)
			if tt.set {
				def, _ := reg.Argument("name")
				def.SetValue(tt.value)
			}
			cmd := registry.NewCommand("create", registry.Handler{
				Params: []registry.Param{registry.Arg("name")},
				Fn:     func(context.Context, registry.Args) error { return nil },
			}).WithRequired("name")

			err := newEngine().Dispatch(context.Background(), cmd, nil, reg)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Dispatch() error = %v", err)
				}
				return
			}
			if !mdwerror.HasCode(err, tt.want) {
				t.Fatalf("Dispatch() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestOptionalArgumentValidatedWhenSet(t *testing.T) {
	reg := newRegistry(t)
	reg.RegisterArgument(definition.New("count").SetFormat("int"))
	count, _ := reg.Argument("count")

	cmd := registry.NewCommand("run", registry.Handler{
		Params: []registry.Param{registry.Arg("count")},
		Fn:     func(context.Context, registry.Args) error { return nil },
	}).WithOptional("count")

	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); err != nil {
		t.Fatalf("unset optional should pass: %v", err)
	}
	count.SetValue(nil)
	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); err != nil {
		t.Fatalf("nil optional should pass the nullable rule: %v", err)
	}
	count.SetValue("many")
	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); !mdwerror.HasCode(err, mdwerror.CodeFormatValidation) {
		t.Fatalf("invalid optional error = %v", err)
	}
}

func TestDependencies(t *testing.T) {
	reg := newRegistry(t)
	deps := container.New(container.Options{Logger: mdwlog.Discard()})
	container.Provide(deps, &clock{now: "noon"})

	var got *clock
	cmd := registry.NewCommand("time", registry.Handler{
		Params: []registry.Param{registry.Dep[*clock]("clock")},
		Fn: func(_ context.Context, args registry.Args) error {
			got, _ = registry.Dependency[*clock](args, "clock")
			return nil
		},
	})

	if err := newEngine().Dispatch(context.Background(), cmd, deps, reg); err != nil {
		t.Fatal(err)
	}
	if got == nil || got.now != "noon" {
		t.Errorf("dependency = %v", got)
	}

	empty := container.New(container.Options{Logger: mdwlog.Discard()})
	if err := newEngine().Dispatch(context.Background(), cmd, empty, reg); !mdwerror.HasCode(err, mdwerror.CodeUnresolvedDependency) {
		t.Errorf("missing dependency error = %v", err)
	}
	if err := newEngine().Dispatch(context.Background(), cmd, nil, reg); !mdwerror.HasCode(err, mdwerror.CodeUnresolvedDependency) {
		t.Errorf("nil resolver error = %v", err)
	}
}

func TestUnresolvedParameter(t *testing.T) {
	reg := newRegistry(t)
	tests := []struct {
		name  string
		param registry.Param
	}{
		{"unknown name", registry.Arg("ghost")},
		{"registered but undeclared", registry.Arg("dir")},
		{"dependency without type", registry.Param{Name: "x", Kind: registry.ParamDependency}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := registry.NewCommand("run", registry.Handler{
				Params: []registry.Param{tt.param},
				Fn:     func(context.Context, registry.Args) error { return nil },
			})
			err := newEngine().Dispatch(context.Background(), cmd, nil, reg)
			if !mdwerror.HasCode(err, mdwerror.CodeUnresolvedParameter) {
				t.Fatalf("Dispatch() error = %v, want UNRESOLVED_PARAMETER", err)
			}
		})
	}
}

func TestWorkerErrors(t *testing.T) {
	reg := newRegistry(t)
	boom := errors.New("disk full")

	failing := registry.NewCommand("fail", registry.Handler{
		Fn: func(context.Context, registry.Args) error { return boom },
	})
	err := newEngine().Dispatch(context.Background(), failing, nil, reg)
	if !mdwerror.HasCode(err, mdwerror.CodeWorker) || !errors.Is(err, boom) {
		t.Fatalf("handler error = %v", err)
	}
	if got := err.Error(); got != "disk full" {
		t.Errorf("Error() = %q, want the handler message", got)
	}
	coded, _ := mdwerror.As(err)
	if msg, _ := coded.Detail("message"); msg != "disk full" {
		t.Errorf("message detail = %v, want disk full", msg)
	}
	if name, _ := coded.Detail("command"); name != "fail" {
		t.Errorf("command detail = %v, want fail", name)
	}

	panicking := registry.NewCommand("panic", registry.Handler{
		Fn: func(context.Context, registry.Args) error { panic("nil map") },
	})
	err = newEngine().Dispatch(context.Background(), panicking, nil, reg)
	if !mdwerror.HasCode(err, mdwerror.CodeWorker) {
		t.Fatalf("panic error = %v", err)
	}
	if got := err.Error(); got != "nil map" {
		t.Errorf("Error() = %q, want the panic value", got)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	reg := newRegistry(t)
	cmd := registry.NewCommand("create", registry.Handler{
		Params: []registry.Param{
			registry.Arg("name"),
			registry.Dep[*clock]("clock"),
			registry.Arg("force"),
			registry.Arg("dir"),
		},
		Fn: func(context.Context, registry.Args) error { return nil },
	}).WithRequired("name").WithOptional("dir").WithSwitch("force")

	plan := Plan(cmd, reg)
	if diff := cmp.Diff([]string{"name", "force", "dir"}, plan); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}

	declared := map[string]bool{}
	for _, n := range cmd.Declared() {
		declared[n] = true
	}
	planned := map[string]bool{}
	for _, n := range plan {
		planned[n] = true
	}
	if diff := cmp.Diff(declared, planned); diff != "" {
		t.Errorf("declared names and planned names differ (-declared +planned):\n%s", diff)
	}
}

func TestResolverFunc(t *testing.T) {
	var r Resolver = ResolverFunc(func(t reflect.Type) (interface{}, error) {
		return t.String(), nil
	})
	v, err := r.Resolve(reflect.TypeFor[int]())
	if err != nil || v != "int" {
		t.Errorf("Resolve() = %v, %v", v, err)
	}
}
