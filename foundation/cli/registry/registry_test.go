// File: registry_test.go
// Title: Registry Tests
// Description: Tests for registration invariants, lookups and ordering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package registry

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/mCLI/foundation/cli/definition"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	"github.com/msto63/mCLI/foundation/core/log"
)

func newTestRegistry() *Registry {
	return New(Options{Logger: log.Discard()})
}

func noop(context.Context, Args) error { return nil }

func command(name string) *Command {
	return NewCommand(name, Handler{Fn: noop})
}

func TestLookupByNameAndShortcut(t *testing.T) {
	reg := newTestRegistry()
	name := definition.New("name").SetShortcut("n")
	force := definition.New("force").SetShortcut("f")

	if err := reg.RegisterArgument(name); err != nil {
		t.Fatalf("RegisterArgument() error = %v", err)
	}
	if err := reg.RegisterSwitch(force); err != nil {
		t.Fatalf("RegisterSwitch() error = %v", err)
	}

	tests := []struct {
		key  string
		want *definition.Definition
		kind Kind
	}{
		{"name", name, KindArgument},
		{"n", name, KindArgument},
		{"force", force, KindSwitch},
		{"f", force, KindSwitch},
	}
	for _, tt := range tests {
		got, kind, ok := reg.Lookup(tt.key)
		if !ok || got != tt.want || kind != tt.kind {
			t.Errorf("Lookup(%q) = %v, %s, %v", tt.key, got, kind, ok)
		}
	}

	if byShortcut, _, _ := reg.ResolveShortcut("n"); byShortcut != name {
		t.Error("ResolveShortcut(n) should return the name argument")
	}
	if _, _, ok := reg.Lookup("x"); ok {
		t.Error("Lookup(x) should fail")
	}
}

func TestSwitchStartsFalse(t *testing.T) {
	reg := newTestRegistry()
	force := definition.New("force")

	if err := reg.RegisterSwitch(force); err != nil {
		t.Fatal(err)
	}
	if !force.IsSet() || force.Value() != false {
		t.Errorf("switch value = %v (set %v), want false", force.Value(), force.IsSet())
	}
}

func TestRejectedSwitchKeepsValue(t *testing.T) {
	reg := newTestRegistry()
	name := definition.New("name")
	if err := reg.RegisterArgument(name); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		def  *definition.Definition
		code mdwerror.Code
	}{
		{"already an argument", name, mdwerror.CodeDuplicateName},
		{"invalid shortcut", definition.New("other").SetShortcut("xy"), mdwerror.CodeInvalidDefinition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := reg.RegisterSwitch(tt.def); !mdwerror.HasCode(err, tt.code) {
				t.Fatalf("RegisterSwitch() error = %v, want %s", err, tt.code)
			}
			if tt.def.IsSet() {
				t.Errorf("rejected switch left value %v set", tt.def.Value())
			}
		})
	}

	cmd := NewCommand("run", Handler{Params: []Param{Arg("name")}, Fn: noop}).WithRequired("name")
	if err := reg.RegisterCommand(cmd); err != nil {
		t.Fatal(err)
	}
	if err := name.Validate(cmd.IsRequired("name")); !mdwerror.HasCode(err, mdwerror.CodeMissingRequired) {
		t.Errorf("Validate() error = %v, want MISSING_REQUIRED", err)
	}
}

func TestDuplicates(t *testing.T) {
	type register func(*Registry, *definition.Definition) error
	arg := (*Registry).RegisterArgument
	sw := (*Registry).RegisterSwitch

	tests := []struct {
		name   string
		first  register
		second register
		a, b   *definition.Definition
		want   mdwerror.Code
	}{
		{"argument name twice", arg, arg, definition.New("x"), definition.New("x"), mdwerror.CodeDuplicateName},
		{"switch then argument", sw, arg, definition.New("x"), definition.New("x"), mdwerror.CodeDuplicateName},
		{"argument then switch", arg, sw, definition.New("x"), definition.New("x"), mdwerror.CodeDuplicateName},
		{"shortcut arg/arg", arg, arg, definition.New("a").SetShortcut("s"), definition.New("b").SetShortcut("s"), mdwerror.CodeDuplicateShortcut},
		{"shortcut switch/arg", sw, arg, definition.New("a").SetShortcut("s"), definition.New("b").SetShortcut("s"), mdwerror.CodeDuplicateShortcut},
		{"shortcut arg/switch", arg, sw, definition.New("a").SetShortcut("s"), definition.New("b").SetShortcut("s"), mdwerror.CodeDuplicateShortcut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			if err := tt.first(reg, tt.a); err != nil {
				t.Fatalf("first registration failed: %v", err)
			}
			if err := tt.second(reg, tt.b); !mdwerror.HasCode(err, tt.want) {
				t.Fatalf("second registration error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestInvalidDefinitions(t *testing.T) {
	reg := newTestRegistry()

	if err := reg.RegisterArgument(nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidDefinition) {
		t.Errorf("nil argument error = %v", err)
	}
	if err := reg.RegisterArgument(definition.New("x").SetShortcut("xy")); !mdwerror.HasCode(err, mdwerror.CodeInvalidDefinition) {
		t.Errorf("long shortcut error = %v", err)
	}
	if err := reg.RegisterCommand(NewCommand("run", Handler{})); !mdwerror.HasCode(err, mdwerror.CodeInvalidDefinition) {
		t.Errorf("handler-less command error = %v", err)
	}
	if err := reg.RegisterCommand(command("--run")); !mdwerror.HasCode(err, mdwerror.CodeInvalidDefinition) {
		t.Errorf("dashed command name error = %v", err)
	}
}

func TestCommandForwardReference(t *testing.T) {
	reg := newTestRegistry()

	err := reg.RegisterCommand(command("create").WithRequired("name"))
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownArgument) {
		t.Fatalf("forward reference error = %v, want UNKNOWN_ARGUMENT", err)
	}

	if err := reg.RegisterArgument(definition.New("name")); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterCommand(command("create").WithRequired("name")); err != nil {
		t.Fatalf("RegisterCommand() after registering the name error = %v", err)
	}
}

func TestCommandKindMismatch(t *testing.T) {
	reg := newTestRegistry()
	reg.RegisterArgument(definition.New("name"))
	reg.RegisterSwitch(definition.New("force"))

	if err := reg.RegisterCommand(command("a").WithSwitch("name")); !mdwerror.HasCode(err, mdwerror.CodeUnknownArgument) {
		t.Errorf("argument used as switch error = %v", err)
	}
	if err := reg.RegisterCommand(command("b").WithOptional("force")); !mdwerror.HasCode(err, mdwerror.CodeUnknownArgument) {
		t.Errorf("switch used as argument error = %v", err)
	}
}

func TestCommandDuplicates(t *testing.T) {
	reg := newTestRegistry()
	reg.RegisterArgument(definition.New("name"))

	if err := reg.RegisterCommand(command("create").WithRequired("name").WithOptional("name")); !mdwerror.HasCode(err, mdwerror.CodeDuplicateName) {
		t.Errorf("name declared twice error = %v", err)
	}
	if err := reg.RegisterCommand(command("create")); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterCommand(command("create")); !mdwerror.HasCode(err, mdwerror.CodeDuplicateName) {
		t.Errorf("command registered twice error = %v", err)
	}
}

func TestSeal(t *testing.T) {
	reg := newTestRegistry()
	reg.Seal()

	checks := map[string]error{
		"argument": reg.RegisterArgument(definition.New("a")),
		"switch":   reg.RegisterSwitch(definition.New("b")),
		"command":  reg.RegisterCommand(command("c")),
	}
	for what, err := range checks {
		if !mdwerror.HasCode(err, mdwerror.CodeLateRegistration) {
			t.Errorf("late %s registration error = %v", what, err)
		}
	}
}

func TestRegistrationOrder(t *testing.T) {
	reg := newTestRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.RegisterArgument(definition.New(name))
		reg.RegisterCommand(command("cmd-" + name))
	}

	var args, cmds []string
	for _, d := range reg.Arguments() {
		args = append(args, d.Name())
	}
	for _, c := range reg.Commands() {
		cmds = append(cmds, c.Name())
	}

	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, args); diff != "" {
		t.Errorf("Arguments() order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cmd-zeta", "cmd-alpha", "cmd-mid"}, cmds); diff != "" {
		t.Errorf("Commands() order mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsAccessors(t *testing.T) {
	type store struct{ path string }
	params := []Param{Arg("name"), Arg("force"), Dep[*store]("store")}
	args := NewArgs(params, []interface{}{"demo", true, &store{path: "/tmp"}})

	if args.String("name") != "demo" || !args.Bool("force") {
		t.Errorf("accessors returned %q, %v", args.String("name"), args.Bool("force"))
	}
	if s, ok := Dependency[*store](args, "store"); !ok || s.path != "/tmp" {
		t.Errorf("Dependency() = %v, %v", s, ok)
	}
	if _, ok := args.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
	if diff := cmp.Diff([]string{"name", "force"}, Handler{Params: params}.ParamNames()); diff != "" {
		t.Errorf("ParamNames() mismatch (-want +got):\n%s", diff)
	}
}
