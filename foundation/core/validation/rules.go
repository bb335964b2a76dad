// File: rules.go
// Title: Format Rules
// Description: Parses format rules and validates values against them.
//              Built-in types cover the values a command line produces:
//              strings, integers, floats, booleans, paths, e-mail
//              addresses, URLs and UUIDs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial format rule implementation

package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

// TypeSpec describes a named value type usable in format rules
type TypeSpec struct {
	// Check reports whether a value is of the type
	Check ValidatorFunc

	// Measure returns the quantity a range bounds. Types without Measure
	// reject ranges at parse time.
	Measure func(value interface{}) (float64, bool)

	// MeasuresLength marks Measure as a length rather than a value
	MeasuresLength bool
}

var (
	typesMu sync.RWMutex
	types   = map[string]TypeSpec{}
)

func init() {
	stringSpec := TypeSpec{Check: checkString, Measure: measureLength, MeasuresLength: true}
	intSpec := TypeSpec{Check: checkInt, Measure: measureInt}
	floatSpec := TypeSpec{Check: checkFloat, Measure: measureFloat}
	boolSpec := TypeSpec{Check: checkBool}

	for name, spec := range map[string]TypeSpec{
		"string":     stringSpec,
		"int":        intSpec,
		"integer":    intSpec,
		"numericint": intSpec,
		"float":      floatSpec,
		"numeric":    floatSpec,
		"number":     floatSpec,
		"bool":       boolSpec,
		"boolean":    boolSpec,
		"path":       {Check: checkPath, Measure: measureLength, MeasuresLength: true},
		"email":      {Check: checkEmail},
		"url":        {Check: checkURL},
		"uuid":       {Check: checkUUID},
		"scalar":     {Check: checkScalar},
		"none":       {Check: checkNone},
		"null":       {Check: checkNone},
		"mixed":      {Check: checkAny},
		"any":        {Check: checkAny},
	} {
		types[name] = spec
	}
}

// RegisterType adds a custom type for use in format rules. Type names are
// case-insensitive; registering an existing name fails.
func RegisterType(name string, spec TypeSpec) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || spec.Check == nil || strings.ContainsAny(key, "?|:") {
		return mdwerror.New("invalid format type registration").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("validation.RegisterType").
			WithDetail("type", name)
	}

	typesMu.Lock()
	defer typesMu.Unlock()
	if _, exists := types[key]; exists {
		return mdwerror.New(fmt.Sprintf("format type %q already registered", key)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("validation.RegisterType").
			WithDetail("type", key)
	}
	types[key] = spec
	return nil
}

// Types returns the sorted names of all known types
func Types() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupType(name string) (TypeSpec, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	spec, ok := types[name]
	return spec, ok
}

// Term is one alternative of a rule: a type with an optional range
type Term struct {
	Type string
	Min  *float64
	Max  *float64
}

// String renders the term in rule syntax
func (t Term) String() string {
	if t.Min == nil && t.Max == nil {
		return t.Type
	}
	if t.Min != nil && t.Max != nil && *t.Min == *t.Max {
		return t.Type + ":" + formatBound(t.Min)
	}
	return t.Type + ":" + formatBound(t.Min) + ".." + formatBound(t.Max)
}

// Rule is a parsed format rule
type Rule struct {
	raw       string
	nullable  bool
	terms     []Term
	validator Validator
}

// Parse parses a format rule
func Parse(rule string) (*Rule, error) {
	raw := strings.TrimSpace(rule)
	body := raw
	nullable := strings.HasPrefix(body, "?")
	if nullable {
		body = strings.TrimSpace(body[1:])
	}

	if body == "" {
		return nil, ruleError(raw, "empty format rule")
	}

	parsed := &Rule{raw: raw, nullable: nullable}
	alternatives := make(AnyOf, 0, strings.Count(body, "|")+1)

	for _, part := range strings.Split(body, "|") {
		term, spec, err := parseTerm(raw, strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		parsed.terms = append(parsed.terms, term)
		alternatives = append(alternatives, termValidator(term, spec))
	}

	var validator Validator = alternatives
	if nullable {
		validator = NewConditionalValidator(func(v interface{}) bool { return v != nil }, alternatives)
	}
	parsed.validator = validator

	return parsed, nil
}

// MustParse is like Parse but panics on an invalid rule
func MustParse(rule string) *Rule {
	r, err := Parse(rule)
	if err != nil {
		panic(err)
	}
	return r
}

func parseTerm(raw, part string) (Term, TypeSpec, error) {
	name, bounds, hasRange := strings.Cut(part, ":")
	name = strings.ToLower(strings.TrimSpace(name))

	spec, ok := lookupType(name)
	if !ok {
		return Term{}, TypeSpec{}, ruleError(raw, fmt.Sprintf("unknown format type %q", name))
	}

	term := Term{Type: name}
	if !hasRange {
		return term, spec, nil
	}
	if spec.Measure == nil {
		return Term{}, TypeSpec{}, ruleError(raw, fmt.Sprintf("format type %q does not take a range", name))
	}

	bounds = strings.TrimSpace(bounds)
	lo, hi, isInterval := strings.Cut(bounds, "..")
	if !isInterval {
		hi = lo
	}

	var err error
	if term.Min, err = parseBound(lo); err != nil {
		return Term{}, TypeSpec{}, ruleError(raw, err.Error())
	}
	if term.Max, err = parseBound(hi); err != nil {
		return Term{}, TypeSpec{}, ruleError(raw, err.Error())
	}
	if term.Min == nil && term.Max == nil {
		return Term{}, TypeSpec{}, ruleError(raw, "range needs at least one bound")
	}
	if term.Min != nil && term.Max != nil && *term.Min > *term.Max {
		return Term{}, TypeSpec{}, ruleError(raw, "range minimum exceeds maximum")
	}

	return term, spec, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range bound %q", s)
	}
	return &f, nil
}

func formatBound(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func ruleError(raw, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("validation.Parse").
		WithDetail("rule", raw)
}

func termValidator(term Term, spec TypeSpec) Validator {
	chain := NewValidatorChain(term.String()).StopOnFirstError(true).Add(spec.Check)
	if term.Min == nil && term.Max == nil {
		return chain
	}

	return chain.AddFunc(func(value interface{}) ValidationResult {
		measured, ok := spec.Measure(value)
		if !ok {
			return NewValidationError(CodeType, fmt.Sprintf("cannot measure %v", value))
		}

		code, what := CodeRange, "value"
		if spec.MeasuresLength {
			code, what = CodeLength, "length"
		}

		if term.Min != nil && measured < *term.Min {
			return NewValidationError(code, fmt.Sprintf("%s %s is below %s", what, formatBound(&measured), formatBound(term.Min)))
		}
		if term.Max != nil && measured > *term.Max {
			return NewValidationError(code, fmt.Sprintf("%s %s is above %s", what, formatBound(&measured), formatBound(term.Max)))
		}
		return NewValidationResult()
	})
}

// String returns the rule as written
func (r *Rule) String() string {
	return r.raw
}

// Nullable reports whether the rule accepts nil
func (r *Rule) Nullable() bool {
	return r.nullable
}

// Terms returns the alternatives of the rule
func (r *Rule) Terms() []Term {
	return append([]Term(nil), r.terms...)
}

// AsNullable returns the "?" variant of the rule
func (r *Rule) AsNullable() *Rule {
	if r.nullable {
		return r
	}
	return MustParse("?" + r.raw)
}

// Validate checks value against the rule. A failure leads with a
// VALIDATION_FORMAT error followed by the errors of every alternative.
func (r *Rule) Validate(value interface{}) ValidationResult {
	result := r.validator.Validate(value)
	if result.Valid {
		return result
	}

	head := ValidationError{
		Code:     CodeFormat,
		Message:  fmt.Sprintf("value %s does not match format %q", describe(value), r.raw),
		Value:    value,
		Expected: r.raw,
	}
	return ValidationResult{Errors: append([]ValidationError{head}, result.Errors...)}
}

// Validate parses rule and validates value against it. An unparseable rule
// yields a VALIDATION_RULE error.
func Validate(rule string, value interface{}) ValidationResult {
	parsed, err := Parse(rule)
	if err != nil {
		return NewValidationError(CodeRule, err.Error())
	}
	return parsed.Validate(value)
}

func describe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func typeError(value interface{}, want string) ValidationResult {
	return NewValidationError(CodeType, fmt.Sprintf("%s is not %s", describe(value), want))
}

func checkString(value interface{}) ValidationResult {
	if _, ok := value.(string); ok {
		return NewValidationResult()
	}
	return typeError(value, "a string")
}

func checkInt(value interface{}) ValidationResult {
	if _, ok := value.(bool); ok {
		return typeError(value, "an integer")
	}
	if _, err := ConvertToInt64(value); err != nil {
		return typeError(value, "an integer")
	}
	return NewValidationResult()
}

func checkFloat(value interface{}) ValidationResult {
	if _, ok := value.(bool); ok {
		return typeError(value, "a number")
	}
	if _, err := ConvertToFloat64(value); err != nil {
		return typeError(value, "a number")
	}
	return NewValidationResult()
}

func checkBool(value interface{}) ValidationResult {
	switch v := value.(type) {
	case bool:
		return NewValidationResult()
	case string:
		if _, err := strconv.ParseBool(v); err == nil {
			return NewValidationResult()
		}
	}
	return typeError(value, "a boolean")
}

func checkPath(value interface{}) ValidationResult {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" || strings.ContainsRune(s, 0) {
		return typeError(value, "a path")
	}
	return NewValidationResult()
}

func checkEmail(value interface{}) ValidationResult {
	s, ok := value.(string)
	if ok {
		if addr, err := mail.ParseAddress(s); err == nil && addr.Address == s {
			return NewValidationResult()
		}
	}
	return typeError(value, "an e-mail address")
}

func checkURL(value interface{}) ValidationResult {
	s, ok := value.(string)
	if ok {
		if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
			return NewValidationResult()
		}
	}
	return typeError(value, "a URL")
}

func checkUUID(value interface{}) ValidationResult {
	s, ok := value.(string)
	if ok {
		if _, err := uuid.Parse(s); err == nil {
			return NewValidationResult()
		}
	}
	return typeError(value, "a UUID")
}

func checkScalar(value interface{}) ValidationResult {
	if value == nil {
		return typeError(value, "a scalar")
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return NewValidationResult()
	}
	return typeError(value, "a scalar")
}

func checkNone(value interface{}) ValidationResult {
	if value == nil {
		return NewValidationResult()
	}
	return typeError(value, "empty")
}

func checkAny(interface{}) ValidationResult {
	return NewValidationResult()
}

func measureLength(value interface{}) (float64, bool) {
	n := GetValueLength(value)
	return float64(n), n >= 0
}

func measureInt(value interface{}) (float64, bool) {
	i, err := ConvertToInt64(value)
	return float64(i), err == nil
}

func measureFloat(value interface{}) (float64, bool) {
	f, err := ConvertToFloat64(value)
	return f, err == nil
}
