// File: chain.go
// Title: Validator Composition
// Description: Composes validators: ValidatorChain requires every validator
//              to pass, AnyOf requires one, ConditionalValidator only runs
//              when its predicate holds. Format rules are built from these.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-15 v0.2.0: AnyOf for rule unions, context plumbing removed

package validation

import "fmt"

// ValidatorChain runs validators in sequence; all of them must pass
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{name: chainName}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		result := validator.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// AnyOf passes when at least one of its validators passes. A failed result
// carries the errors of every alternative.
type AnyOf []Validator

// Validate implements Validator
func (a AnyOf) Validate(value interface{}) ValidationResult {
	var failures []ValidationResult
	for _, validator := range a {
		result := validator.Validate(value)
		if result.Valid {
			return result
		}
		failures = append(failures, result)
	}
	combined := Combine(failures...)
	combined.Valid = false
	return combined
}

// ConditionalValidator runs its validator only if the condition is true
type ConditionalValidator struct {
	condition func(interface{}) bool
	validator Validator
}

// NewConditionalValidator creates a validator that only executes if the condition is true
func NewConditionalValidator(condition func(interface{}) bool, validator Validator) *ConditionalValidator {
	return &ConditionalValidator{condition: condition, validator: validator}
}

// Validate executes the validator only if the condition is met
func (c *ConditionalValidator) Validate(value interface{}) ValidationResult {
	if !c.condition(value) {
		return NewValidationResult()
	}
	return c.validator.Validate(value)
}
