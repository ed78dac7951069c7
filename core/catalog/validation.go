// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"dimensional/core/measure"
	"dimensional/core/numeric"
	"dimensional/internal/errors"
	"dimensional/internal/logging"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Entry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateName,
		validatePositiveScale,
		validateKindScale,
		validateUnitRoundTrip,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	seen := make(map[string]bool)
	for _, entry := range c.entries {
		if seen[entry.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate entry name", entry.Name))
		}
		seen[entry.Name] = true

		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
			}
		}
	}

	return errs
}

// validateName ensures entries are named and the unit carries the same name
func validateName(e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry has no name")
	}
	if e.Unit.Name() != e.Name {
		return fmt.Errorf("unit is named %q", e.Unit.Name())
	}
	return nil
}

// validatePositiveScale ensures the unit scale invariant holds
func validatePositiveScale(e *Entry) error {
	if !numeric.Positive(e.Unit.Scale()) {
		return fmt.Errorf("scale %s is not positive", e.Unit.Scale())
	}
	return nil
}

// validateKindScale ensures base and derived entries are scale-1 units
func validateKindScale(e *Entry) error {
	isOne := e.Unit.Scale().Equal(numeric.One)
	switch e.Kind {
	case KindBase, KindDerived:
		if !isOne {
			return fmt.Errorf("%s unit must have scale 1, got %s", e.Kind, e.Unit.Scale())
		}
		if e.Kind == KindBase && !e.Unit.Dimension().IsLeaf() {
			return fmt.Errorf("base unit must have a leaf dimension, got %s", e.Unit.Dimension())
		}
	case KindScaled:
		if isOne {
			return fmt.Errorf("scaled unit has scale 1")
		}
	}
	return nil
}

// validateUnitRoundTrip ensures promoting the unit to a measure and back is lossless
func validateUnitRoundTrip(e *Entry) error {
	back, err := measure.ToUnit(measure.FromUnit(e.Unit))
	if err != nil {
		return fmt.Errorf("round trip failed: %w", err)
	}
	if !back.Equal(e.Unit) {
		return fmt.Errorf("round trip changed unit to %s", back)
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		log := logging.Named("catalog").With(zap.Int("entries", c.Len()))
		for _, err := range errs {
			log.Error("Catalog validation error", zap.Error(err))
		}
		panic(errors.Internal(fmt.Sprintf("catalog has %d validation errors", len(errs)), errs[0]))
	}
}
