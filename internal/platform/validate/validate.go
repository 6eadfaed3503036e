// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/constants"
)

var (
	// slugRegex matches slug format: lowercase letters, digits, hyphens.
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	// usernameRune matches a single character allowed in usernames:
	// word characters plus ".", "@", "+", "-".
	usernameRune = regexp.MustCompile(`^[\w.@+-]$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Slug fails if the value is not a valid URL slug.
//
// # Format
//
// Slugs must consist only of lowercase letters, digits, and hyphens,
// with no leading or trailing hyphens.
func (v *Validator) Slug(field, value string) *Validator {
	if !slugRegex.MatchString(value) {
		v.add(field, "Must be a valid URL slug (lowercase letters, digits, hyphens only)")
	}
	return v
}

// Username enforces the account naming rules.
//
// # Rules
//
//   - Only word characters and ".@+-" are allowed. Every offending character
//     is reported once, in order of first appearance, so the client can show
//     an exact fix-it message.
//   - The reserved value "me" is rejected because it collides with the
//     /users/me route.
func (v *Validator) Username(field, value string) *Validator {
	if value == constants.ReservedUsername {
		v.add(field, fmt.Sprintf("Username %q is reserved", constants.ReservedUsername))
		return v
	}

	seen := map[rune]bool{}
	var illegal []string
	for _, r := range value {
		if usernameRune.MatchString(string(r)) || seen[r] {
			continue
		}
		seen[r] = true
		illegal = append(illegal, fmt.Sprintf("%q", string(r)))
	}

	if len(illegal) > 0 {
		v.add(field, "Contains illegal characters: "+strings.Join(illegal, ", "))
	}
	return v
}

// YearNotFuture fails if the year is later than the current calendar year.
func (v *Validator) YearNotFuture(field string, year int) *Validator {
	currentYear := time.Now().Year()
	if year > currentYear {
		v.add(field, fmt.Sprintf("Year %d cannot be later than the current year %d", year, currentYear))
	}
	return v
}

// Score fails if the value is outside the allowed review score range.
func (v *Validator) Score(field string, score int) *Validator {
	return v.Range(field, score, constants.MinReviewScore, constants.MaxReviewScore)
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("text", text == "", "Review text is required")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
