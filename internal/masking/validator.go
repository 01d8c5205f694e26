// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package masking checks that a displayed PAN shows only its first 6 and
// last 4 digits, with every digit in between replaced by the mask character.
package masking

import "strings"

const (
	// MaskChar is the only accepted placeholder for a hidden digit
	MaskChar = '*'

	// VisiblePrefix is the number of leading digits that must stay visible
	VisiblePrefix = 6

	// VisibleSuffix is the number of trailing digits that must stay visible
	VisibleSuffix = 4

	// MaxVisibleDigits is the combined visible digit budget
	MaxVisibleDigits = VisiblePrefix + VisibleSuffix
)

// Result is the outcome of a single masking check
type Result struct {
	Valid   bool
	Kind    Kind
	Message string
}

// Check validates pan and returns the outcome as a Result
func Check(pan string) Result {
	err := Validate(pan)
	if err == nil {
		return Result{Valid: true, Kind: KindNone}
	}
	merr := err.(*MaskingError)
	return Result{Kind: merr.Kind, Message: merr.Error()}
}

// Validate returns nil when pan is properly masked, otherwise a *MaskingError
// for the first rule that fails. It has no side effects and is safe for
// concurrent use.
func Validate(pan string) error {
	if pan == "" {
		return newMaskingError(KindEmptyInput)
	}

	var visible, cleaned strings.Builder
	for i := 0; i < len(pan); i++ {
		c := pan[i]
		switch {
		case isDigit(c):
			visible.WriteByte(c)
			cleaned.WriteByte(c)
		case c == MaskChar:
			cleaned.WriteByte(c)
		case isSeparator(c):
		default:
			return newMaskingError(KindInvalidMaskCharacter)
		}
	}

	switch n := visible.Len(); {
	case n == 0:
		return newMaskingError(KindNotMasked)
	case n > MaxVisibleDigits:
		return newMaskingError(KindTooManyVisible)
	case n < MaxVisibleDigits:
		return newMaskingError(KindTooFewVisible)
	}

	seq := cleaned.String()
	if len(seq) < VisiblePrefix || !allDigits(seq[:VisiblePrefix]) {
		return newMaskingError(KindFirstSixIncomplete)
	}
	if len(seq) < VisibleSuffix || !allDigits(seq[len(seq)-VisibleSuffix:]) {
		return newMaskingError(KindLastFourIncomplete)
	}
	return nil
}

// IsValid reports whether pan is properly masked
func IsValid(pan string) bool {
	return Validate(pan) == nil
}

// VisibleDigits counts the digits shown in pan, ignoring every other character
func VisibleDigits(pan string) int {
	n := 0
	for i := 0; i < len(pan); i++ {
		if isDigit(pan[i]) {
			n++
		}
	}
	return n
}

// isDigit accepts ASCII 0-9 only; other Unicode digits are invalid characters
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSeparator reports formatting characters that carry no positional weight
func isSeparator(c byte) bool {
	return c == ' ' || c == '-'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
