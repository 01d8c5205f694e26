// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masking

// Kind identifies which masking rule a PAN violated
type Kind int

const (
	KindNone Kind = iota
	KindEmptyInput
	KindInvalidMaskCharacter
	KindNotMasked
	KindTooManyVisible
	KindTooFewVisible
	KindFirstSixIncomplete
	KindLastFourIncomplete
)

var kindCodes = map[Kind]string{
	KindNone:                 "NONE",
	KindEmptyInput:           "EMPTY_INPUT",
	KindInvalidMaskCharacter: "INVALID_MASK_CHARACTER",
	KindNotMasked:            "NOT_MASKED",
	KindTooManyVisible:       "TOO_MANY_VISIBLE",
	KindTooFewVisible:        "TOO_FEW_VISIBLE",
	KindFirstSixIncomplete:   "FIRST_SIX_INCOMPLETE",
	KindLastFourIncomplete:   "LAST_FOUR_INCOMPLETE",
}

var kindMessages = map[Kind]string{
	KindEmptyInput:           "PAN cannot be empty",
	KindInvalidMaskCharacter: "Mask must use asterisk (*) character",
	KindNotMasked:            "PAN is not masked",
	KindTooManyVisible:       "Too many visible digits: must show at most first 6 and last 4",
	KindTooFewVisible:        "Must show first 6 and last 4 digits",
	KindFirstSixIncomplete:   "First 6 digits must be visible",
	KindLastFourIncomplete:   "Last 4 digits must be visible",
}

// String returns the stable code used in machine-readable output
func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "UNKNOWN"
}

// Message returns the human-readable description of the violation
func (k Kind) Message() string {
	return kindMessages[k]
}

// Kinds returns every failure kind in check order
func Kinds() []Kind {
	return []Kind{
		KindEmptyInput,
		KindInvalidMaskCharacter,
		KindNotMasked,
		KindTooManyVisible,
		KindTooFewVisible,
		KindFirstSixIncomplete,
		KindLastFourIncomplete,
	}
}

// MaskingError reports a PAN that is not masked according to the rule set
type MaskingError struct {
	Kind    Kind
	Message string
}

func (e *MaskingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Message()
}

// Is matches any *MaskingError of the same kind, so the sentinels below
// work with errors.Is.
func (e *MaskingError) Is(target error) bool {
	t, ok := target.(*MaskingError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newMaskingError(kind Kind) *MaskingError {
	return &MaskingError{Kind: kind, Message: kind.Message()}
}

// Sentinel errors, one per failure kind
var (
	ErrEmptyInput           = newMaskingError(KindEmptyInput)
	ErrInvalidMaskCharacter = newMaskingError(KindInvalidMaskCharacter)
	ErrNotMasked            = newMaskingError(KindNotMasked)
	ErrTooManyVisible       = newMaskingError(KindTooManyVisible)
	ErrTooFewVisible        = newMaskingError(KindTooFewVisible)
	ErrFirstSixIncomplete   = newMaskingError(KindFirstSixIncomplete)
	ErrLastFourIncomplete   = newMaskingError(KindLastFourIncomplete)
)
