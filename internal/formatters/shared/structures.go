// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import "pan-validate/internal/masking"

// ValidMessage is printed for a properly masked PAN
const ValidMessage = "PAN is properly masked"

// ResultDocument is the structure shared by the JSON and YAML formatters
type ResultDocument struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// ConvertResult maps a masking result to its output document
func ConvertResult(result masking.Result) ResultDocument {
	if result.Valid {
		return ResultDocument{Valid: true, Message: ValidMessage}
	}
	return ResultDocument{
		Valid:   false,
		Kind:    result.Kind.String(),
		Message: result.Message,
	}
}
