// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package security

// SecureString holds a PAN argument for the duration of one validation and
// zeroes its bytes on Clear.
//
// Scrubbing is best effort: the runtime may have copied the original
// string, and every call to String allocates a copy that Clear cannot reach.
type SecureString struct {
	data []byte
}

// NewSecureString copies s into a mutable buffer
func NewSecureString(s string) *SecureString {
	data := make([]byte, len(s))
	copy(data, s)
	return &SecureString{data: data}
}

// String returns the held value. Call it once per use.
func (ss *SecureString) String() string {
	return string(ss.data)
}

// Len reports the number of bytes held, safe to log in place of the value
func (ss *SecureString) Len() int {
	return len(ss.data)
}

// Cleared reports whether Clear has run
func (ss *SecureString) Cleared() bool {
	return ss.data == nil
}

// Clear zeroes and releases the buffer. Calling it twice is a no-op.
func (ss *SecureString) Clear() {
	if ss.data == nil {
		return
	}
	for i := range ss.data {
		ss.data[i] = 0
	}
	ss.data = nil
}
