// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_ContainsVersionAndPlatform(t *testing.T) {
	info := Info()
	assert.True(t, strings.HasPrefix(info, "pan-validate "+Version))
	assert.Contains(t, info, Platform)
}

func TestFull_Keys(t *testing.T) {
	full := Full()
	for _, key := range []string{"version", "commit", "buildDate", "goVersion", "platform"} {
		assert.Contains(t, full, key)
	}
	assert.Equal(t, Short(), full["version"])
}
