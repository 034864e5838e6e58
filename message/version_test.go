/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibleWithSameMajor(t *testing.T) {
	ok, err := CompatibleWith("1.2.3")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompatibleWithDifferentMajor(t *testing.T) {
	ok, err := CompatibleWith("2.0.0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompatibleWithInvalidVersion(t *testing.T) {
	_, err := CompatibleWith("not-a-version")
	assert.Error(t, err)
}
