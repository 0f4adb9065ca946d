/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sweep

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTruth(t *testing.T) {
	affirmative := []string{"y", "yes", "t", "true", "on", "1", "Y", "YES", "True", "ON"}
	negative := []string{"n", "no", "f", "false", "off", "0", "N", "NO", "False", "OFF"}

	for _, tok := range affirmative {
		v, err := ParseTruth(tok)
		require.NoError(t, err, tok)
		assert.True(t, v, tok)
	}

	for _, tok := range negative {
		v, err := ParseTruth(tok)
		require.NoError(t, err, tok)
		assert.False(t, v, tok)
	}

	for _, tok := range []string{"", "maybe", "yess", "2"} {
		_, err := ParseTruth(tok)
		assert.Error(t, err, tok)
	}
}

func TestStdinConfirmer_Accepts(t *testing.T) {
	var out bytes.Buffer

	confirm := NewStdinConfirmer(strings.NewReader("yes\n"), &out)

	assert.True(t, confirm("Remove cloud's phone `cloud_phone_1`?"))
	assert.Contains(t, out.String(), "Remove cloud's phone `cloud_phone_1`? [y/n]")
}

func TestStdinConfirmer_RepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer

	confirm := NewStdinConfirmer(strings.NewReader("wat\n\nn\n"), &out)

	assert.False(t, confirm("Remove?"))
	assert.Equal(t, 2, strings.Count(out.String(), "Please respond with 'y' or 'n'"))
}

func TestStdinConfirmer_AnswersSequentialPrompts(t *testing.T) {
	var out bytes.Buffer

	confirm := NewStdinConfirmer(strings.NewReader("y\nn\n"), &out)

	assert.True(t, confirm("first?"))
	assert.False(t, confirm("second?"))
}

func TestStdinConfirmer_ExhaustedInputDeclines(t *testing.T) {
	var out bytes.Buffer

	confirm := NewStdinConfirmer(strings.NewReader(""), &out)

	assert.False(t, confirm("anyone there?"))
}
