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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator to approve a mutation before it is issued.
type Confirmer func(prompt string) bool

var errInvalidTruthValue = errors.New("invalid truth value")

// ParseTruth maps the usual truthy and falsy tokens to a bool. True values
// are y, yes, t, true, on and 1; false values are n, no, f, false, off and
// 0, all case-insensitive.
func ParseTruth(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q", errInvalidTruthValue, val)
}

// NewStdinConfirmer returns a Confirmer that writes prompts to w and reads
// one answer line per prompt from r, re-prompting until the answer parses.
// Exhausted input counts as a decline.
func NewStdinConfirmer(r io.Reader, w io.Writer) Confirmer {
	scanner := bufio.NewScanner(r)

	return func(prompt string) bool {
		fmt.Fprintf(w, "%s [y/n]\n", prompt)

		for scanner.Scan() {
			v, err := ParseTruth(scanner.Text())
			if err != nil {
				fmt.Fprintln(w, "Please respond with 'y' or 'n'")
				continue
			}

			return v
		}

		return false
	}
}
