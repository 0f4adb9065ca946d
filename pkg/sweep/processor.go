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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carverauto/duocleanup/pkg/logger"
)

// genericSmartphone is the placeholder platform Duo assigns a phone that
// was enrolled but never finished registering a real method.
const genericSmartphone = "generic smartphone"

// RunnerConfig carries the resolved per-run policy.
type RunnerConfig struct {
	// GracePeriod is how long a tagged phone is tolerated before removal.
	GracePeriod time.Duration
	// Force skips interactive confirmation and applies every decision.
	Force bool
	// Users is an exact-match username allowlist; empty means all users.
	Users []string
}

// Runner applies the tag-then-expire procedure to a device snapshot, one
// device at a time, issuing at most one mutation per device per run.
type Runner struct {
	Admin   PhoneAdmin
	Config  RunnerConfig
	Confirm Confirmer
	Clock   Clock
	Logger  logger.Logger
}

// NewRunner wires a Runner with the production clock.
func NewRunner(admin PhoneAdmin, cfg RunnerConfig, confirm Confirmer, log logger.Logger) *Runner {
	return &Runner{
		Admin:   admin,
		Config:  cfg,
		Confirm: confirm,
		Clock:   realClock{},
		Logger:  log,
	}
}

// Run walks the snapshot in order and tallies an outcome per evaluated
// device. Devices belonging to users outside the allowlist are skipped
// without being tallied. A mutation failure aborts the run immediately,
// returning the counts accumulated so far alongside the error.
func (r *Runner) Run(ctx context.Context, devices []Device) (Results, error) {
	var tally Results

	allow := make(map[string]struct{}, len(r.Config.Users))
	for _, u := range r.Config.Users {
		allow[u] = struct{}{}
	}

	for i := range devices {
		d := &devices[i]

		if len(allow) > 0 {
			if _, ok := allow[d.Username]; !ok {
				r.Logger.Debug().
					Str("phone_id", d.PhoneID).
					Str("username", d.Username).
					Msg("Skipping phone, user not in the list of users to operate upon")

				continue
			}
		}

		if !strings.EqualFold(d.Platform, genericSmartphone) {
			r.Logger.Debug().
				Str("phone_id", d.PhoneID).
				Str("username", d.Username).
				Str("platform", d.Platform).
				Msg("Not a generic smartphone, taking no action")

			tally.add(ResultNoAction)

			continue
		}

		cutoff := r.Clock.Now().UTC().Add(-r.Config.GracePeriod)

		confirm := r.Confirm
		if r.Config.Force {
			// Force mode must not touch the interactive confirmer at all,
			// not even to auto-answer it.
			confirm = func(string) bool { return true }
		}

		res, err := r.ProcessPhone(ctx, d, cutoff, confirm)
		if err != nil {
			return tally, err
		}

		tally.add(res)
	}

	return tally, nil
}

// ProcessPhone applies the decision procedure to one device: stamp a
// never-seen phone with the current time, remove a phone whose stamp
// predates cutoff, otherwise leave it alone. The untagged branch is
// exclusive: declining the stamp never falls through to the removal rule.
// Mutation errors propagate; they are never reported as a no-action.
func (r *Runner) ProcessPhone(ctx context.Context, d *Device, cutoff time.Time, confirm Confirmer) (Result, error) {
	marker := cleanupMarker(d)

	r.Logger.Debug().
		Str("phone_id", d.PhoneID).
		Str("username", d.Username).
		Str("marker", d.Name).
		Msg("Processing phone")

	if marker == 0 {
		prompt := fmt.Sprintf("Write timestamp to `name` field for %s's phone `%s`?", d.Username, d.PhoneID)
		if !confirm(prompt) {
			return ResultNoAction, nil
		}

		r.Logger.Info().
			Str("phone_id", d.PhoneID).
			Str("username", d.Username).
			Msg("Tagging new phone with a timestamp, to mark it for cleanup on a later run")

		if err := r.Admin.UpdatePhoneName(ctx, d.PhoneID, markerValue(r.Clock.Now().UTC())); err != nil {
			return ResultNoAction, fmt.Errorf("failed to tag phone %s: %w", d.PhoneID, err)
		}

		return ResultTimestamped, nil
	}

	if time.Unix(marker, 0).Before(cutoff) {
		prompt := fmt.Sprintf("Remove %s's phone `%s`?", d.Username, d.PhoneID)
		if !confirm(prompt) {
			return ResultNoAction, nil
		}

		r.Logger.Info().
			Str("phone_id", d.PhoneID).
			Str("username", d.Username).
			Str("user_id", d.UserID).
			Msg("Deleting phone tagged before the grace period")

		if err := r.Admin.DeletePhone(ctx, d.PhoneID); err != nil {
			return ResultNoAction, fmt.Errorf("failed to delete phone %s: %w", d.PhoneID, err)
		}

		return ResultRemoved, nil
	}

	r.Logger.Debug().
		Str("phone_id", d.PhoneID).
		Str("username", d.Username).
		Msg("Phone still within the grace period, taking no action")

	return ResultNoAction, nil
}
