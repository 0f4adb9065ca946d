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

// Package sweep implements the tag-then-expire cleanup of "Generic
// Smartphone" entries: phones in that limbo enrollment state get stamped
// with a first-seen timestamp on one run and deleted on a later run once
// the stamp outlives the grace period.
package sweep

import (
	"context"
	"fmt"

	"github.com/carverauto/duocleanup/pkg/duo"
	"github.com/carverauto/duocleanup/pkg/logger"
)

// Device is a phone flattened out of its owning user record, with the
// user's identity denormalized on so it can be processed on its own.
type Device struct {
	duo.Phone

	Username string
	UserID   string
}

// Flatten copies user identity onto every phone, preserving API order:
// users as returned, then each user's phones in order.
func Flatten(users []duo.User) []Device {
	var devices []Device

	for i := range users {
		user := &users[i]

		for _, phone := range user.Phones {
			devices = append(devices, Device{
				Phone:    phone,
				Username: user.Username,
				UserID:   user.UserID,
			})
		}
	}

	return devices
}

// LoadSnapshot fetches the complete user directory once and flattens it.
// Any fetch error is fatal for the run; the Admin API error surface is not
// categorized enough to retry or continue on partial results.
func LoadSnapshot(ctx context.Context, dir Directory, log logger.Logger) ([]Device, error) {
	users, err := dir.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	devices := Flatten(users)

	log.Info().
		Int("users", len(users)).
		Int("phones", len(devices)).
		Msg("Loaded directory snapshot")

	return devices, nil
}
