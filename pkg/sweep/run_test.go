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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/duocleanup/pkg/duo"
	"github.com/carverauto/duocleanup/pkg/logger"
)

// fixtureUsers covers every decision branch in one directory:
//
//   - barret: Generic Smartphone, never tagged — gets stamped
//   - cloud: Generic Smartphone tagged in 2006 — gets deleted
//   - sephiroth: same as cloud — gets deleted
//   - redxxi: fully registered iPhone — never touched
//   - tifa: Generic Smartphone tagged in the year 4876 — kept (unless
//     these tests are still running then)
func fixtureUsers() []duo.User {
	return []duo.User{
		{
			UserID:   "barret_id",
			Username: "barret",
			Phones: []duo.Phone{
				{PhoneID: "barret_phone_1", Name: "", Type: "Mobile", Platform: "Generic Smartphone"},
			},
		},
		{
			UserID:   "cloud_id",
			Username: "cloud",
			Phones: []duo.Phone{
				{PhoneID: "cloud_phone_1", Name: "1136073600", Type: "Mobile", Platform: "Generic Smartphone"},
			},
		},
		{
			UserID:   "sephiroth_id",
			Username: "sephiroth",
			Phones: []duo.Phone{
				{PhoneID: "sephiroth_phone_1", Name: "1136073600", Type: "Mobile", Platform: "Generic Smartphone"},
			},
		},
		{
			UserID:   "redxxi_id",
			Username: "redxxi",
			Phones: []duo.Phone{
				{PhoneID: "redxxi_phone_1", Name: "Red's iPhone", Type: "Mobile", Platform: "iOS", Activated: true},
			},
		},
		{
			UserID:   "tifa_id",
			Username: "tifa",
			Phones: []duo.Phone{
				{PhoneID: "tifa_phone_1", Name: "91718251200", Type: "Mobile", Platform: "Generic Smartphone"},
			},
		},
	}
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		users       []string
		wantUpdates []string
		wantDeletes []string
		wantTally   Results
	}{
		{
			name:        "all users",
			users:       nil,
			wantUpdates: []string{"barret_phone_1"},
			wantDeletes: []string{"cloud_phone_1", "sephiroth_phone_1"},
			wantTally:   Results{Timestamped: 1, Removed: 2, NoAction: 2},
		},
		{
			name:        "filtered to barret",
			users:       []string{"barret"},
			wantUpdates: []string{"barret_phone_1"},
			wantDeletes: nil,
			wantTally:   Results{Timestamped: 1},
		},
		{
			name:        "filtered to cloud and sephiroth",
			users:       []string{"cloud", "sephiroth"},
			wantUpdates: nil,
			wantDeletes: []string{"cloud_phone_1", "sephiroth_phone_1"},
			wantTally:   Results{Removed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := NewMockDirectory(ctrl)
			admin := NewMockPhoneAdmin(ctrl)
			log := logger.NewTestLogger()

			dir.EXPECT().ListUsers(gomock.Any()).Return(fixtureUsers(), nil).Times(1)

			var gotUpdates, gotDeletes []string

			admin.EXPECT().UpdatePhoneName(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, phoneID, _ string) error {
					gotUpdates = append(gotUpdates, phoneID)
					return nil
				}).AnyTimes()
			admin.EXPECT().DeletePhone(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, phoneID string) error {
					gotDeletes = append(gotDeletes, phoneID)
					return nil
				}).AnyTimes()

			devices, err := LoadSnapshot(context.Background(), dir, log)
			require.NoError(t, err)

			r := NewRunner(admin, RunnerConfig{
				GracePeriod: 10 * time.Minute,
				Force:       true,
				Users:       tt.users,
			}, nil, log)

			tally, err := r.Run(context.Background(), devices)
			require.NoError(t, err)

			assert.Equal(t, tt.wantUpdates, gotUpdates, "update calls")
			assert.Equal(t, tt.wantDeletes, gotDeletes, "delete calls, in snapshot order")
			assert.Equal(t, tt.wantTally, tally)
		})
	}
}

func TestRun_InteractiveAllYesMatchesForceMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := NewMockDirectory(ctrl)
	admin := NewMockPhoneAdmin(ctrl)
	log := logger.NewTestLogger()

	dir.EXPECT().ListUsers(gomock.Any()).Return(fixtureUsers(), nil).Times(1)

	var gotUpdates, gotDeletes []string

	admin.EXPECT().UpdatePhoneName(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, phoneID, _ string) error {
			gotUpdates = append(gotUpdates, phoneID)
			return nil
		}).AnyTimes()
	admin.EXPECT().DeletePhone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, phoneID string) error {
			gotDeletes = append(gotDeletes, phoneID)
			return nil
		}).AnyTimes()

	devices, err := LoadSnapshot(context.Background(), dir, log)
	require.NoError(t, err)

	prompts := 0
	confirm := func(string) bool {
		prompts++
		return true
	}

	r := NewRunner(admin, RunnerConfig{GracePeriod: 10 * time.Minute}, confirm, log)

	tally, err := r.Run(context.Background(), devices)
	require.NoError(t, err)

	assert.Equal(t, []string{"barret_phone_1"}, gotUpdates)
	assert.Equal(t, []string{"cloud_phone_1", "sephiroth_phone_1"}, gotDeletes)
	assert.Equal(t, Results{Timestamped: 1, Removed: 2, NoAction: 2}, tally)
	// One prompt per mutation; redxxi and tifa never reach a prompt.
	assert.Equal(t, 3, prompts)
}

func TestRun_UserFilterPartitionsDeviceSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := NewMockPhoneAdmin(ctrl)

	// Filtered-out devices are skipped before any processing, so the tally
	// only covers cloud's device.
	admin.EXPECT().DeletePhone(gomock.Any(), "cloud_phone_1").Return(nil)

	r := NewRunner(admin, RunnerConfig{
		GracePeriod: 10 * time.Minute,
		Force:       true,
		Users:       []string{"cloud"},
	}, nil, logger.NewTestLogger())

	tally, err := r.Run(context.Background(), Flatten(fixtureUsers()))
	require.NoError(t, err)
	assert.Equal(t, Results{Removed: 1}, tally)
}
