package sweep

import (
	"strconv"
	"strings"
	"time"
)

// Duo phones expose no dedicated metadata fields, so the cleanup stamp is
// borrowed from the free-text name field, which starts out empty on a
// freshly enrolled phone. These accessors are the only code that knows
// about the borrowed field, in case a real metadata slot ever appears.

// cleanupMarker reads the first-seen timestamp stored on the phone as Unix
// epoch seconds. Empty, malformed, or negative values all mean the phone
// has never been tagged. The field's format is not enforced remotely, so
// garbage must not crash the run.
func cleanupMarker(d *Device) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(d.Name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}

// markerValue renders a tag time the way cleanupMarker reads it back:
// decimal epoch seconds, rounded to the nearest second.
func markerValue(t time.Time) string {
	return strconv.FormatInt(t.Round(time.Second).Unix(), 10)
}
