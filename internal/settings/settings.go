// Package settings maps the beacon configuration document to typed fields.
//
// The document is a flat JSON object whose values are all written as
// strings:
//
//	{
//		"device_name": "Flipper",
//		"bt_period_idx": "1",
//		"bt_duration_idx": "0",
//		"bt_randomize_mac": "1"
//	}
//
// Missing or unusable entries fall back to defaults, so a damaged file never
// prevents the remote from starting.
package settings

import (
	"time"
	"unicode/utf8"
)

// Document keys.
const (
	KeyDeviceName   = "device_name"
	KeyPeriodIndex  = "bt_period_idx"
	KeyDuration     = "bt_duration_idx"
	KeyRandomizeMAC = "bt_randomize_mac"
)

// MaxNameLength is the longest device name in bytes. The name travels in the
// advertising packet, and it keeps an encoded document well inside the read
// buffer.
const MaxNameLength = 20

// Keys lists every document key in write order.
var Keys = []string{KeyDeviceName, KeyPeriodIndex, KeyDuration, KeyRandomizeMAC}

var (
	periods       = []time.Duration{20 * time.Millisecond, 50 * time.Millisecond, 75 * time.Millisecond, 100 * time.Millisecond}
	periodNames   = []string{"20ms", "50ms", "75ms", "100ms"}
	durationNames = []string{"1s", "2s", "5s", "10s"}
	switchNames   = []string{"Off", "On"}
)

// Settings is the persisted beacon configuration. Period and duration are
// stored as indexes into fixed tables.
type Settings struct {
	DeviceName    string
	PeriodIndex   int
	DurationIndex int
	RandomizeMAC  bool
}

// Defaults returns the configuration used when nothing is stored: the
// shortest advertising period and beacon duration, a fixed MAC address, and
// the given device name.
func Defaults(deviceName string) Settings {
	return Settings{
		DeviceName:    deviceName,
		PeriodIndex:   0,
		DurationIndex: 0,
		RandomizeMAC:  false,
	}
}

// Period is the advertising interval for PeriodIndex.
func (s Settings) Period() time.Duration {
	return periods[clampIndex(s.PeriodIndex, len(periods))]
}

func (s Settings) PeriodName() string {
	return periodNames[clampIndex(s.PeriodIndex, len(periodNames))]
}

// DurationName is how long one beacon burst lasts.
func (s Settings) DurationName() string {
	return durationNames[clampIndex(s.DurationIndex, len(durationNames))]
}

func (s Settings) RandomizeMACName() string {
	if s.RandomizeMAC {
		return switchNames[1]
	}
	return switchNames[0]
}

// MaxInterval is the upper bound of the advertising interval window.
func (s Settings) MaxInterval() time.Duration {
	return s.Period() * 3 / 2
}

// Normalize fills an empty device name, cuts an overlong one to
// MaxNameLength and pulls indexes back into range.
func (s Settings) Normalize(defaultName string) Settings {
	if s.DeviceName == "" {
		s.DeviceName = defaultName
	}
	s.DeviceName = truncateName(s.DeviceName)
	s.PeriodIndex = clampIndex(s.PeriodIndex, len(periods))
	s.DurationIndex = clampIndex(s.DurationIndex, len(durationNames))
	return s
}

// truncateName cuts name to MaxNameLength bytes without splitting a rune.
func truncateName(name string) string {
	if len(name) <= MaxNameLength {
		return name
	}
	cut := MaxNameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// clampIndex maps out-of-range indexes to 0, the default entry.
func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return 0
	}
	return i
}
