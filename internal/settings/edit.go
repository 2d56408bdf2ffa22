package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)

// Set returns a copy of s with key changed to value. Index fields take either
// the table index or the entry name ("50ms", "2s"); the switch takes 0/1,
// on/off or true/false.
func (s Settings) Set(key, value string) (Settings, error) {
	switch key {
	case KeyDeviceName:
		if value == "" {
			return s, fmt.Errorf("%w: %s cannot be empty", ErrInvalidValue, key)
		}
		if len(value) > MaxNameLength {
			return s, fmt.Errorf("%w: %s is longer than %d bytes", ErrInvalidValue, key, MaxNameLength)
		}
		s.DeviceName = value
	case KeyPeriodIndex:
		i, err := tableIndex(key, value, periodNames)
		if err != nil {
			return s, err
		}
		s.PeriodIndex = i
	case KeyDuration:
		i, err := tableIndex(key, value, durationNames)
		if err != nil {
			return s, err
		}
		s.DurationIndex = i
	case KeyRandomizeMAC:
		switch strings.ToLower(value) {
		case "1", "on", "true":
			s.RandomizeMAC = true
		case "0", "off", "false":
			s.RandomizeMAC = false
		default:
			return s, fmt.Errorf("%w: %s must be on or off, got %q", ErrInvalidValue, key, value)
		}
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return s, nil
}

func tableIndex(key, value string, names []string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, value) {
			return i, nil
		}
	}

	i, err := strconv.Atoi(value)
	if err != nil || i < 0 || i >= len(names) {
		return 0, fmt.Errorf("%w: %s must be one of %s or an index below %d, got %q",
			ErrInvalidValue, key, strings.Join(names, ", "), len(names), value)
	}
	return i, nil
}
