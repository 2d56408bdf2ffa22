package settings

import (
	"bytes"
	"math"

	"github.com/tidwall/gjson"

	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
	"github.com/EmmerichFrog/bt-home-remote/internal/logging"
	"github.com/EmmerichFrog/bt-home-remote/internal/lookup"
)

// Decoder applies a settings document on top of a base configuration.
type Decoder struct {
	resolver *lookup.Resolver
	logger   logging.Logger
	budget   int
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

func WithResolver(r *lookup.Resolver) DecoderOption {
	return func(d *Decoder) {
		if r != nil {
			d.resolver = r
		}
	}
}

func WithDecoderLogger(logger logging.Logger) DecoderOption {
	return func(d *Decoder) {
		d.logger = logging.OrNop(logger)
	}
}

// WithBudget sets the token budget per lookup. Zero or less sizes each
// lookup with a counting pass.
func WithBudget(budget int) DecoderOption {
	return func(d *Decoder) {
		d.budget = budget
	}
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		resolver: lookup.New(),
		logger:   logging.NopLogger{},
		budget:   lookup.DefaultBudget,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode returns base with every usable entry of doc applied. Each key is
// resolved independently; a missing or invalid entry keeps the base value.
func (d *Decoder) Decode(doc []byte, base Settings) Settings {
	s := base

	if value, ok := d.resolver.Get(KeyDeviceName, doc, d.budget); ok {
		if name := text(value); name != "" {
			s.DeviceName = truncateName(name)
		}
	} else {
		d.logger.Info("key not found, keeping device name", "key", KeyDeviceName, "default", base.DeviceName)
	}

	s.PeriodIndex = d.index(doc, KeyPeriodIndex, base.PeriodIndex, len(periods))
	s.DurationIndex = d.index(doc, KeyDuration, base.DurationIndex, len(durationNames))

	if value, ok := d.resolver.Get(KeyRandomizeMAC, doc, d.budget); ok {
		switch parseUint(value.Bytes()) {
		case 0:
			s.RandomizeMAC = false
		case 1:
			s.RandomizeMAC = true
		default:
			d.logger.Warn("unexpected value, keeping default", "key", KeyRandomizeMAC, "value", value.String())
		}
	} else {
		d.logger.Error("key not found", "key", KeyRandomizeMAC)
	}

	return s
}

func (d *Decoder) index(doc []byte, key string, fallback, size int) int {
	value, ok := d.resolver.Get(key, doc, d.budget)
	if !ok {
		d.logger.Info("key not found, using default value", "key", key, "default", fallback)
		return fallback
	}

	index := parseUint(value.Bytes())
	if index >= uint64(size) {
		d.logger.Warn("index out of range, using default value", "key", key, "value", value.String(), "default", fallback)
		return fallback
	}
	return int(index)
}

// Decode applies doc on top of base with default options.
func Decode(doc []byte, base Settings) Settings {
	return NewDecoder().Decode(doc, base)
}

// text unescapes string values; other kinds are returned raw.
func text(v lookup.Value) string {
	if v.Kind() != jsontok.String || !bytes.ContainsRune(v.Bytes(), '\\') {
		return v.String()
	}

	quoted := make([]byte, 0, v.Len()+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, v.Bytes()...)
	quoted = append(quoted, '"')
	return gjson.ParseBytes(quoted).String()
}

// parseUint reads a leading run of decimal digits after optional spaces and
// an optional plus sign. Text without digits reads as 0; a minus sign or an
// overflow reads as MaxUint64 so it always fails range checks.
func parseUint(b []byte) uint64 {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}

	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		if b[i] == '-' {
			return math.MaxUint64
		}
		i++
	}

	var n uint64
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		digit := uint64(b[i] - '0')
		if n > (math.MaxUint64-digit)/10 {
			return math.MaxUint64
		}
		n = n*10 + digit
	}
	return n
}
