package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/EmmerichFrog/bt-home-remote/internal/logging"
	"github.com/EmmerichFrog/bt-home-remote/internal/ratelimit"
	"github.com/EmmerichFrog/bt-home-remote/internal/storage"
)

// Store loads and saves settings through a bounded file. Saving edits the
// document it last loaded, so entries the settings model does not know about
// survive a save.
//
// A Store is meant to live as long as the settings screen: the limiter only
// spaces out saves made through the same Store.
type Store struct {
	mu sync.Mutex

	file        *storage.File
	decoder     *Decoder
	limiter     *ratelimit.Limiter
	logger      logging.Logger
	defaultName string

	// doc is the document last read or written, nil until the first
	// successful Load or Save. digest is its hash.
	doc    []byte
	digest uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

func WithDecoder(d *Decoder) StoreOption {
	return func(s *Store) {
		if d != nil {
			s.decoder = d
		}
	}
}

// WithLimiter spaces out consecutive saves. The default does not throttle.
func WithLimiter(l *ratelimit.Limiter) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.limiter = l
		}
	}
}

func WithStoreLogger(logger logging.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logging.OrNop(logger)
	}
}

// NewStore persists settings in file. defaultName replaces an empty device
// name on load and save.
func NewStore(file *storage.File, defaultName string, opts ...StoreOption) *Store {
	s := &Store{
		file:        file,
		decoder:     NewDecoder(),
		limiter:     ratelimit.New(0),
		logger:      logging.NopLogger{},
		defaultName: defaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("path", file.Path())
	return s
}

func (s *Store) Path() string {
	return s.file.Path()
}

// Load reads the stored document and applies it over the defaults. A missing
// file is not an error: the folder is created and defaults are returned.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := Defaults(s.defaultName)
	s.logger.Info("loading settings")

	if err := s.file.EnsureDir(); err != nil {
		return defaults, err
	}

	doc, err := s.file.Read()
	if err != nil {
		if storage.IsNotExist(err) {
			s.logger.Warn("settings file missing, using defaults")
			s.doc = nil
			return defaults, nil
		}
		return defaults, fmt.Errorf("load settings: %w", err)
	}

	s.doc = doc
	s.digest = xxhash.Sum64(doc)

	loaded := s.decoder.Decode(doc, defaults)
	s.logger.Info("settings loaded", "bytes", len(doc))
	return loaded, nil
}

// Save writes settings into the last loaded document unless the result is
// identical to it. It waits for the write limiter first. The bool result
// reports whether the file was written.
//
// A document that would not fit the read limit is refused with an error
// wrapping storage.ErrTooLarge, and the file is left untouched.
func (s *Store) Save(ctx context.Context, settings Settings) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings = settings.Normalize(s.defaultName)

	doc, err := Merge(s.doc, settings)
	if err != nil {
		return false, fmt.Errorf("save settings: %w", err)
	}

	digest := xxhash.Sum64(doc)
	if s.doc != nil && digest == s.digest {
		s.logger.Debug("settings unchanged, skipping write")
		return false, nil
	}

	if limit := s.file.Limit(); len(doc) > limit {
		s.logger.Error("settings document too large", "bytes", len(doc), "limit", limit)
		return false, fmt.Errorf("save settings: %w: %d bytes, limit %d", storage.ErrTooLarge, len(doc), limit)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("save settings: %w", err)
	}

	if err := s.file.Write(doc); err != nil {
		s.logger.Error("failed to write settings", "error", err)
		return false, fmt.Errorf("save settings: %w", err)
	}

	s.doc = doc
	s.digest = digest
	s.logger.Info("settings saved", "bytes", len(doc))
	return true, nil
}
