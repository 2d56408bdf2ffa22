package lookup

import (
	"fmt"

	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
	"github.com/EmmerichFrog/bt-home-remote/internal/logging"
)

// DefaultBudget is the token budget used for settings documents.
const DefaultBudget = 128

// Resolver extracts values from small JSON documents. Every lookup parses
// the document afresh into its own token pool, so a Resolver is safe for
// concurrent use.
//
// Lookups collapse every failure (malformed document, wrong root kind,
// missing key, index out of range) into ok == false. The cause is logged at
// debug level.
type Resolver struct {
	logger logging.Logger
	parse  []jsontok.Option
}

// Option configures a Resolver.
type Option func(*Resolver)

func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) {
		r.logger = logging.OrNop(logger)
	}
}

// WithStrict makes the underlying tokenizer reject bare words and
// primitive keys.
func WithStrict() Option {
	return func(r *Resolver) {
		r.parse = append(r.parse, jsontok.WithStrict())
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Get resolves key in doc with the default resolver.
func Get(key string, doc []byte, budget int) (Value, bool) {
	return defaultResolver.Get(key, doc, budget)
}

// GetArrayElement resolves element index of the array stored under key with
// the default resolver.
func GetArrayElement(key string, index int, doc []byte, budget int) (Value, bool) {
	return defaultResolver.GetArrayElement(key, index, doc, budget)
}

// GetArrayElements resolves every object element of the array stored under
// key with the default resolver.
func GetArrayElements(key string, doc []byte, budget int) ([]Value, bool) {
	return defaultResolver.GetArrayElements(key, doc, budget)
}

// Tokens parses doc into a pool of budget slots. A budget of zero or less
// sizes the pool with a counting pass first.
func (r *Resolver) Tokens(doc []byte, budget int) ([]jsontok.Token, error) {
	if budget <= 0 {
		n, err := jsontok.Count(doc, r.parse...)
		if err != nil {
			return nil, fmt.Errorf("count tokens: %w", err)
		}
		budget = n
	}

	pool := jsontok.NewPool(budget)
	if _, err := jsontok.Parse(doc, pool, r.parse...); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return pool.Tokens(), nil
}

// Get returns the value that follows the first string token equal to key.
//
// Keys are compared byte for byte against the raw source text, without
// unescaping. The value is the token right after the key; for a container
// value that is the container's own span, children included.
func (r *Resolver) Get(key string, doc []byte, budget int) (Value, bool) {
	tokens, err := r.Tokens(doc, budget)
	if err != nil {
		r.logger.Debug("document rejected", "key", key, "error", err)
		return Value{}, false
	}

	if len(tokens) == 0 || tokens[0].Kind != jsontok.Object {
		r.logger.Debug("root element is not an object", "key", key)
		return Value{}, false
	}

	for i := 1; i < len(tokens); i++ {
		if !matchesKey(doc, tokens[i], key) {
			continue
		}
		if i+1 >= len(tokens) {
			r.logger.Debug("key has no value", "key", key)
			return Value{}, false
		}
		return newValue(doc, tokens[i+1]), true
	}

	r.logger.Debug("key not found", "key", key)
	return Value{}, false
}

func matchesKey(doc []byte, tok jsontok.Token, key string) bool {
	return tok.Kind == jsontok.String && tok.Len() == len(key) && string(tok.Bytes(doc)) == key
}
