package lookup

import (
	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
)

// resolveArray fetches the raw text stored under key and re-parses it as a
// standalone array document.
func (r *Resolver) resolveArray(key string, doc []byte, budget int) ([]byte, []jsontok.Token, bool) {
	value, ok := r.Get(key, doc, budget)
	if !ok {
		r.logger.Debug("array key not resolved", "key", key)
		return nil, nil, false
	}

	text := value.Bytes()
	tokens, err := r.Tokens(text, budget)
	if err != nil {
		r.logger.Debug("array value rejected", "key", key, "error", err)
		return nil, nil, false
	}

	if len(tokens) == 0 || tokens[0].Kind != jsontok.Array {
		r.logger.Debug("value is not an array", "key", key)
		return nil, nil, false
	}

	return text, tokens, true
}

// GetArrayElement returns element index of the array stored under key.
func (r *Resolver) GetArrayElement(key string, index int, doc []byte, budget int) (Value, bool) {
	text, tokens, ok := r.resolveArray(key, doc, budget)
	if !ok {
		return Value{}, false
	}

	if index < 0 || index >= tokens[0].Size {
		r.logger.Debug("index out of bounds", "key", key, "index", index, "size", tokens[0].Size)
		return Value{}, false
	}

	current := 1
	for range index {
		current += skip(tokens[current])
		if current >= len(tokens) {
			r.logger.Debug("unexpected end of tokens while traversing array", "key", key)
			return Value{}, false
		}
	}

	return newValue(text, tokens[current]), true
}

// GetArrayElements returns every object element of the array stored under
// key. Elements that are not objects are skipped, so the result may be
// shorter than the array.
func (r *Resolver) GetArrayElements(key string, doc []byte, budget int) ([]Value, bool) {
	text, tokens, ok := r.resolveArray(key, doc, budget)
	if !ok {
		return nil, false
	}

	size := tokens[0].Size
	values := make([]Value, 0, size)

	current := 1
	for i := range size {
		if current >= len(tokens) {
			r.logger.Warn("unexpected end of tokens while traversing array", "key", key)
			break
		}

		element := tokens[current]
		if element.Kind != jsontok.Object {
			r.logger.Warn("array element is not an object, skipping", "key", key, "index", i)
			current++
			continue
		}

		values = append(values, newValue(text, element))
		current += skip(element)
	}

	return values, true
}

// skip returns how many tokens an element occupies, assuming its children
// are flat: two per object pair, one per array element.
func skip(tok jsontok.Token) int {
	switch tok.Kind {
	case jsontok.Object:
		return 1 + 2*tok.Size
	case jsontok.Array:
		return 1 + tok.Size
	default:
		return 1
	}
}
