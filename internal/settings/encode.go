package settings

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var layout = &pretty.Options{
	Width:  80,
	Indent: "\t",
}

// values returns the document value of every key, in the order of Keys.
func values(s Settings) []string {
	return []string{
		s.DeviceName,
		strconv.Itoa(s.PeriodIndex),
		strconv.Itoa(s.DurationIndex),
		strconv.Itoa(boolIndex(s.RandomizeMAC)),
	}
}

// Encode renders s as a fresh settings document. Every value is written as a
// JSON string, numbers included, and keys keep the order of Keys.
func Encode(s Settings) ([]byte, error) {
	doc, err := set([]byte("{}"), s)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(doc, layout), nil
}

// Merge writes the settings keys into an existing document and keeps every
// other entry as it is. A doc that is empty or not a JSON object is replaced
// by the output of Encode.
func Merge(doc []byte, s Settings) ([]byte, error) {
	if len(bytes.TrimSpace(doc)) == 0 || !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return Encode(s)
	}
	return set(bytes.Clone(doc), s)
}

func set(doc []byte, s Settings) ([]byte, error) {
	for i, value := range values(s) {
		var err error
		doc, err = sjson.SetBytes(doc, Keys[i], value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", Keys[i], err)
		}
	}
	return doc, nil
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
