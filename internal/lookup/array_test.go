package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/jsonpath"

	"github.com/EmmerichFrog/bt-home-remote/internal/logging"
)

func TestGetArrayElement(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		index  int
		doc    string
		want   string
		wantOK bool
	}{
		{
			name:   "object_element",
			key:    "arr",
			index:  1,
			doc:    `{"arr":[{"x":"1"},{"x":"2"}]}`,
			want:   `{"x":"2"}`,
			wantOK: true,
		},
		{
			name:   "first_element",
			key:    "arr",
			index:  0,
			doc:    `{"arr":[{"x":"1"},{"x":"2"}]}`,
			want:   `{"x":"1"}`,
			wantOK: true,
		},
		{
			name:   "primitive_elements",
			key:    "flags",
			index:  1,
			doc:    `{"flags":[true,false,null]}`,
			want:   "false",
			wantOK: true,
		},
		{
			name:   "string_element_without_quotes",
			key:    "mixed",
			index:  2,
			doc:    `{"mixed":[[1,2],[3],"s",4]}`,
			want:   "s",
			wantOK: true,
		},
		{
			name:   "skips_nested_arrays",
			key:    "mixed",
			index:  3,
			doc:    `{"mixed":[[1,2],[3],"s",4]}`,
			want:   "4",
			wantOK: true,
		},
		{
			name:   "skips_multi_key_objects",
			key:    "arr",
			index:  2,
			doc:    `{"arr":[{"a":1,"b":2,"c":3},{},"last"]}`,
			want:   "last",
			wantOK: true,
		},
		{
			name:   "string_value_is_reparsed",
			key:    "arr",
			index:  1,
			doc:    `{"arr":"[1,2]"}`,
			want:   "2",
			wantOK: true,
		},
		{name: "index_out_of_range", key: "arr", index: 2, doc: `{"arr":[{"x":"1"},{"x":"2"}]}`},
		{name: "negative_index", key: "arr", index: -1, doc: `{"arr":[1]}`},
		{name: "empty_array", key: "arr", index: 0, doc: `{"arr":[]}`},
		{name: "value_not_array", key: "arr", index: 0, doc: `{"arr":{"x":1}}`},
		{name: "missing_key", key: "nope", index: 0, doc: `{"arr":[1]}`},
		{name: "malformed_document", key: "arr", index: 0, doc: `{"arr":[1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetArrayElement(tt.key, tt.index, []byte(tt.doc), 32)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestGetArrayElement_AgreesWithJSONPath(t *testing.T) {
	doc := []byte(`{"remotes":[{"name":"tv","code":"12"},{"name":"fan","code":"7"},{"name":"light","code":"3"}],"v":1}`)

	var decoded any
	require.NoError(t, json.Unmarshal(doc, &decoded))

	for i := range 3 {
		t.Run(fmt.Sprintf("index_%d", i), func(t *testing.T) {
			got, ok := GetArrayElement("remotes", i, doc, 64)
			require.True(t, ok)

			nodes := jsonpath.MustParse(fmt.Sprintf("$.remotes[%d]", i)).Select(decoded)
			require.Len(t, nodes, 1)

			var element any
			require.NoError(t, json.Unmarshal(got.Bytes(), &element))
			assert.Equal(t, nodes[0], element)
		})
	}
}

func TestGetArrayElements(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		want   []string
		wantOK bool
	}{
		{
			name:   "all_objects",
			doc:    `{"arr":[{"x":"1"},{"x":"2"}]}`,
			want:   []string{`{"x":"1"}`, `{"x":"2"}`},
			wantOK: true,
		},
		{
			name:   "skips_non_objects",
			doc:    `{"arr":[{"a":1},2,{"b":2}]}`,
			want:   []string{`{"a":1}`, `{"b":2}`},
			wantOK: true,
		},
		{
			name:   "empty_array",
			doc:    `{"arr":[]}`,
			want:   []string{},
			wantOK: true,
		},
		{
			name:   "whitespace_preserved_inside_elements",
			doc:    "{\"arr\": [ {\"k\": \"v\"} ,\n {\"k\": \"w\"} ]}",
			want:   []string{`{"k": "v"}`, `{"k": "w"}`},
			wantOK: true,
		},
		{name: "not_an_array", doc: `{"arr":{"x":1}}`},
		{name: "missing_key", doc: `{"other":[]}`},
		{name: "root_not_object", doc: `[{"arr":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, ok := GetArrayElements("arr", []byte(tt.doc), 32)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, values)
				return
			}

			got := make([]string, 0, len(values))
			for _, v := range values {
				got = append(got, v.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetArrayElements_LogsSkippedElements(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(logging.NewText(&buf, false)))

	values, ok := r.GetArrayElements("arr", []byte(`{"arr":[1,{"a":"b"}]}`), 32)

	require.True(t, ok)
	require.Len(t, values, 1)
	assert.Contains(t, buf.String(), "array element is not an object, skipping")
	assert.Contains(t, buf.String(), "index=0")
}

func TestGetArrayElements_ValuesBorrowFromDocument(t *testing.T) {
	doc := []byte(`{"arr":[{"x":"1"}]}`)

	values, ok := GetArrayElements("arr", doc, 16)
	require.True(t, ok)
	require.Len(t, values, 1)

	owned := values[0].Clone()
	copy(doc[8:], `{"y"`)

	assert.Equal(t, `{"y":"1"}`, values[0].String())
	assert.Equal(t, `{"x":"1"}`, owned.String())
}
