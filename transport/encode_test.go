package transport

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

type locale string

func TestEncodeForm(t *testing.T) {
	values := encodeForm(map[string]interface{}{
		"email_address": "a@b.com",
		"client_id":     nil,
		"test_mode":     false,
		"count":         3,
		"cc":            []string{"x@y.com", "z@y.com"},
		"signers": []interface{}{
			map[string]interface{}{"name": "Jack", "order": 0},
		},
		"metadata": map[string]string{"ref": "42"},
	})

	assert.Equal(t, "a@b.com", values.Get("email_address"))
	assert.NotContains(t, values, "client_id")
	assert.Equal(t, "0", values.Get("test_mode"))
	assert.Equal(t, "3", values.Get("count"))
	assert.Equal(t, "x@y.com", values.Get("cc[0]"))
	assert.Equal(t, "z@y.com", values.Get("cc[1]"))
	assert.Equal(t, "Jack", values.Get("signers[0][name]"))
	assert.Equal(t, "0", values.Get("signers[0][order]"))
	assert.Equal(t, "42", values.Get("metadata[ref]"))
}

func TestEncodeForm_TypedCollections(t *testing.T) {
	flag := true
	cases := map[string]struct {
		body     map[string]interface{}
		expected url.Values
	}{
		"slice of maps": {
			body: map[string]interface{}{
				"signers": []map[string]interface{}{
					{"name": "Jack", "email_address": "j@x.com"},
					{"name": "Jill", "email_address": "i@x.com"},
				},
			},
			expected: url.Values{
				"signers[0][name]":          {"Jack"},
				"signers[0][email_address]": {"j@x.com"},
				"signers[1][name]":          {"Jill"},
				"signers[1][email_address]": {"i@x.com"},
			},
		},
		"int slice": {
			body:     map[string]interface{}{"orders": []int{1, 2}},
			expected: url.Values{"orders[0]": {"1"}, "orders[1]": {"2"}},
		},
		"int array": {
			body:     map[string]interface{}{"orders": [2]int{3, 4}},
			expected: url.Values{"orders[0]": {"3"}, "orders[1]": {"4"}},
		},
		"map of ints": {
			body:     map[string]interface{}{"meta": map[string]int{"ref": 42}},
			expected: url.Values{"meta[ref]": {"42"}},
		},
		"nested typed collections": {
			body: map[string]interface{}{
				"fields": map[string][]bool{"required": {true, false}},
			},
			expected: url.Values{"fields[required][0]": {"1"}, "fields[required][1]": {"0"}},
		},
		"pointers and named strings": {
			body: map[string]interface{}{
				"test_mode": &flag,
				"skipped":   (*bool)(nil),
				"locale":    locale("fr-FR"),
			},
			expected: url.Values{"test_mode": {"1"}, "locale": {"fr-FR"}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, encodeForm(tc.body))
		})
	}
}

func TestEncodeForm_EncodedBodyIsSorted(t *testing.T) {
	body := map[string]interface{}{"b": "2", "a": "1", "c": map[string]int{"y": 2, "x": 1}}

	assert.Equal(t, "a=1&b=2&c%5Bx%5D=1&c%5By%5D=2", encodeForm(body).Encode())
}

func TestEncodeForm_Empty(t *testing.T) {
	assert.Empty(t, encodeForm(nil).Encode())
}
