// Package resource holds the typed, read-only values built from API responses.
package resource

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"

	"github.com/carson-networks/signing-client/transport"
)

// base keeps a private deep copy of the raw response so fields the typed
// struct does not know about remain reachable.
type base struct {
	raw map[string]interface{}
}

func newBase(data map[string]interface{}) (base, error) {
	if data == nil {
		return base{raw: map[string]interface{}{}}, nil
	}

	copied, err := copystructure.Copy(data)
	if err != nil {
		return base{}, errors.Wrap(err, "resource: copy response")
	}
	return base{raw: copied.(map[string]interface{})}, nil
}

// Get returns the raw value stored under key, including keys unknown to the typed fields.
func (b base) Get(key string) (interface{}, bool) {
	value, ok := b.raw[key]
	if !ok {
		return nil, false
	}
	if value == nil {
		return nil, true
	}
	return copystructure.Must(copystructure.Copy(value)), true
}

// Data returns a deep copy of the raw mapping the resource was built from.
func (b base) Data() map[string]interface{} {
	return copystructure.Must(copystructure.Copy(b.raw)).(map[string]interface{})
}

// unwrap returns data[key] when the API nested the object under its name,
// otherwise data itself.
func unwrap(data map[string]interface{}, key string) (map[string]interface{}, error) {
	nested, ok := data[key]
	if !ok {
		return data, nil
	}

	object, ok := nested.(map[string]interface{})
	if !ok {
		return nil, errors.Wrapf(transport.ErrMalformedResponse, "%q is %T, not an object", key, nested)
	}
	return object, nil
}

func decode(data map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "resource: decoder")
	}

	if err := decoder.Decode(data); err != nil {
		return errors.Wrapf(transport.ErrMalformedResponse, "%v", err)
	}
	return nil
}
