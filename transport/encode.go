package transport

import (
	"fmt"
	"net/url"
	"reflect"
)

// encodeForm flattens body into the bracketed form encoding the API expects:
// slices become key[0], key[1], nested maps become key[sub]. url.Values.Encode
// sorts by key, so map iteration order does not leak into the body.
func encodeForm(body map[string]interface{}) url.Values {
	values := url.Values{}
	for key, value := range body {
		addFormValue(values, key, value)
	}
	return values
}

func addFormValue(values url.Values, key string, value interface{}) {
	switch v := value.(type) {
	case nil:
	case bool:
		if v {
			values.Add(key, "1")
		} else {
			values.Add(key, "0")
		}
	case string:
		values.Add(key, v)
	case fmt.Stringer:
		values.Add(key, v.String())
	default:
		addReflectedValue(values, key, reflect.ValueOf(value))
	}
}

func addReflectedValue(values url.Values, key string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return
		}
		addFormValue(values, key, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			values.Add(key, string(rv.Bytes()))
			return
		}
		for i := 0; i < rv.Len(); i++ {
			addFormValue(values, fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			values.Add(key, fmt.Sprint(rv.Interface()))
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			addFormValue(values, fmt.Sprintf("%s[%s]", key, iter.Key().String()), iter.Value().Interface())
		}
	default:
		values.Add(key, fmt.Sprint(rv.Interface()))
	}
}
