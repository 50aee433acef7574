package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

const maxBodyBytes = 1 << 20

var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes a single JSON object from the request body into dst, which must be a
// pointer to a struct. Fields missing from the body keep whatever dst already holds.
//
// A body that is not exactly one JSON object returns ErrMalformedBody. Known fields that are
// null or carry the wrong JSON type are reported per field in the returned map, keyed by
// their json name, the same way ValidateStruct reports them.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) (map[string]string, error) {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("decode target must be a pointer to struct, got %T", dst)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrMalformedBody)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: body must contain a single JSON object", ErrMalformedBody)
	}

	fields := jsonFields(target.Elem().Type())
	errs := make(map[string]string)

	for key, value := range raw {
		index, ok := fields[strings.ToLower(key)]
		if !ok {
			continue
		}
		field := target.Elem().Field(index)
		name := jsonName(target.Elem().Type().Field(index))

		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			errs[name] = "Must not be null"
			continue
		}

		if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				errs[name] = typeMessage(field.Kind())
			} else {
				errs[name] = "Invalid value"
			}
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// jsonFields maps the lowercased json name of every exported field to its index
func jsonFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		fields[strings.ToLower(name)] = i
	}
	return fields
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		return f.Name
	}
	return name
}

func typeMessage(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Must be an integer"
	case reflect.Float32, reflect.Float64:
		return "Must be a number"
	case reflect.String:
		return "Must be a string"
	case reflect.Bool:
		return "Must be a boolean"
	default:
		return "Invalid type"
	}
}
