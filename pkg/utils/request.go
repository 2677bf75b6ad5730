package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

const maxBodyBytes = 1_048_576

// ErrInvalidBody marks a request body that is not a single well-formed JSON value.
var ErrInvalidBody = errors.New("invalid request body")

// ReadJSON decodes a single JSON value from the request body into dst.
// Type mismatches are reported as FieldErrors, anything else malformed wraps ErrInvalidBody.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("%w: badly-formed JSON at character %d", ErrInvalidBody, syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return fmt.Errorf("%w: badly-formed JSON", ErrInvalidBody)

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field == "" {
				return fmt.Errorf("%w: expected a JSON object", ErrInvalidBody)
			}
			// Field names an array as a whole, element indexes are not reported
			return FieldErrors{{
				Field:   unmarshalTypeError.Field,
				Message: fmt.Sprintf("Expected %s, received %s", jsonKind(unmarshalTypeError.Type), unmarshalTypeError.Value),
			}}

		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: body must not be empty", ErrInvalidBody)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("%w: body must not be larger than %d bytes", ErrInvalidBody, maxBodyBytes)

		default:
			return fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
	}

	// a second value in the stream means the client sent more than one JSON document
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body must only contain a single JSON value", ErrInvalidBody)
	}

	return nil
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
