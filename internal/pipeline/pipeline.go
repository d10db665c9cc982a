// Package pipeline implements the request-validation pipeline run before
// every mutating operation. A pipeline is an ordered list of independent
// checks; the first failing check aborts the request with its error and no
// later check runs.
package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	apperrors "dinette/internal/errors"
)

// Payload is the decoded "data" envelope of a request body. Values are kept
// untyped, with numbers as json.Number, so checks can observe what the client
// actually sent (missing vs empty vs wrong type, integer vs fractional).
type Payload map[string]interface{}

// Request carries everything a check may read: the decoded payload and the
// resource id from the route.
type Request struct {
	Data    Payload
	RouteID string
}

// Check inspects one aspect of a request. A nil return means the check
// passed; a non-nil error aborts the pipeline.
type Check func(*Request) error

// Run executes checks in order and returns the first failure, if any.
func Run(req *Request, checks ...Check) error {
	for _, check := range checks {
		if err := check(req); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a `{"data": {...}}` request body into a Payload. Numbers are
// decoded as json.Number. A body without a data object yields an empty
// payload so presence checks report per-field errors instead of a generic one.
func Decode(r *http.Request) (Payload, error) {
	var envelope struct {
		Data Payload `json:"data"`
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, apperrors.NewValidationError("request body must be valid JSON")
	}
	if envelope.Data == nil {
		envelope.Data = Payload{}
	}
	return envelope.Data, nil
}

// HasField fails when the field is absent, an empty string, or otherwise
// falsy (nil, false, numeric zero).
func HasField(name string) Check {
	return func(req *Request) error {
		if falsy(req.Data[name]) {
			return apperrors.NewValidationError("Must include a %s", name)
		}
		return nil
	}
}

// NonEmptyString fails unless the field holds a string of length >= 1. It is
// always paired after HasField for the same field, so a missing field reports
// the presence error rather than this one.
func NonEmptyString(name string) Check {
	return func(req *Request) error {
		s, ok := req.Data[name].(string)
		if !ok || len(s) == 0 {
			return apperrors.NewValidationError("Must not be an empty string in a %s", name)
		}
		return nil
	}
}

// IsPositiveInt reports whether v is a JSON number that is an integer >= 1.
// Fractional numbers, strings, and missing values all fail.
func IsPositiveInt(v interface{}) bool {
	n, ok := v.(json.Number)
	if !ok {
		return false
	}
	f, err := n.Float64()
	if err != nil {
		return false
	}
	return f >= 1 && f == math.Trunc(f)
}

// BodyID returns the id supplied in the payload, rendered as a string, and
// whether one was supplied at all. A falsy id (absent, null, empty string,
// zero) counts as not supplied; any other value, string or not, is rendered
// so the caller can compare it against the route id.
func BodyID(req *Request) (string, bool) {
	v := req.Data["id"]
	if falsy(v) {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	return fmt.Sprint(v), true
}

// String coerces a payload value to string, returning "" for non-strings.
func String(v interface{}) string {
	s, _ := v.(string)
	return s
}

// Int coerces a payload value to int, returning 0 when it is not an integral
// JSON number. Callers are expected to have validated the value with
// IsPositiveInt first; the float fallback for whole-number forms like "3.0"
// loses precision above 2^53 and must not be fed unvalidated input.
func Int(v interface{}) int {
	n, ok := v.(json.Number)
	if !ok {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) {
			return 0
		}
		i = int64(f)
	}
	return int(i)
}

func falsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	}
	return false
}
