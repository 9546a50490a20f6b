package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrNoBody is returned when decoding a response that carries no body.
var ErrNoBody = errors.New("response has no body")

// Response is a read-only observation of one request.
// Transport failures leave Status at 0 and set Err.
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	Err      error
	Duration time.Duration
}

// JSON decodes the body into dest.
func (r *Response) JSON(dest interface{}) error {
	if r == nil || len(r.Body) == 0 {
		return ErrNoBody
	}
	return json.Unmarshal(r.Body, dest)
}

// HasField reports whether the body is a JSON object with a top-level
// field called name. A null value still counts as present.
func (r *Response) HasField(name string) bool {
	var obj map[string]json.RawMessage
	if err := r.JSON(&obj); err != nil {
		return false
	}
	_, ok := obj[name]
	return ok
}

// StringField returns a top-level string field, or "" if absent or not a string.
func (r *Response) StringField(name string) string {
	var obj map[string]interface{}
	if err := r.JSON(&obj); err != nil {
		return ""
	}
	s, _ := obj[name].(string)
	return s
}
