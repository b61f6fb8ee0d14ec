package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// DefaultServer is the hastebin instance used when none is given
const DefaultServer = "https://hasteb.in"

// NotFoundBody is the literal body a hastebin server returns for a missing key
const NotFoundBody = `{"message":"Document not found."}`

// Document is a paste addressed by an opaque server-assigned key
type Document struct {
	Key     string
	Content string
}

// Origin is the scheme and host of a hastebin server, e.g. https://hasteb.in
type Origin string

// DocumentsURL returns the creation endpoint
func (o Origin) DocumentsURL() string {
	return string(o) + "/documents"
}

// RawURL returns the raw fetch endpoint for key
func (o Origin) RawURL(key string) string {
	return string(o) + "/raw/" + key
}

// DocumentURL returns the shareable URL for key, in raw form if requested
func (o Origin) DocumentURL(key string, raw bool) string {
	var b strings.Builder
	b.WriteString(string(o))
	b.WriteString("/")
	if raw {
		b.WriteString("raw/")
	}
	b.WriteString(key)
	return b.String()
}

// IsNotFound reports whether body is the not-found sentinel
func IsNotFound(body string) bool {
	return body == NotFoundBody
}

// PostResult is the decoded response to a create request
type PostResult struct {
	Key string `json:"key"`
}

// DecodePostResult parses a create response, requiring a string "key" field
func DecodePostResult(body string) (*PostResult, error) {
	var raw struct {
		Key *string `json:"key"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, Wrap(KindDecode, "invalid create response", err)
	}
	if raw.Key == nil {
		return nil, Wrap(KindDecode, "invalid create response", errors.New(`missing field "key"`))
	}
	return &PostResult{Key: *raw.Key}, nil
}
