package transport

import (
	"net/url"
	"strings"
)

// Query is an ordered set of query parameters. Unlike url.Values it encodes
// keys in insertion order.
type Query struct {
	keys   []string
	values []string
}

// Set appends key=value, or replaces the value if key is already present.
func (q *Query) Set(key, value string) {
	for i, k := range q.keys {
		if k == key {
			q.values[i] = value
			return
		}
	}
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
}

// Get returns the value for key and whether it was set.
func (q Query) Get(key string) (string, bool) {
	for i, k := range q.keys {
		if k == key {
			return q.values[i], true
		}
	}
	return "", false
}

// Len returns the number of parameters.
func (q Query) Len() int { return len(q.keys) }

// Encode renders the parameters as a URL query string without the leading "?".
func (q Query) Encode() string {
	if len(q.keys) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[i]))
	}
	return b.String()
}
