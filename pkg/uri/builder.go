// Package uri provides a URI builder that keeps path templates verbatim
// and lets callers append or replace query parameters.
package uri

import (
	"fmt"
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
}

// Builder is a URI under construction. The path is stored as given, so
// template placeholders like {id} survive rendering. Query parameters keep
// their insertion order.
type Builder struct {
	path     string
	query    []param
	fragment string
}

// Parse splits raw into path, query and fragment.
// Query keys and values are decoded; malformed escapes are reported.
func Parse(raw string) (*Builder, error) {
	b := &Builder{}

	rest := raw
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		b.fragment = rest[i+1:]
		rest = rest[:i]
	}

	rawQuery := ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rawQuery = rest[i+1:]
		rest = rest[:i]
	}
	b.path = rest

	if rawQuery == "" {
		return b, nil
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("invalid query key %q: %w", k, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("invalid query value for %q: %w", key, err)
		}
		b.query = append(b.query, param{key: key, value: value})
	}

	return b, nil
}

// FromString is like Parse but never fails: when raw cannot be parsed
// the whole string is used as the path.
func FromString(raw string) *Builder {
	b, err := Parse(raw)
	if err != nil {
		return &Builder{path: raw}
	}
	return b
}

// Clone returns an independent copy of b.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		path:     b.path,
		fragment: b.fragment,
	}
	if len(b.query) > 0 {
		c.query = make([]param, len(b.query))
		copy(c.query, b.query)
	}
	return c
}

// Path returns the raw path, templates included.
func (b *Builder) Path() string {
	return b.path
}

// QueryParam appends values for name, keeping any existing ones.
func (b *Builder) QueryParam(name string, values ...string) *Builder {
	for _, v := range values {
		b.query = append(b.query, param{key: name, value: v})
	}
	return b
}

// ReplaceQueryParam sets name to values. The first existing occurrence keeps
// its position, later duplicates are dropped. With no values the parameter
// is removed.
func (b *Builder) ReplaceQueryParam(name string, values ...string) *Builder {
	out := make([]param, 0, len(b.query)+len(values))
	inserted := false
	for _, p := range b.query {
		if p.key != name {
			out = append(out, p)
			continue
		}
		if !inserted {
			for _, v := range values {
				out = append(out, param{key: name, value: v})
			}
			inserted = true
		}
	}
	if !inserted {
		for _, v := range values {
			out = append(out, param{key: name, value: v})
		}
	}
	b.query = out
	return b
}

// QueryValues returns the decoded values for name in order.
func (b *Builder) QueryValues(name string) []string {
	var values []string
	for _, p := range b.query {
		if p.key == name {
			values = append(values, p.value)
		}
	}
	return values
}

// Query returns the parameters as url.Values.
func (b *Builder) Query() url.Values {
	values := make(url.Values, len(b.query))
	for _, p := range b.query {
		values[p.key] = append(values[p.key], p.value)
	}
	return values
}

// Expand replaces {name} placeholders in the path with path-escaped values.
// Placeholders without a value are left untouched.
func (b *Builder) Expand(vars map[string]string) *Builder {
	var sb strings.Builder
	path := b.path
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			sb.WriteString(path)
			break
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			sb.WriteString(path)
			break
		}
		end += start

		name := path[start+1 : end]
		sb.WriteString(path[:start])
		if v, ok := vars[name]; ok {
			sb.WriteString(url.PathEscape(v))
		} else {
			sb.WriteString(path[start : end+1])
		}
		path = path[end+1:]
	}
	b.path = sb.String()
	return b
}

// String renders the URI. Query keys and values are escaped, the path is not.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.path)
	for i, p := range b.query {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	if b.fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(b.fragment)
	}
	return sb.String()
}
