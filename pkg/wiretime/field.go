package wiretime

import "time"

// FieldWriter accepts one string-valued field of a JSON object
type FieldWriter interface {
	WriteStringField(name, value string) error
}

// WriteField writes t under name. A nil or zero t writes nothing.
func WriteField(w FieldWriter, name string, t *time.Time) error {
	if t == nil || t.IsZero() {
		return nil
	}
	return w.WriteStringField(name, Format(*t))
}

// Fields is a JSON object under construction
type Fields map[string]any

func (f Fields) WriteStringField(name, value string) error {
	f[name] = value
	return nil
}
