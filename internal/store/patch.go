package store

import "strings"

// Patch collects the columns of a partial update.
type Patch map[string]any

// Set assigns v to field when v is non-nil.
func Set[T any](p Patch, field string, v *T) {
	if v != nil {
		p[field] = *v
	}
}

// SetText assigns a trimmed string to field when v is non-nil. A blank
// string is stored as NULL.
func SetText(p Patch, field string, v *string) {
	if v != nil {
		p[field] = NullIfBlank(*v)
	}
}

// NullIfBlank returns nil for blank strings and the trimmed string otherwise.
func NullIfBlank(s string) any {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return s
}

// OptionalText returns a pointer to the trimmed string, or nil when blank.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
