package catalog

import "strings"

// Filter carries the optional search parameters of a movie query. An empty
// field is absent and contributes no predicate.
type Filter struct {
	Year       string `json:"year,omitempty" validate:"omitempty,numeric"`
	Title      string `json:"title,omitempty"`
	CastMember string `json:"cast,omitempty"`
	Genre      string `json:"genre,omitempty"`
}

// IsEmpty reports whether no field is present, i.e. the filter matches all.
func (f Filter) IsEmpty() bool {
	return f.Year == "" && f.Title == "" && f.CastMember == "" && f.Genre == ""
}

// Normalize trims surrounding whitespace from the year, which arrives as text.
// Text fields are matched by containment and are left untouched.
func (f Filter) Normalize() Filter {
	f.Year = strings.TrimSpace(f.Year)
	return f
}
