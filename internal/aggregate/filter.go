package aggregate

import "github.com/mkallio/stint/internal/domain"

type filterKind int

const (
	filterAny filterKind = iota
	filterNamed
	filterNoCompany
)

// CompanyFilter selects records by company before bucketing. Three modes:
// match everything, exact-match a name, or match only records with an empty
// company ("no company" is a meaningful category, not null).
type CompanyFilter struct {
	kind filterKind
	name string
}

// AnyCompany matches every record.
func AnyCompany() CompanyFilter { return CompanyFilter{kind: filterAny} }

// ByCompany matches records whose company equals name exactly.
func ByCompany(name string) CompanyFilter {
	return CompanyFilter{kind: filterNamed, name: name}
}

// WithoutCompany matches only records with an empty company name.
func WithoutCompany() CompanyFilter { return CompanyFilter{kind: filterNoCompany} }

// Matches reports whether r passes the filter.
func (f CompanyFilter) Matches(r domain.WorkRecord) bool {
	switch f.kind {
	case filterNamed:
		return r.CompanyName == f.name
	case filterNoCompany:
		return r.CompanyName == ""
	default:
		return true
	}
}

// Apply returns the subset of records passing the filter.
func (f CompanyFilter) Apply(records []domain.WorkRecord) []domain.WorkRecord {
	if f.kind == filterAny {
		return records
	}
	var out []domain.WorkRecord
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// String returns the display label for the filter.
func (f CompanyFilter) String() string {
	switch f.kind {
	case filterNamed:
		return f.name
	case filterNoCompany:
		return "Other"
	default:
		return "All"
	}
}
