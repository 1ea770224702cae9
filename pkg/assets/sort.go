package assets

import "strings"

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"

	DefaultSortColumn = "id"
)

// SortSpec is an ordering instruction handed to the store as-is.
type SortSpec struct {
	Direction SortDirection
	Column    string
}

// ResolveSort turns the loosely typed sortDirection/sortColumn query values into a SortSpec.
// Unrecognized directions fall back to DESC and a blank column to id. The column is not checked
// against the asset attributes here; the store rejects unknown names when it runs the query.
func ResolveSort(direction, column string) SortSpec {
	spec := SortSpec{Direction: SortDesc, Column: DefaultSortColumn}

	switch SortDirection(strings.ToUpper(strings.TrimSpace(direction))) {
	case SortAsc:
		spec.Direction = SortAsc
	case SortDesc:
		spec.Direction = SortDesc
	}

	if c := strings.TrimSpace(column); c != "" {
		spec.Column = c
	}

	return spec
}

func (s SortSpec) String() string {
	return s.Column + ": " + string(s.Direction)
}
