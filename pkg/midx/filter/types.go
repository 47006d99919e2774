// Package filter provides filtering, sorting, and limiting functionality
// for library entry lists. It supports filtering by extension, glob
// patterns, and folder, with configurable sorting and limits.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// SortField specifies the field to sort entries by.
type SortField int

const (
	// SortName sorts entries by display name.
	SortName SortField = iota
	// SortPath sorts entries by canonical path.
	SortPath
	// SortSize sorts entries by size in bytes.
	SortSize
)

// Sort field string constants.
const (
	sortFieldName = "name"
	sortFieldPath = "path"
	sortFieldSize = "size"
)

// String returns the string representation of the sort field.
func (s SortField) String() string {
	switch s {
	case SortName:
		return sortFieldName
	case SortPath:
		return sortFieldPath
	case SortSize:
		return sortFieldSize
	default:
		return sortFieldName
	}
}

// ErrInvalidSortField indicates that the sort field string could not be parsed.
var ErrInvalidSortField = errors.New("invalid sort field")

// ParseSortField parses a string into a SortField.
// Valid values are "name", "path", and "size" (case-insensitive).
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(s) {
	case sortFieldName:
		return SortName, nil
	case sortFieldPath:
		return SortPath, nil
	case sortFieldSize:
		return SortSize, nil
	default:
		return SortName, fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
}
