package filter

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/pianoroll/midx/pkg/midx/library"
)

// Filter defines criteria for filtering, sorting, and limiting entry lists.
type Filter struct {
	// Extensions contains file extensions to include (e.g., ".mid", ".midi").
	// If non-empty, only entries with matching extensions are included.
	Extensions []string

	// Include contains glob patterns. If non-empty, entries must match at least one.
	Include []string

	// Exclude contains glob patterns. Matching entries are excluded.
	Exclude []string

	// Folder restricts results to entries in the given folder or beneath it.
	// Empty means all folders.
	Folder string

	// SortBy specifies the field to sort results by.
	SortBy SortField

	// SortDescending specifies whether to sort in descending order.
	SortDescending bool

	// Limit is the maximum number of entries to return. 0 means unlimited.
	Limit int
}

// Option is a functional option for configuring a Filter.
type Option func(*Filter)

// New creates a new Filter with the given options.
// Defaults: no criteria, sorted by name ascending, unlimited.
func New(opts ...Option) *Filter {
	f := &Filter{
		SortBy: SortName,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// WithExtensions sets the file extensions to include.
// Extensions are normalized: lowercase and prefixed with "." if missing.
func WithExtensions(extensions ...string) Option {
	return func(f *Filter) {
		normalized := make([]string, 0, len(extensions))
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			normalized = append(normalized, ext)
		}
		f.Extensions = normalized
	}
}

// WithInclude sets the include glob patterns.
// If any patterns are specified, entries must match at least one to be included.
func WithInclude(patterns ...string) Option {
	return func(f *Filter) {
		f.Include = patterns
	}
}

// WithExclude sets the exclude glob patterns.
// Entries matching any pattern are excluded.
func WithExclude(patterns ...string) Option {
	return func(f *Filter) {
		f.Exclude = patterns
	}
}

// WithFolder restricts results to entries in the given slash-separated
// folder path or any folder beneath it.
func WithFolder(folder string) Option {
	return func(f *Filter) {
		f.Folder = strings.Trim(strings.TrimSpace(folder), "/")
	}
}

// WithSortBy sets the field to sort results by.
func WithSortBy(field SortField) Option {
	return func(f *Filter) {
		f.SortBy = field
	}
}

// WithSortDescending sets whether to sort in descending order.
func WithSortDescending(desc bool) Option {
	return func(f *Filter) {
		f.SortDescending = desc
	}
}

// WithLimit sets the maximum number of entries to return.
// If limit < 0, it is set to 0 (unlimited).
func WithLimit(limit int) Option {
	return func(f *Filter) {
		if limit < 0 {
			limit = 0
		}
		f.Limit = limit
	}
}

// Match returns true if the entry matches all filter criteria.
// It checks Extensions, Folder, Exclude patterns, and Include patterns
// in that order.
func (f *Filter) Match(entry library.Entry) bool {
	if !f.matchExtension(entry) {
		return false
	}
	if !f.matchFolder(entry) {
		return false
	}
	if !f.matchPatterns(entry) {
		return false
	}
	return true
}

// matchExtension checks if the entry has an allowed extension.
func (f *Filter) matchExtension(entry library.Entry) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(entry.Path))
	for _, e := range f.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// matchFolder checks if the entry sits in the filter folder or beneath it.
func (f *Filter) matchFolder(entry library.Entry) bool {
	if f.Folder == "" {
		return true
	}
	folder := strings.Join(entry.Folder, "/")
	return folder == f.Folder || strings.HasPrefix(folder, f.Folder+"/")
}

// matchPatterns checks if the entry matches include/exclude patterns.
func (f *Filter) matchPatterns(entry library.Entry) bool {
	path := patternPath(entry)

	// Check exclude patterns
	if matchesAnyPattern(path, f.Exclude) {
		return false
	}

	// Check include patterns (if any specified, must match at least one)
	if len(f.Include) > 0 && !matchesAnyPattern(path, f.Include) {
		return false
	}

	return true
}

// matchesAnyPattern returns true if the path matches any of the glob patterns.
func matchesAnyPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			continue // Skip invalid patterns
		}
		if g.Match(path) {
			return true
		}
	}
	return false
}

// patternPath returns the path that patterns and path sorting operate on:
// the manifest-relative path for asset entries, the absolute path in slash
// form for local entries.
func patternPath(entry library.Entry) string {
	if entry.RelPath != "" {
		return entry.RelPath
	}
	return filepath.ToSlash(entry.Path)
}

// Sort returns a sorted copy of the entries slice based on the filter's
// sort settings. The original slice is not modified.
func (f *Filter) Sort(entries []library.Entry) []library.Entry {
	if len(entries) == 0 {
		return []library.Entry{}
	}

	sorted := slices.Clone(entries)

	slices.SortFunc(sorted, func(a, b library.Entry) int {
		var result int
		switch f.SortBy {
		case SortName:
			result = cmp.Compare(a.Name, b.Name)
		case SortPath:
			result = cmp.Compare(patternPath(a), patternPath(b))
		case SortSize:
			result = cmp.Compare(a.Size, b.Size)
		default:
			result = cmp.Compare(a.Name, b.Name)
		}

		// Ties break on path.
		if result == 0 {
			result = cmp.Compare(patternPath(a), patternPath(b))
		}

		if f.SortDescending {
			return -result
		}
		return result
	})

	return sorted
}

// Apply runs the complete filtering pipeline: Match, Sort, and Limit.
// It returns a new slice containing only the entries that pass all filters,
// sorted according to the filter settings, and limited to the specified count.
func (f *Filter) Apply(entries []library.Entry) []library.Entry {
	var matched []library.Entry
	for _, entry := range entries {
		if f.Match(entry) {
			matched = append(matched, entry)
		}
	}

	sorted := f.Sort(matched)

	if f.Limit > 0 && len(sorted) > f.Limit {
		return sorted[:f.Limit]
	}

	return sorted
}
