// Package output provides formatters for displaying library listings
// in various output formats (pretty, plain, json, yaml, etc.).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pianoroll/midx/pkg/midx/library"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// EntryInfo contains detailed information about a library entry for output
// formatting. It extends the basic entry metadata with computed fields like
// human-readable size for easier formatting.
type EntryInfo struct {
	// ID is the entry identifier as a UUID string.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (file name without extension).
	Name string `json:"name" yaml:"name"`

	// Path is the canonical path: manifest-relative with forward slashes
	// for asset entries, absolute in slash form for local entries.
	Path string `json:"path" yaml:"path"`

	// Folder is the slash-joined folder path, empty for root-level entries.
	Folder string `json:"folder" yaml:"folder"`

	// Ext is the file extension including the dot (e.g., ".mid").
	Ext string `json:"ext" yaml:"ext"`

	// Origin identifies where the entry came from: "asset" or "local".
	Origin string `json:"origin" yaml:"origin"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// SizeHuman is the human-readable file size (e.g., "1.5 KiB").
	SizeHuman string `json:"size_human" yaml:"size_human"`

	// ModTime is the last modification time of the file.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// ListStats contains statistics about a listing operation.
type ListStats struct {
	// EntriesTotal is the number of entries in the whole library.
	EntriesTotal int `json:"entries_total" yaml:"entries_total"`

	// EntriesListed is the number of entries after filtering and limiting.
	EntriesListed int `json:"entries_listed" yaml:"entries_listed"`

	// TotalSize is the combined size in bytes of the listed entries.
	TotalSize int64 `json:"total_size" yaml:"total_size"`
}

// Result contains the complete output data for formatting.
type Result struct {
	// Entries contains the listed entries in display order.
	Entries []EntryInfo `json:"entries" yaml:"entries"`

	// Stats contains listing statistics.
	Stats ListStats `json:"stats" yaml:"stats"`

	// Source is the library root the entries resolve against.
	Source string `json:"source" yaml:"source"`

	// ManifestPath is the path of the manifest the library was loaded from.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`

	// TotalEntries is the total number of entries in the library.
	TotalEntries int `json:"total_entries" yaml:"total_entries"`

	// Warnings contains any warning messages generated while loading.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// FromEntries converts library entries to output entry infos.
func FromEntries(entries []library.Entry) []EntryInfo {
	infos := make([]EntryInfo, len(entries))
	for i, entry := range entries {
		path := entry.RelPath
		if path == "" {
			path = filepath.ToSlash(entry.Path)
		}

		infos[i] = EntryInfo{
			ID:        entry.ID.String(),
			Name:      entry.Name,
			Path:      path,
			Folder:    strings.Join(entry.Folder, "/"),
			Ext:       filepath.Ext(path),
			Origin:    string(entry.Origin),
			Size:      entry.Size,
			SizeHuman: types.FormatSize(entry.Size),
			ModTime:   entry.ModTime,
		}
	}
	return infos
}

// BuildResult assembles a Result from the listed entries. total is the
// size of the library before filtering; warnings are load-time messages
// carried through to the formatters.
func BuildResult(entries []library.Entry, total int, source, manifestPath string, warnings []string) *Result {
	var totalSize int64
	for _, entry := range entries {
		totalSize += entry.Size
	}

	return &Result{
		Entries: FromEntries(entries),
		Stats: ListStats{
			EntriesTotal:  total,
			EntriesListed: len(entries),
			TotalSize:     totalSize,
		},
		Source:       source,
		ManifestPath: manifestPath,
		TotalEntries: total,
		Warnings:     warnings,
	}
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
