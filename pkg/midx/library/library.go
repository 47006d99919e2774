// Package library resolves a MIDI manifest into identified entries with
// filesystem metadata. It is the consumer-side view of the manifest:
// entries carry stable in-process IDs and display names, can be looked up
// by ID, extended with files from outside the asset tree, and arranged
// into a folder tree for display.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pianoroll/midx/pkg/midx/logging"
	"github.com/pianoroll/midx/pkg/midx/manifest"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// Origin identifies where a library entry came from.
type Origin string

const (
	// OriginAsset marks entries resolved from the manifest.
	OriginAsset Origin = "asset"

	// OriginLocal marks entries added from the local filesystem.
	OriginLocal Origin = "local"
)

// Entry represents one MIDI file known to the library.
type Entry struct {
	// ID uniquely identifies the entry for this process lifetime.
	ID uuid.UUID

	// Name is the file stem, used for display.
	Name string

	// RelPath is the canonical manifest form of the path (slash
	// separators, relative to the asset root). Empty for local entries.
	RelPath string

	// Path is the normalized filesystem path.
	Path string

	// Origin records whether the entry came from the manifest or was
	// added locally.
	Origin Origin

	// Folder holds the parent segments of RelPath.
	// Nil for entries at the asset root and for local entries.
	Folder []string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time of the file.
	ModTime time.Time
}

// Library holds resolved entries with ID and path indexes.
// It is not safe for concurrent use.
type Library struct {
	entries     []Entry
	indexByID   map[uuid.UUID]int
	indexByPath map[string]uuid.UUID
	warnings    []string
}

// New returns an empty library.
func New() *Library {
	return &Library{
		indexByID:   make(map[uuid.UUID]int),
		indexByPath: make(map[string]uuid.UUID),
	}
}

// Load resolves the manifest at manifestPath against root.
// A missing manifest yields an empty library with a warning; a malformed
// manifest is an error. Manifest entries whose file no longer exists are
// skipped with a warning rather than failing the load. Both degradations
// are recorded on the library (see Warnings) for callers to surface.
func Load(root, manifestPath string) (*Library, error) {
	log := logging.Get("library")
	lib := New()

	items, err := manifest.Read(manifestPath)
	if err != nil {
		var fsErr *types.FilesystemError
		if errors.As(err, &fsErr) && errors.Is(fsErr.Err, fs.ErrNotExist) {
			log.Warn("manifest not found, starting with empty asset library",
				"path", manifestPath)
			lib.warnings = append(lib.warnings,
				fmt.Sprintf("manifest not found: %s", manifestPath))
			return lib, nil
		}
		return nil, err
	}

	for _, item := range items {
		candidate := filepath.Join(root, filepath.FromSlash(item))
		info, statErr := os.Stat(candidate)
		if statErr != nil {
			log.Warn("skipping missing asset entry", "path", candidate)
			lib.warnings = append(lib.warnings,
				fmt.Sprintf("skipping missing asset entry: %s", item))
			continue
		}
		lib.insert(candidate, item, OriginAsset, folderSegments(item), info)
	}

	log.Debug("library loaded", "entries", lib.Len(), "manifest", manifestPath)
	return lib, nil
}

// Entries returns all entries in insertion order.
func (l *Library) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *Library) Len() int {
	return len(l.entries)
}

// Warnings returns messages for problems tolerated during Load: a missing
// manifest file and manifest entries whose file is gone.
func (l *Library) Warnings() []string {
	return l.warnings
}

// Get returns the entry with the given ID.
func (l *Library) Get(id uuid.UUID) (*Entry, bool) {
	idx, ok := l.indexByID[id]
	if !ok {
		return nil, false
	}
	return &l.entries[idx], true
}

// AddLocalFile registers a file from outside the asset tree.
// Paths are normalized (symlinks resolved when possible) and de-duplicated:
// adding the same file twice returns the existing entry.
func (l *Library) AddLocalFile(path string) (*Entry, error) {
	normalized := normalizePath(path)

	if id, ok := l.indexByPath[normalized]; ok {
		if idx, ok := l.indexByID[id]; ok {
			return &l.entries[idx], nil
		}
	}

	info, err := os.Stat(normalized)
	if err != nil {
		return nil, types.NewFilesystemError("add local file", path, err)
	}
	if info.IsDir() {
		return nil, types.NewFilesystemError("add local file", path, errors.New("is a directory"))
	}

	return l.insert(normalized, "", OriginLocal, nil, info), nil
}

// insert appends an entry and updates both indexes.
func (l *Library) insert(path, relPath string, origin Origin, folder []string, info fs.FileInfo) *Entry {
	path = normalizePath(path)
	id := uuid.New()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = filepath.Base(path)
	}

	entry := Entry{
		ID:      id,
		Name:    name,
		RelPath: relPath,
		Path:    path,
		Origin:  origin,
		Folder:  folder,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	l.indexByID[id] = len(l.entries)
	l.indexByPath[path] = id
	l.entries = append(l.entries, entry)

	return &l.entries[len(l.entries)-1]
}

// folderSegments returns the parent segments of a slash-separated manifest
// entry, or nil when the entry sits at the asset root.
func folderSegments(relPath string) []string {
	parts := make([]string, 0, 4)
	for _, s := range strings.Split(relPath, "/") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) <= 1 {
		return nil
	}
	return parts[:len(parts)-1]
}

// normalizePath resolves symlinks when possible and falls back to a
// cleaned absolute path.
func normalizePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
