package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pianoroll/midx/pkg/midx/library"
	"github.com/pianoroll/midx/pkg/midx/types"
)

// TreeFormatter formats output as an indented folder tree.
// Folders carry recursive entry counts and sizes; entries show their size.
// No colors or styling are applied.
type TreeFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TreeFormatter) Format(w *bytes.Buffer, r *Result) error {
	entries := make([]library.Entry, len(r.Entries))
	for i, info := range r.Entries {
		entries[i] = toEntry(info)
	}

	root := library.BuildTree(entries)

	for _, node := range root.Flatten() {
		indent := strings.Repeat("  ", node.Depth())

		if node.IsDir {
			name := node.Name
			if node.ID != library.RootNodeID {
				name += "/"
			}
			fmt.Fprintf(w, "%s%s (%d %s, %s)\n",
				indent, name, node.EntryCount, entryNoun(node.EntryCount),
				types.FormatSize(node.TotalSize))
			continue
		}

		fmt.Fprintf(w, "%s%s (%s)\n", indent, node.Name, types.FormatSize(node.Size))
	}

	return nil
}

// toEntry reconstructs a library entry from its output representation.
func toEntry(info EntryInfo) library.Entry {
	id, _ := uuid.Parse(info.ID)

	var folder []string
	if info.Folder != "" {
		folder = strings.Split(info.Folder, "/")
	}

	relPath := ""
	if info.Origin != string(library.OriginLocal) {
		relPath = info.Path
	}

	return library.Entry{
		ID:      id,
		Name:    info.Name,
		RelPath: relPath,
		Path:    info.Path,
		Origin:  library.Origin(info.Origin),
		Folder:  folder,
		Size:    info.Size,
		ModTime: info.ModTime,
	}
}

// entryNoun returns the singular or plural noun for a count.
func entryNoun(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

func init() {
	Register("tree", func() Formatter {
		return &TreeFormatter{}
	})
}

// Ensure TreeFormatter implements Formatter.
var _ Formatter = (*TreeFormatter)(nil)
