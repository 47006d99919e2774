package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestFilesystemError_Error(t *testing.T) {
	tests := []struct {
		name string
		op   string
		path string
		err  error
		want string
	}{
		{
			name: "read failure",
			op:   "scan",
			path: "assets/midi",
			err:  fs.ErrPermission,
			want: "scan assets/midi: permission denied",
		},
		{
			name: "write failure",
			op:   "write manifest",
			path: "assets/midi_manifest.json",
			err:  errors.New("disk full"),
			want: "write manifest assets/midi_manifest.json: disk full",
		},
		{
			name: "missing root",
			op:   "scan",
			path: "/no/such/dir",
			err:  fs.ErrNotExist,
			want: "scan /no/such/dir: file does not exist",
		},
		{
			name: "root is a file",
			op:   "scan",
			path: "assets/midi",
			err:  ErrNotDirectory,
			want: "scan assets/midi: not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFilesystemError(tt.op, tt.path, tt.err)
			if got := e.Error(); got != tt.want {
				t.Errorf("FilesystemError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilesystemError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	e := NewFilesystemError("read manifest", "assets/midi_manifest.json", cause)

	if !errors.Is(e, fs.ErrNotExist) {
		t.Errorf("errors.Is(e, fs.ErrNotExist) = false, want true")
	}

	wrapped := fmt.Errorf("generate: %w", e)
	var fsErr *FilesystemError
	if !errors.As(wrapped, &fsErr) {
		t.Fatalf("errors.As(wrapped, *FilesystemError) = false, want true")
	}
	if fsErr.Op != "read manifest" {
		t.Errorf("unwrapped Op = %q, want %q", fsErr.Op, "read manifest")
	}
	if fsErr.Path != "assets/midi_manifest.json" {
		t.Errorf("unwrapped Path = %q, want %q", fsErr.Path, "assets/midi_manifest.json")
	}
}

func TestScanResult_Matched(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  int
	}{
		{name: "empty", paths: nil, want: 0},
		{name: "single", paths: []string{"song.mid"}, want: 1},
		{name: "nested", paths: []string{"a.mid", "x/song2.midi", "x/y/z/song.mid"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ScanResult{Paths: tt.paths}
			if got := r.Matched(); got != tt.want {
				t.Errorf("ScanResult.Matched() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "bytes", bytes: 500, want: "500 B"},
		{name: "kilobytes", bytes: 1024, want: "1.0 KiB"},
		{name: "megabytes", bytes: 1024 * 1024, want: "1.0 MiB"},
		{name: "mixed size", bytes: 1536 * 1024, want: "1.5 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSize(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
