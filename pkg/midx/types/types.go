// Package types provides core data types for the midx manifest generator.
// It includes the filesystem error type shared by the scanner and manifest
// packages, scan statistics, and utility functions for formatting file sizes.
package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrNotDirectory indicates that the scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ErrMalformedManifest indicates that a manifest file could not be decoded.
var ErrMalformedManifest = errors.New("malformed manifest")

// FilesystemError represents a failed filesystem operation.
// It is returned for every read- and write-side failure so callers can
// report the operation, the path it touched, and the underlying cause.
type FilesystemError struct {
	// Op is the operation that failed, e.g. "scan" or "write manifest".
	Op string

	// Path is the file or directory path where the error occurred.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// NewFilesystemError creates a new FilesystemError.
func NewFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// ScanResult contains the aggregated results of a scan operation.
// It includes the matched file paths in sorted order and statistics
// about the traversal.
type ScanResult struct {
	// Paths contains the matched files as slash-separated paths relative
	// to the scan root, in traversal order.
	Paths []string `json:"paths"`

	// DirsScanned is the total number of directories traversed.
	DirsScanned int64 `json:"dirs_scanned"`

	// FilesScanned is the total number of files examined.
	FilesScanned int64 `json:"files_scanned"`

	// Elapsed is the total time taken to complete the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Matched returns the number of files that matched the scan criteria.
func (r *ScanResult) Matched() int {
	return len(r.Paths)
}

// FormatSize converts a size in bytes to a human-readable string.
// It uses binary (IEC) units (KiB, MiB, GiB) for consistency with
// common filesystem tools.
//
// Examples:
//   - FormatSize(0) returns "0 B"
//   - FormatSize(1024) returns "1.0 KiB"
//   - FormatSize(1536*1024) returns "1.5 MiB"
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
