// Package security provides input validation for files brandtinct reads.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Size limits for user supplied files.
const (
	MaxImageBytes = 64 << 20
	MaxDNABytes   = 1 << 20
)

// ValidateFilePath checks that a relative file name stays inside baseDir
// once joined to it.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if strings.Contains(filePath, "..") {
		return fmt.Errorf("file path contains directory traversal (..) - not allowed")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute file path not allowed: %s", filePath)
	}

	cleanFinal := filepath.Clean(filepath.Join(baseDir, filePath))
	cleanBase := filepath.Clean(baseDir)
	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) && cleanFinal != cleanBase {
		return fmt.Errorf("file path would escape base directory")
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails once more than the allowed
// number of bytes has been read.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining < 0 {
		return 0, fmt.Errorf("size limit exceeded")
	}
	// Read one byte past the limit so an exact-size input still sees EOF.
	if int64(len(p)) > l.Remaining+1 {
		p = p[:l.Remaining+1]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	if l.Remaining < 0 {
		return n, fmt.Errorf("size limit exceeded")
	}
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
