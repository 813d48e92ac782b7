package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxTemplateSize caps templates read from stdin or disk.
const maxTemplateSize = 4 << 20

var errTooLarge = errors.New("input size limit exceeded")

// limitedReader fails once more than remaining bytes have been read, where
// io.LimitReader would silently truncate.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, errTooLarge
	}
	// Read one byte past the limit to tell "exactly at" from "over".
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, errTooLarge
	}
	return n, err
}

// readAllLimited reads r up to limit bytes.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(&limitedReader{r: r, remaining: limit})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// readFileLimited reads the file at path up to limit bytes.
func readFileLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - user-specified template, intended to be read
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := readAllLimited(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// writeFile writes data to path, creating missing parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - output directories are user-visible
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - rendered themes are not secret
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
