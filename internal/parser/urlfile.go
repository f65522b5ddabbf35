package parser

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseURLFile returns the first non-empty line of a .url file, trimmed.
// A file with only whitespace yields an empty string.
func ParseURLFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open url file %s", path)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			return line, nil
		}
	}
	if err := s.Err(); err != nil {
		return "", errors.Wrapf(err, "failed to read url file %s", path)
	}
	return "", nil
}
