package parser

import (
	"bufio"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseSTRM reads a .strm file and extracts the YouTube video_id query parameter.
func ParseSTRM(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open strm %s", path)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrapf(err, "failed to read strm %s", path)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	// plugin:// URLs are not always parseable; only the query matters.
	rawQ := line
	if i := strings.IndexByte(line, '?'); i >= 0 {
		rawQ = line[i+1:]
	}
	values, _ := url.ParseQuery(rawQ)
	return values.Get("video_id"), nil
}
