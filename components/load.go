package components

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Load reads a dataset file, see Parse.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one record per line, key and value separated by a tab or the
// first comma. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([]Record, error) {
	records := []Record{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		sep := "\t"
		if !strings.Contains(text, sep) {
			sep = ","
		}

		key, val, ok := strings.Cut(text, sep)
		if !ok {
			return nil, fmt.Errorf("line %d: missing separator", line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", line)
		}
		records = append(records, Record{Key: key, Value: strings.TrimSpace(val)})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func Records(records []Record) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, r := range records {
			if !yield(r.Key, r.Value) {
				return
			}
		}
	}
}
