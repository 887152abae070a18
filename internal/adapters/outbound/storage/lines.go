package storage

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// ReadRelevantLines yields the lines of r that hold records: blank lines
// and lines starting with '#' are skipped. Lines have no length limit.
// Reading stops at the first error, which is yielded with an empty line.
func ReadRelevantLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !isSkipped(line) && !yield(line, nil) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

func isSkipped(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}
