package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLine is the longest accepted input line, terminator included.
// It comfortably holds the longest literal, a 64-bit value in octal with
// sign and prefix.
const DefaultMaxLine = 64

// ErrLineTooLong is returned for lines longer than the reader's limit,
// together with the first limit bytes of the line. The rest is discarded.
var ErrLineTooLong = errors.New("line too long")

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_linesource_test.go github.com/akhildatla/rax/pkg/repl LineSource

// LineSource supplies command lines to a session.
type LineSource interface {
	// ReadLine returns the next line including its "\n", or the final
	// unterminated line of the input. It returns io.EOF once input is
	// exhausted.
	ReadLine() (string, error)
}

// LineReader is a LineSource over an io.Reader.
type LineReader struct {
	r     *bufio.Reader
	limit int
}

// NewLineReader creates a reader that rejects lines longer than limit
// bytes. A limit of zero or less selects DefaultMaxLine.
func NewLineReader(r io.Reader, limit int) *LineReader {
	if limit <= 0 {
		limit = DefaultMaxLine
	}
	return &LineReader{r: bufio.NewReader(r), limit: limit}
}

// ReadLine implements LineSource.
func (lr *LineReader) ReadLine() (string, error) {
	var (
		line  []byte
		total int
	)
	for {
		chunk, err := lr.r.ReadSlice('\n')
		total += len(chunk)
		if room := lr.limit - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		// An unterminated last line is still a line; EOF surfaces on the next call.
		if err != nil && (!errors.Is(err, io.EOF) || total == 0) {
			return "", err
		}
		break
	}
	if total > lr.limit {
		return string(line), fmt.Errorf("%w: %d bytes", ErrLineTooLong, total)
	}
	return string(line), nil
}
