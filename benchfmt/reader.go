// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader reads the samples of a single result file.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	err      error // current parse or I/O error
	fileName string
	line     int
	value    int
}

// A ParseError reports a line of a result file that is not an
// integer.
type ParseError struct {
	FileName string
	Line     int
	Msg      string

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errNoInput = errors.New("Reader has no input; use NewReader or Reset")

// NewReader constructs a reader to parse result samples from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.err = nil
	r.line = 0
	r.value = 0
}

func (r *Reader) newParseError(msg string, err error) *ParseError {
	return &ParseError{r.fileName, r.line, msg, err}
}

// Scan advances the reader to the next sample and reports whether a
// sample was read. The caller should use the Value method to get the
// sample. If Scan reaches EOF, finds a malformed line, or an I/O error
// occurs, it returns false, in which case the caller should use the
// Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil || r.s == nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		return false
	}
	r.line++

	// Tolerate CRLF line endings and stray indentation.
	text := strings.TrimSpace(r.s.Text())
	if text == "" {
		r.err = r.newParseError("empty line, want integer", nil)
		return false
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		r.err = r.newParseError(fmt.Sprintf("cannot parse %q as integer", text), err)
		return false
	}
	r.value = v
	return true
}

// Value returns the sample that was just read by Scan.
func (r *Reader) Value() int {
	return r.value
}

// Line returns the line number of the sample that was just read by
// Scan. Lines are numbered from 1.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first error that stopped Scan, if any. If Scan
// stopped because it reached EOF, Err returns nil.
func (r *Reader) Err() error {
	if r.s == nil {
		return errNoInput
	}
	return r.err
}

// ReadSamples reads every sample from r. On error it returns no
// samples.
func ReadSamples(r io.Reader, fileName string) ([]int, error) {
	var samples []int
	rd := NewReader(r, fileName)
	for rd.Scan() {
		samples = append(samples, rd.Value())
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
