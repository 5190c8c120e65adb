// Package csv writes values implementing Recorder as CSV records.
package csv

import (
	"encoding/csv"
	"io"

	"golang.org/x/xerrors"
)

// Produces a list of fields making up a record.
type Recorder interface {
	Record() []string
}

// Headers are written once before the first record of a type implementing
// Header.
type Header interface {
	Header() []string
}

// An Encoder writes CSV records to an output stream.
type Encoder struct {
	w      *csv.Writer
	header bool
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode writes a CSV record representing v to the stream followed by a
// newline character. Value given must implement the Recorder interface.
func (enc *Encoder) Encode(v interface{}) (err error) {
	rec, ok := v.(Recorder)
	if !ok {
		return xerrors.Errorf("encode %T: not a csv.Recorder", v)
	}

	if h, ok := v.(Header); ok && !enc.header {
		if err := enc.w.Write(h.Header()); err != nil {
			return xerrors.Errorf("write header: %w", err)
		}
		enc.header = true
	}

	if err := enc.w.Write(rec.Record()); err != nil {
		return xerrors.Errorf("write record: %w", err)
	}
	enc.w.Flush()

	return enc.w.Error()
}
