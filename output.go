// CRCPOLY - Symbolic and table driven CRC-32 over GF(2).
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/bemasher/crcpoly/crc"
)

// JSON, XML and CSV all implement this interface so we can simplify
// output formatting.
type Encoder interface {
	Encode(interface{}) error
}

// Encoders buffering their output implement Flusher.
type Flusher interface {
	Flush() error
}

// Checksum marshals as eight lowercase hex digits.
type Checksum uint32

func (c Checksum) MarshalText() (text []byte, err error) {
	return []byte(fmt.Sprintf("%08x", uint32(c))), nil
}

func (c Checksum) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// A Result is the CRC of one input.
type Result struct {
	Source    string   `xml:",attr"`
	Generator string   `xml:",attr"`
	Size      int64    `xml:",attr"`
	CRC       Checksum `xml:",attr"`
}

func NewResult(source string, c crc.CRC, size int64, sum uint32) Result {
	return Result{source, c.Name, size, Checksum(sum)}
}

func (r Result) String() string {
	return fmt.Sprintf("{Source:%s Generator:%s Size:%s CRC:%s}",
		r.Source, r.Generator, humanize.Bytes(uint64(r.Size)), r.CRC,
	)
}

func (r Result) Header() []string {
	return []string{"source", "generator", "size", "crc"}
}

func (r Result) Record() []string {
	return []string{
		r.Source,
		r.Generator,
		strconv.FormatInt(r.Size, 10),
		fmt.Sprintf("%08x", uint32(r.CRC)),
	}
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, msg)
	return
}

// xml.Encoder doesn't separate elements, write one per line.
type xmlEncoder struct {
	enc *xml.Encoder
	w   io.Writer
}

func (xe xmlEncoder) Encode(msg interface{}) (err error) {
	if err = xe.enc.Encode(msg); err != nil {
		return
	}
	_, err = io.WriteString(xe.w, "\n")
	return
}

// TableEncoder collects results and renders them as a table on Flush.
type TableEncoder struct {
	table *tablewriter.Table
	rows  int
}

func NewTableEncoder(w io.Writer) *TableEncoder {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Result{}.Header())
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	return &TableEncoder{table: table}
}

func (te *TableEncoder) Encode(msg interface{}) error {
	r, ok := msg.(Result)
	if !ok {
		return errors.Errorf("table: unsupported type %T", msg)
	}

	row := r.Record()
	row[2] = humanize.Bytes(uint64(r.Size))
	te.table.Append(row)
	te.rows++

	return nil
}

func (te *TableEncoder) Flush() error {
	if te.rows > 0 {
		te.table.Render()
	}
	return nil
}

// DumpTable renders the slicing-by-8 table of c, one row per byte value.
func DumpTable(w io.Writer, c crc.CRC) {
	table := tablewriter.NewWriter(w)

	header := []string{"byte"}
	for k := 0; k < crc.Slices; k++ {
		header = append(header, "slice "+strconv.Itoa(k))
	}
	table.SetHeader(header)

	tbl := c.Table()
	for b := 0; b < 256; b++ {
		row := []string{fmt.Sprintf("0x%02X", b)}
		for k := 0; k < crc.Slices; k++ {
			row = append(row, fmt.Sprintf("%08X", tbl[k][b]))
		}
		table.Append(row)
	}

	table.Render()
}
