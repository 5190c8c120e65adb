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
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/crcpoly/crc"
	"github.com/bemasher/crcpoly/csv"
)

// Options holds the command line values Config is built from.
type Options struct {
	Poly    string
	Init    string
	Format  string
	Trace   int
	Quiet   bool
	Verbose bool
}

type Config struct {
	CRC     crc.CRC
	Format  string
	Encoder Encoder
	Trace   int

	Out io.Writer
	Log *logrus.Logger
}

// NewConfig resolves the generator, initial value and output format. Results
// are written to out and log messages to logOut.
func NewConfig(opts Options, out, logOut io.Writer) (cfg Config, err error) {
	cfg.Out = out
	cfg.Trace = opts.Trace

	cfg.Log = logrus.New()
	cfg.Log.Out = logOut
	switch {
	case opts.Quiet:
		cfg.Log.SetLevel(logrus.WarnLevel)
	case opts.Verbose:
		cfg.Log.SetLevel(logrus.DebugLevel)
	}

	poly, err := crc.ParseGenerator(opts.Poly)
	if err != nil {
		return cfg, errors.Wrap(err, "parse -poly")
	}

	initial, err := strconv.ParseUint(opts.Init, 0, 32)
	if err != nil {
		return cfg, errors.Wrap(err, "parse -init")
	}

	name := strings.ToLower(opts.Poly)
	if _, err := crc.Lookup(name); err != nil {
		name = "custom"
	}
	cfg.CRC = crc.NewCRC(name, poly, uint32(initial))

	cfg.Format = strings.ToLower(opts.Format)
	cfg.Encoder, err = NewEncoder(cfg.Format, out)
	if err != nil {
		return cfg, err
	}

	if cfg.Trace < 0 {
		return cfg, errors.Errorf("invalid trace length: %d", cfg.Trace)
	}

	return cfg, nil
}

// NewEncoder returns the encoder for the named output format.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return xmlEncoder{xml.NewEncoder(w), w}, nil
	case "table":
		return NewTableEncoder(w), nil
	}

	return nil, errors.Errorf("invalid format: %q", format)
}

// LogState writes the resolved configuration to the log.
func (cfg Config) LogState() {
	cfg.Log.WithField("crc", cfg.CRC).Info("Generator")
	cfg.Log.WithField("format", cfg.Format).Debug("Output")
	cfg.Log.WithField("reflected", fmt.Sprintf("0x%08X", crc.Reflect32(cfg.CRC.Poly))).Debug("Table")
	if cfg.Trace > 0 {
		cfg.Log.WithField("bytes", cfg.Trace).Debug("Trace")
	}
}
