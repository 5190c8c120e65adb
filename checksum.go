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
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Stdin is the source name used for standard input.
const Stdin = "-"

// Checksum reads r to the end. The first cfg.Trace bytes are also traced
// through the polynomial reference to cfg.Out.
func (cfg Config) Checksum(name string, r io.Reader) (Result, error) {
	d := cfg.CRC.New()

	var size int64
	if cfg.Trace > 0 {
		head := make([]byte, cfg.Trace)
		n, err := io.ReadFull(r, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return Result{}, errors.Wrapf(err, "read %s", name)
		}
		head = head[:n]

		if err := WriteTrace(cfg.Out, cfg.CRC, name, head); err != nil {
			return Result{}, err
		}

		d.Write(head)
		size += int64(n)
	}

	n, err := io.Copy(d, r)
	if err != nil {
		return Result{}, errors.Wrapf(err, "read %s", name)
	}
	size += n

	return NewResult(name, cfg.CRC, size, d.Sum32()), nil
}

func (cfg Config) checksumFile(path string) (Result, error) {
	if path == Stdin {
		return cfg.Checksum(path, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "open")
	}
	defer f.Close()

	return cfg.Checksum(path, f)
}

// ChecksumFiles computes the CRC of each path in parallel, all sharing the
// one table. Results are returned in the order given. Traced inputs are
// processed one at a time so their output doesn't interleave.
func (cfg Config) ChecksumFiles(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Trace > 0 {
		g.SetLimit(1)
	} else {
		g.SetLimit(runtime.NumCPU())
	}

	results := make([]Result, len(paths))
	for idx, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := cfg.checksumFile(path)
			if err != nil {
				return err
			}
			results[idx] = r

			cfg.Log.WithField("source", path).WithField("crc", r.CRC).Debug("Checksum")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Encode writes each result with the configured encoder and flushes it.
func (cfg Config) Encode(results []Result) error {
	for _, r := range results {
		if err := cfg.Encoder.Encode(r); err != nil {
			return errors.Wrap(err, "encode result")
		}
	}

	if f, ok := cfg.Encoder.(Flusher); ok {
		return f.Flush()
	}

	return nil
}
