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
	"fmt"
	"io"
	"strings"

	crand "crypto/rand"
	mrand "math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bemasher/crcpoly/crc"
	"github.com/bemasher/crcpoly/gf2"
)

const (
	// Width of the register rendering, one column per degree 32 through 0.
	traceWidth = 32

	separator = "---------------------------------"
)

// traceWriter keeps the first write error.
type traceWriter struct {
	w   io.Writer
	err error
}

func (tw *traceWriter) printf(format string, a ...interface{}) {
	if tw.err == nil {
		_, tw.err = fmt.Fprintf(tw.w, format, a...)
	}
}

// WriteTrace prints each step of the polynomial division of data by the
// generator of c, then the reference and table driven results.
func WriteTrace(w io.Writer, c crc.CRC, name string, data []byte) error {
	tw := &traceWriter{w: w}

	gen := crc.Generator(c.Poly)
	tw.printf("%s: G = %s [%s]\n\n", name, gen.Format(traceWidth), gen)

	zero := gf2.Zero().Format(traceWidth)
	ref := crc.Reference(c.Init, c.Poly, data, func(s gf2.Step) {
		if s.Index&7 == 0 {
			tw.printf("byte %d = 0x%02X\n", s.Index>>3, data[s.Index>>3])
		}

		tw.printf("%s - [%s] bit %d\n", s.Shifted.Format(traceWidth), s.Shifted, s.Bit)
		if s.Reduced {
			tw.printf("%s [%s]\n", gen.Format(traceWidth), gen)
		} else {
			tw.printf("%s\n", zero)
		}
		tw.printf("%s\n%s [%s]\n\n", separator, s.Remainder.Format(traceWidth), s.Remainder)
	})

	sliced := crc.Update(c.Init, c.Table(), data)
	tw.printf("%s: reference 0x%08X sliced 0x%08X\n", name, ref, sliced)

	if tw.err != nil {
		return errors.Wrap(tw.err, "write trace")
	}
	if ref != sliced {
		return errors.Errorf("%s: reference 0x%08X disagrees with sliced 0x%08X", name, ref, sliced)
	}

	return nil
}

// SelfCheck compares the table driven CRC against the polynomial reference
// on trials random buffers of up to maxLen bytes.
func (cfg Config) SelfCheck(ctx context.Context, trials, maxLen int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for trial := 0; trial < trials; trial++ {
		buf := make([]byte, mrand.Intn(maxLen+1))
		if _, err := crand.Read(buf); err != nil {
			return errors.Wrap(err, "random buffer")
		}
		initial := mrand.Uint32()

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ref := crc.ReferenceUpdate(initial, cfg.CRC.Poly, buf)
			sliced := crc.Update(initial, cfg.CRC.Table(), buf)
			if ref != sliced {
				return errors.Errorf("length %d init 0x%08X: reference 0x%08X disagrees with sliced 0x%08X",
					len(buf), initial, ref, sliced,
				)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	cfg.Log.WithField("trials", trials).WithField("generator", strings.ToLower(cfg.CRC.Name)).Info("Self check passed")
	return nil
}
