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

	"github.com/bemasher/rtltcp"
	"github.com/pkg/errors"
)

var rcvr Receiver

// Receiver checksums raw sample blocks streamed from an rtl_tcp server.
type Receiver struct {
	rtltcp.SDR
}

// Run connects to rtl_tcp, applies the tuner flags and checksums blocks
// sample blocks of blockSize bytes, 0 blocks runs until ctx is done or the
// server closes the connection.
func (rcvr *Receiver) Run(ctx context.Context, cfg Config, blockSize, blocks int) error {
	if blockSize <= 0 {
		return errors.Errorf("invalid block size: %d", blockSize)
	}

	// Connect to rtl_tcp server.
	if err := rcvr.Connect(nil); err != nil {
		return errors.Wrap(err, "connect")
	}
	defer rcvr.Close()

	if err := rcvr.HandleFlags(); err != nil {
		return errors.Wrap(err, "rtl_tcp flags")
	}

	// Tell the user about the dongle reported by rtl_tcp.
	cfg.Log.WithField("server", rcvr.Flags.ServerAddr).Info("Connected")
	cfg.Log.WithField("tuner", rcvr.SDR.Info.Tuner).WithField("gaincount", rcvr.SDR.Info.GainCount).Info("Dongle")

	return cfg.checksumBlocks(ctx, rcvr, rcvr.Flags.ServerAddr, blockSize, blocks)
}

// checksumBlocks reads fixed size blocks from r and encodes the CRC of each.
func (cfg Config) checksumBlocks(ctx context.Context, r io.Reader, name string, blockSize, blocks int) error {
	block := make([]byte, blockSize)
	defer func() {
		if f, ok := cfg.Encoder.(Flusher); ok {
			f.Flush()
		}
	}()

	for idx := 0; blocks == 0 || idx < blocks; idx++ {
		// Exit on interrupt, otherwise read.
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		_, err := io.ReadFull(r, block)

		// If we get an EOF, exit.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			cfg.Log.WithError(err).Info("encountered eof")
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read block %d", idx)
		}

		result := NewResult(fmt.Sprintf("%s#%d", name, idx), cfg.CRC, int64(len(block)), cfg.CRC.Checksum(block))
		if err := cfg.Encoder.Encode(result); err != nil {
			return errors.Wrap(err, "encode result")
		}
	}

	return nil
}
