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
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

func run(ctx context.Context, cfg Config) error {
	switch {
	case *dumpTable:
		DumpTable(cfg.Out, cfg.CRC)
		return nil
	case *check > 0:
		return cfg.SelfCheck(ctx, *check, *checkLength)
	}

	switch *source {
	case "file":
		results, err := cfg.ChecksumFiles(ctx, flag.Args())
		if err != nil {
			return err
		}
		return cfg.Encode(results)
	case "rtltcp":
		return rcvr.Run(ctx, cfg, int(blockSize), *blocks)
	}

	return errors.Errorf("invalid source: %q", *source)
}

func main() {
	rcvr.RegisterFlags()
	RegisterFlags()
	EnvOverride()
	flag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	cfg, err := HandleFlags()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.LogState()

	// Cancel on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		cfg.Log.Fatal(err)
	}
}
