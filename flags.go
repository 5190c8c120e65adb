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
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bemasher/rtltcp/si"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/crcpoly/crc"
)

const envPrefix = "CRCPOLY_"

var poly = flag.String("poly", "ieee", "generator name ("+strings.Join(crc.Names(), ", ")+") or normal form value, ex. 0x04C11DB7")
var initial = flag.String("init", "0", "initial crc, the crc of any preceding data")

var format = flag.String("format", "plain", "output format: plain, csv, json, xml or table")

var source = flag.String("source", "file", "input source: file or rtltcp")
var blockSize = si.ScientificNotation(16384)
var blocks = flag.Int("blocks", 1, "number of rtl_tcp sample blocks to checksum, 0 for infinite")

var trace = flag.Int("trace", 0, "print the polynomial division of the first n bytes of each input")
var dumpTable = flag.Bool("dumptable", false, "print the slicing-by-8 table for the generator and exit")
var check = flag.Int("check", 0, "compare table and polynomial results on n random buffers and exit")
var checkLength = flag.Int("checklength", 1024, "maximum length of -check buffers")

var quiet = flag.Bool("quiet", false, "only log warnings and errors")
var verbose = flag.Bool("verbose", false, "log debug information")

var version = flag.Bool("version", false, "display build date and commit hash")

func RegisterFlags() {
	flag.Var(&blockSize, "blocksize", "rtl_tcp sample block size in bytes, ex. 16k")

	crcpolyFlags := map[string]bool{
		"poly":        true,
		"init":        true,
		"format":      true,
		"source":      true,
		"blocksize":   true,
		"blocks":      true,
		"trace":       true,
		"dumptable":   true,
		"check":       true,
		"checklength": true,
		"quiet":       true,
		"verbose":     true,
		"version":     true,
	}

	printDefaults := func(validFlags map[string]bool, inclusion bool) {
		flag.CommandLine.VisitAll(func(f *flag.Flag) {
			if validFlags[f.Name] != inclusion {
				return
			}

			format := "  -%s=%s: %s\n"
			fmt.Fprintf(os.Stderr, format, f.Name, f.Value, f.Usage)
		})
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags] [file ...]\n", os.Args[0])
		printDefaults(crcpolyFlags, true)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "rtltcp specific:")
		printDefaults(crcpolyFlags, false)
	}
}

// EnvOverride sets any flag with a matching CRCPOLY_<FLAG> environment
// variable. Flags given on the command line are parsed afterwards and win.
func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := envPrefix + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue != "" {
			if err := flag.Set(f.Name, flagValue); err != nil {
				logrus.Warnf(
					"Environment variable %q failed to override flag %q with value %q: %q",
					envName, f.Name, flagValue, err,
				)
			} else {
				logrus.Infof("Environment variable %q overrides flag %q with %q", envName, f.Name, flagValue)
			}
		}
	})
}

func HandleFlags() (Config, error) {
	return NewConfig(Options{
		Poly:    *poly,
		Init:    *initial,
		Format:  *format,
		Trace:   *trace,
		Quiet:   *quiet,
		Verbose: *verbose,
	}, os.Stdout, os.Stderr)
}
