/*
CRCPOLY computes CRC-32 checksums two ways: with a slicing-by-8 lookup table
and by explicit polynomial division over GF(2). The two always agree, the
polynomial form exists to show every reduction step.

Usage:

	crcpoly [flags] [file ...]

With no files, standard input is read. Results are written to stdout, log
messages to stderr.

Command-line Flags:

	-poly=ieee

Sets the generator polynomial. Either a registered name (castagnoli, ieee,
koopman) or the normal form value with the x^32 term implied, ex. 0x04C11DB7.

	-init=0

Sets the initial CRC. This is the CRC of any data preceding the input, so
checksumming a file in pieces gives the same result as checksumming it whole.

	-format=plain

Sets the output format: plain, csv, json, xml or table. Plain text is
formatted using the following format string:

	{Source:%s Generator:%s Size:%s CRC:0x%08X}

For json and xml output each line is an element, there is no root node. CSV
output starts with a header row. Table output is rendered once all inputs
are done.

	-trace=0

Prints the polynomial division of the first n bytes of each input, one step
per message bit:

	<register after shift> - [<terms>] bit <b>
	<generator or zero>
	---------------------------------
	<remainder> [<terms>]

The first line is the register after shifting the bit in, the second is the
generator when it is subtracted (zero otherwise) and the last is the
remainder. Traced inputs are processed one at a time.

	-dumptable=false

Prints the 8x256 slicing-by-8 table for the generator and exits.

	-check=0

Compares the table driven and polynomial results on n random buffers of up to
-checklength bytes and exits non-zero on any disagreement.

	-source=file

Sets the input source. With rtltcp, raw sample blocks are read from an
rtl_tcp server (see -server and the other rtltcp specific flags) and the CRC
of each block is reported:

	-blocksize=16384

Sets the block size in bytes, SI suffixes are accepted, ex. 16k.

	-blocks=1

Sets the number of blocks to read, 0 for infinite.

Environment:

Every flag may also be set with an environment variable named CRCPOLY_
followed by the upper case flag name, ex. CRCPOLY_POLY=castagnoli. Flags given
on the command line take precedence.
*/
package main
