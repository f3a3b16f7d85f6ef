package main

/*-------------------------------------------------------------
 *
 * Name:	rsdec
 *
 * Purpose:	Repair a single Reed-Solomon codeword and recover the
 *		original data.
 *
 *		Reads one codeword (as produced by rsenc) from a file
 *		or stdin, corrects unknown errors and the erasures named
 *		with --erase as long as 2*errors + erasures <= ecc, and
 *		writes the data region to a file or stdout.
 *
 * Exit:	0 on success, 1 if the block is unrecoverable.
 *
 *--------------------------------------------------------------*/

import (
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	rsfec "github.com/doismellburning/rsfec/src"
)

func main() {
	var ecc_len = pflag.IntP("ecc", "e", 8, "number of parity bytes (1-254)")
	var in_name = pflag.StringP("in", "i", "-", "input file, - for stdin")
	var out_name = pflag.StringP("out", "o", "-", "output file, - for stdout")
	var hex_in = pflag.BoolP("hex", "x", false, "input codeword is hex")
	var erasures = pflag.IntSliceP("erase", "E", nil, "known-bad positions, e.g. --erase 0,1,2")
	var debug = pflag.IntP("debug", "d", 0, "debug level (0-3)")
	pflag.Parse()

	rsfec.SetDebug(*debug)
	if *debug > 0 {
		log.SetLevel(log.DebugLevel)
	}

	if *ecc_len < 1 || *ecc_len > 254 {
		log.Fatalf("ecc must be in 1..254, got %d", *ecc_len)
	}

	var in = os.Stdin
	if *in_name != "-" {
		var err error
		in, err = os.Open(*in_name)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}

	var raw, read_err = io.ReadAll(in)
	if read_err != nil {
		log.Fatal(read_err)
	}

	var msg = raw
	if *hex_in {
		var err error
		msg, err = hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(msg) > 255 || len(msg) < *ecc_len {
		log.Fatalf("codeword must be %d..255 bytes, got %d", *ecc_len, len(msg))
	}
	for _, e := range *erasures {
		if e < 0 || e >= len(msg) {
			log.Fatalf("erasure position %d outside block of %d bytes", e, len(msg))
		}
	}

	var recovered, fixed, err = rsfec.NewDecoder(*ecc_len).CorrectErrCount(msg, *erasures)
	if err != nil {
		if errors.Is(err, rsfec.ErrTooManyErrors) {
			log.Error("block is unrecoverable")
			os.Exit(1)
		}
		log.Fatal(err)
	}

	if fixed > 0 {
		log.Infof("repaired %d positions", fixed)
	}

	var out = os.Stdout
	if *out_name != "-" {
		var create_err error
		out, create_err = os.Create(*out_name)
		if create_err != nil {
			log.Fatal(create_err)
		}
		defer out.Close()
	}

	if _, err := out.Write(recovered.Data()); err != nil {
		log.Fatal(err)
	}
}
