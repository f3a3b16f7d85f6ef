package main

/*-------------------------------------------------------------
 *
 * Name:	rsenc
 *
 * Purpose:	Append Reed-Solomon parity to a single block of data.
 *
 *		Reads up to 255 - ecc bytes from a file or stdin and
 *		writes the codeword (data followed by parity) to a file
 *		or stdout.  Chunking longer payloads into blocks is the
 *		caller's job; this tool handles exactly one block.
 *
 *		Run rsdec as the second half of a loopback test.
 *
 *--------------------------------------------------------------*/

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	rsfec "github.com/doismellburning/rsfec/src"
)

func main() {
	var ecc_len = pflag.IntP("ecc", "e", 8, "number of parity bytes (1-254)")
	var in_name = pflag.StringP("in", "i", "-", "input file, - for stdin")
	var out_name = pflag.StringP("out", "o", "-", "output file, - for stdout")
	var hex_out = pflag.BoolP("hex", "x", false, "write the codeword as hex")
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

	// One byte past the limit so oversized input is detected rather
	// than silently truncated.
	var data = make([]byte, 255-*ecc_len+1)
	var n, read_err = io.ReadFull(in, data)
	if read_err != io.EOF && read_err != io.ErrUnexpectedEOF {
		if read_err == nil {
			log.Fatalf("input exceeds %d bytes; one RS block only", 255-*ecc_len)
		}
		log.Fatal(read_err)
	}
	data = data[:n]

	var encoded = rsfec.NewEncoder(*ecc_len).Encode(data)

	if *debug >= 1 {
		log.Debugf("encoded %d data + %d parity bytes", len(encoded.Data()), len(encoded.ECC()))
	}

	var out = os.Stdout
	if *out_name != "-" {
		var err error
		out, err = os.Create(*out_name)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	if *hex_out {
		fmt.Fprintln(out, hex.EncodeToString(encoded.Bytes()))
	} else {
		if _, err := out.Write(encoded.Bytes()); err != nil {
			log.Fatal(err)
		}
	}
}
