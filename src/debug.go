package rsfec

/*-------------------------------------------------------------
 *
 * Purpose:	Debug level plumbing and assertions.
 *
 *		0	Only errors.
 *		1	Decode summaries (corrections applied).
 *		2	Stage by stage decode tracing.
 *		3	Hex dumps of blocks going in and out.
 *
 *--------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var g_debug_level int

var rs_log = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rsfec"})

// SetDebug controls the amount of informational / debug output.
// Levels 1 and up enable debug records on the package logger.
func SetDebug(level int) {
	g_debug_level = level
	if level > 0 {
		rs_log.SetLevel(log.DebugLevel)
	} else {
		rs_log.SetLevel(log.InfoLevel)
	}
}

func rs_debug_level() int {
	return g_debug_level
}

// rs_assert panics on precondition violations.  These indicate caller
// bugs (limits like data+ecc <= 255), never recoverable states.
func rs_assert(cond bool) {
	if !cond {
		panic("rsfec: precondition violated")
	}
}

// rs_hex_dump formats a block 16 bytes per line with offsets and an
// ASCII gutter, for debug level 3 tracing.
func rs_hex_dump(p []byte) string {
	var out string
	var offset = 0

	for len(p) > 0 {
		var n = min(len(p), 16)

		out += fmt.Sprintf("  %03x: ", offset)
		for i := 0; i < n; i++ {
			out += fmt.Sprintf(" %02x", p[i])
		}
		for i := n; i < 16; i++ {
			out += "   "
		}
		out += "  "
		for i := 0; i < n; i++ {
			if p[i] >= 0x20 && p[i] <= 0x7E {
				out += string(rune(p[i]))
			} else {
				out += "."
			}
		}
		out += "\n"
		p = p[n:]
		offset += n
	}
	return out
}
