// show-scalbnf prints the fields of x and of Scalbnf(x, n), mostly for
// debugging rounding at the subnormal boundary.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/avdva/softfloat"
	mu "github.com/avdva/softfloat/internal/mathutil"
)

const help = `Usage: show-scalbnf [flags] x n

x is a decimal float or a raw 32-bit pattern written as 0x7f800000.
n is a signed decimal shift.
`

var hexFlag = flag.Bool("hex", false, "print floats as hexadecimal floating-point literals")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		fail("Need exactly two arguments.")
	}
	x, err := parseFloat(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}
	n, err := parseShift(flag.Arg(1))
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	fmt.Fprintln(w, "\tvalue\tword\tsign\texp\tmant\t")
	show(w, "x", x, *hexFlag)
	show(w, "result", softfloat.Scalbnf(x, n), *hexFlag)
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseFloat(s string) (float32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		w, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parsing word %q: %w", s, err)
		}
		return mu.FromWord(uint32(w)), nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing float %q: %w", s, err)
	}
	return float32(f), nil
}

func parseShift(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing shift %q: %w", s, err)
	}
	return n, nil
}

func show(w io.Writer, name string, f float32, hex bool) {
	format := byte('g')
	if hex {
		format = 'x'
	}
	word := mu.Word(f)
	neg, exp, mant := mu.Split(word)
	sign := "+"
	if neg {
		sign = "-"
	}
	fmt.Fprintf(w, "%s\t%s\t0x%08x\t%s\t%d\t0x%06x\t\n",
		name, strconv.FormatFloat(float64(f), format, -1, 32), word, sign, exp, mant)
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
