package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/json-iterator/go"

	"github.com/qiniu/convkit/endian"
	"github.com/qiniu/convkit/number"
	"github.com/qiniu/convkit/times"
)

const usage = `converter parses numbers and formats epoch dates and endian hex bytes

Usage:

  converter [flags]

The flags are:

  -n <string>        parse a decimal, float or 0x hex number
  -t <seconds>       format seconds since 1970-01-01 as MM-DD-YYYY
  -l <layout>        strftime layout used with -t instead of MM-DD-YYYY
  -x <int>           format an integer as hex bytes
  -e <endian>        byte order used with -x, big or little, default big
  -j                 print the result as json

Examples:

  converter -n -0xAD4
  converter -t 9876543210
  converter -x 954786 -e little

`

var (
	num    = flag.String("n", "", "number string to parse")
	epoch  = flag.Int64("t", -1, "seconds since the epoch")
	layout = flag.String("l", "", "strftime layout for -t")
	hexNum = flag.String("x", "", "integer to format as hex bytes")
	order  = flag.String("e", string(endian.DefaultOrder), "byte order, big or little")
	asJSON = flag.Bool("j", false, "print result as json")
)

func usageExit(rc int) {
	fmt.Print(usage + "\n")
	os.Exit(rc)
}

type result struct {
	Op     string      `json:"op"`
	Input  string      `json:"input"`
	Output interface{} `json:"output"`
}

func main() {
	flag.Usage = func() { usageExit(0) }
	flag.Parse()

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["n"] && !setFlags["t"] && !setFlags["x"] {
		usageExit(1)
	}
	if err := run(os.Stdout, setFlags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, setFlags map[string]bool) error {
	var results []result
	if setFlags["n"] {
		n, err := number.Parse(*num)
		if err != nil {
			return err
		}
		results = append(results, result{Op: "number", Input: *num, Output: n.Value()})
	}
	if setFlags["t"] {
		date, err := times.EpochToDateFormat(*epoch, *layout)
		if err != nil {
			return err
		}
		results = append(results, result{Op: "date", Input: fmt.Sprint(*epoch), Output: date})
	}
	if setFlags["x"] {
		n, err := number.Parse(*hexNum)
		if err != nil {
			return err
		}
		if n.Kind != number.Integer {
			return fmt.Errorf("%v is not an integer", *hexNum)
		}
		hex, err := endian.ToHex(n.Int, *order)
		if err != nil {
			return err
		}
		results = append(results, result{Op: "hex", Input: *hexNum, Output: hex})
	}
	return output(w, results)
}

func output(w io.Writer, results []result) error {
	if *asJSON {
		return jsoniter.NewEncoder(w).Encode(results)
	}
	for _, r := range results {
		if f, ok := r.Output.(float64); ok {
			fmt.Fprintln(w, number.FloatNumber(f).String())
			continue
		}
		fmt.Fprintln(w, r.Output)
	}
	return nil
}
