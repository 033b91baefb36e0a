// Command fixed96 constructs a fixed96 decimal (or decodes a stream of them)
// and prints its predicates, renderings and BSV encoding.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	flag "github.com/spf13/pflag"

	"github.com/calebcase/fixed96/control"
	"github.com/calebcase/fixed96/decimal"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		high, med, low uint32
		prec           uint8
		hexStream      string
		showVersion    bool
		verbose        int
	)

	fs := flag.NewFlagSet("fixed96", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Uint32Var(&high, "high", 0, "high word (the top bit is the sign bit)")
	fs.Uint32Var(&med, "med", 0, "middle word")
	fs.Uint32Var(&low, "low", 0, "low word")
	fs.Uint8Var(&prec, "prec", decimal.MaxPrec, "significant magnitude bits (1-95)")
	fs.StringVar(&hexStream, "hex", "", "decode a hex encoded BSV stream of nullable decimals instead")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.CountVarP(&verbose, "verbose", "v", "increase verbosity")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: fixed96 [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return 2
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if verbose > 0 {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	if hexStream != "" {
		err = decodeStream(stdout, logger, hexStream)
	} else {
		err = describeWords(stdout, logger, high, med, low, prec)
	}
	if err != nil {
		level.Error(logger).Log("msg", "failed", "err", err)
		return 1
	}

	return 0
}

func describeWords(w io.Writer, logger log.Logger, high, med, low uint32, prec uint8) (err error) {
	d, err := decimal.New(high, med, low, prec)
	if err != nil {
		return err
	}

	level.Debug(logger).Log("msg", "constructed", "high", high, "med", med, "low", low, "prec", prec)

	return describe(w, d)
}

func decodeStream(w io.Writer, logger log.Logger, s string) (err error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return err
	}

	cd := control.NewDecoder(bytes.NewReader(data))
	dec := decimal.NewDecoder(decimal.Schema{Nullable: true}, cd)

	for i := 0; ; i++ {
		d, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			level.Debug(logger).Log("msg", "decoded", "fields", i, "consumed", cd.Consumed())
			return nil
		}
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(w)
		}

		if d == nil {
			fmt.Fprintln(w, "null")
			continue
		}

		err = describe(w, *d)
		if err != nil {
			return err
		}
	}
}

func describe(w io.Writer, d decimal.Decimal) (err error) {
	buf := &bytes.Buffer{}

	err = decimal.NewEncoder(decimal.Schema{}, control.NewEncoder(buf)).Encode(&d)
	if err != nil {
		return err
	}

	high, med, low := d.Words()

	fmt.Fprintf(w, "words: %08x %08x %08x\n", high, med, low)
	fmt.Fprintf(w, "prec: %d\n", d.Prec())
	fmt.Fprintf(w, "value: %s\n", d)
	fmt.Fprintf(w, "significant: %s\n", d.Text(true))
	fmt.Fprintf(w, "is_zero: %t\n", d.IsZero())
	fmt.Fprintf(w, "is_positive: %t\n", d.IsPositive())
	fmt.Fprintf(w, "is_negative: %t\n", d.IsNegative())
	fmt.Fprintf(w, "is_approx_zero: %t\n", d.IsApproxZero())
	fmt.Fprintf(w, "is_approx_positive: %t\n", d.IsApproxPositive())
	fmt.Fprintf(w, "is_approx_negative: %t\n", d.IsApproxNegative())
	fmt.Fprintf(w, "bsv: %x\n", buf.Bytes())

	return nil
}
