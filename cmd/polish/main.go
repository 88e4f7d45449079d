package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/yomogi/polish"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		trace        bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&trace, "trace", false, "log classified tokens to stderr")
	flag.Parse()

	var opts []polish.EvalOption
	if trace {
		opts = append(opts, polish.WithLogger(stderrLogger()))
	}

	exprs := flag.Args()
	if len(exprs) == 0 || inname != "" {
		in, err := infile(inname)
		if err != nil {
			log.Fatal(err)
		}
		lines, err := readlines(in)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, lines...)
	}

	verb += "\n"
	code := 0
	for _, e := range exprs {
		r, err := polish.Eval(e, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(code)
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

func readlines(in io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func stderrLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		log.Println(prefix, args)
	}, funcr.Options{Verbosity: 1})
}
