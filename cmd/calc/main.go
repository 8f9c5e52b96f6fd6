package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mathkeeper/calc/internal/eval"
)

var showPostfix = flag.Bool("postfix", false, "print the postfix (RPN) form alongside the result")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-postfix] [expression]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "With no expression argument, reads one expression per line from stdin.")
		flag.PrintDefaults()
	}
	flag.Parse()

	engine := eval.NewEngine()

	if flag.NArg() > 0 {
		expr := strings.Join(flag.Args(), " ")
		if !run(engine, expr) {
			os.Exit(1)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	failed := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !run(engine, line) {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func run(engine *eval.Engine, expr string) bool {
	result, err := engine.Evaluate(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}

	if *showPostfix {
		fmt.Printf("%s = %s\n", engine.Postfix(), formatResult(result))
	} else {
		fmt.Println(formatResult(result))
	}
	return true
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
