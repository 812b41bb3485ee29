package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dfamatch/internal/checker"
	"dfamatch/internal/regex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dfamatch: ")

	tokens := flag.Bool("t", false, "print the pattern's tokens and exit")
	dot := flag.String("dot", "", "export a graph: nfa, dfa or min")
	outFile := flag.String("o", "-", "output file for -dot")
	check := flag.String("check", "", "run a check script")
	cache := flag.Int("cache", regex.DefaultConfig().MaxCachedTransitions, "max memoised DFA transitions (0 disables)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: dfamatch [-t] [-dot nfa|dfa|min] [-o file] [-cache n] <pattern>")
		fmt.Fprintln(os.Stderr, "       dfamatch -check <script>")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := regex.DefaultConfig()
	cfg.MaxCachedTransitions = *cache

	if *check != "" {
		os.Exit(runCheck(*check, cfg))
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	pattern := flag.Arg(0)

	if *tokens {
		if err := regex.DumpTokens(os.Stdout, pattern); err != nil {
			log.Fatal(err)
		}
		return
	}

	re, err := regex.CompileConfig(pattern, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *dot != "" {
		var buf bytes.Buffer
		if err := exportDot(&buf, re, *dot, cfg); err != nil {
			log.Fatal(err)
		}
		if err := writeOut(*outFile, buf.Bytes()); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println("Pattern compiled")
	if err := repl(os.Stdin, os.Stdout, re); err != nil {
		log.Fatal(err)
	}
}

func runCheck(path string, cfg regex.Config) int {
	script, err := checker.LoadScript(path)
	if err != nil {
		log.Print(err)
		return 2
	}
	ctx := checker.NewContext(cfg)
	if err := script.Exec(ctx); err != nil {
		log.Print(err)
		return 2
	}
	ctx.Tally.Report(os.Stdout)
	if ctx.Tally.Failed > 0 {
		return 1
	}
	return 0
}

func writeOut(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Printf("DOT written to %s", path)
	return nil
}

func exportDot(w io.Writer, re *regex.Regex, kind string, cfg regex.Config) error {
	if kind == "nfa" {
		return regex.WriteNFADot(w, re.NFA())
	}
	if kind != "dfa" && kind != "min" {
		return fmt.Errorf("unknown graph %q, want nfa, dfa or min", kind)
	}
	table, err := re.DFA().Explore(cfg.MaxExploredStates)
	if err != nil {
		return err
	}
	if kind == "min" {
		table = regex.Minimize(table)
	}
	return regex.WriteTableDot(w, table)
}
