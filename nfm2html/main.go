// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Nfm2html converts No-Flavor Markdown to HTML.
//
// Usage:
//
//	nfm2html [-t] [-n] [-T] [-o file] [-i | path]
//
// Nfm2html reads the named file, or standard input when -i is given,
// and prints the corresponding HTML to standard output.
// If no path is given and standard input is not a terminal,
// standard input is read as if -i had been given.
//
// The flags are:
//
//	-t, --timing
//		Print the time spent converting, in seconds, after the HTML.
//	-n, --dry-run
//		Convert the input but do not write the HTML anywhere.
//	-o, --output-path file
//		Write the HTML to file instead of standard output.
//	-i, --read-stdin
//		Read the document from standard input.
//	-T, --expand-tabs
//		Expand tabs to 4-space tab stops before converting,
//		so that tab-indented lines nest and indent like spaces.
//	-h, --help
//		Print the flags to standard output and exit.
//
// The exit status is 1 if the input or output fails
// and 2 for a usage error, including empty standard input.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"nfm.dev/nfm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// A config holds the command-line settings.
type config struct {
	timing     bool
	dryRun     bool
	outputPath string
	readStdin  bool
	expandTabs bool
	help       bool
	path       string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := log.New(stderr, "nfm2html: ", 0)

	var cfg config
	flags := pflag.NewFlagSet("nfm2html", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&cfg.timing, "timing", "t", false, "print conversion time in seconds")
	flags.BoolVarP(&cfg.dryRun, "dry-run", "n", false, "convert but do not write output")
	flags.StringVarP(&cfg.outputPath, "output-path", "o", "", "write HTML to `file`")
	flags.BoolVarP(&cfg.readStdin, "read-stdin", "i", false, "read the document from standard input")
	flags.BoolVarP(&cfg.expandTabs, "expand-tabs", "T", false, "expand tabs to 4-space tab stops")
	flags.BoolVarP(&cfg.help, "help", "h", false, "print this help and exit")
	usageOut := stderr
	flags.Usage = func() {
		fmt.Fprintf(usageOut, "usage: nfm2html [flags] [path]\n")
		flags.SetOutput(usageOut)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		log.Print(err)
		flags.Usage()
		return 2
	}
	if cfg.help {
		usageOut = stdout
		flags.Usage()
		return 0
	}
	switch flags.NArg() {
	case 0:
	case 1:
		cfg.path = flags.Arg(0)
	default:
		flags.Usage()
		return 2
	}

	var text string
	switch {
	case cfg.path != "" && !cfg.readStdin:
		data, err := os.ReadFile(cfg.path)
		if err != nil {
			log.Print(err)
			return 1
		}
		text = string(data)
	case cfg.readStdin || !isTerminal(stdin):
		data, err := io.ReadAll(stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
		if len(data) == 0 {
			log.Print("no data from standard input; argument path must be given")
			return 2
		}
		text = string(data)
	default:
		log.Print("argument path must be given when not reading standard input")
		flags.Usage()
		return 2
	}
	if cfg.expandTabs {
		text = expandTabs(text)
	}

	start := time.Now()
	html, err := nfm.ParseReader(strings.NewReader(text))
	elapsed := time.Since(start)
	if err != nil {
		log.Print(err)
		return 1
	}

	if !cfg.dryRun {
		if err := writeOutput(cfg.outputPath, stdout, html); err != nil {
			log.Print(err)
			return 1
		}
	}
	if cfg.timing {
		fmt.Fprintf(stdout, "%ss\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	}
	return 0
}

// writeOutput writes html to the named file, creating or truncating it,
// or to stdout if name is empty.
func writeOutput(name string, stdout io.Writer, html string) error {
	if name == "" {
		_, err := io.WriteString(stdout, html)
		return err
	}
	return os.WriteFile(name, []byte(html), 0666)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// expandTabs replaces each tab with one to four spaces,
// up to the next multiple of four columns.
// Columns count characters, not bytes.
func expandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '\t':
			n := 4 - col%4
			b.WriteString("    "[:n])
			col += n
			continue
		case c == '\n':
			col = 0
		case utf8.RuneStart(c):
			col++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
