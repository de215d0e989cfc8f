// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/draw"
)

var hoverFlags struct {
	common
	locate string
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" hover", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hover [flags] <line|scatter|map|events> [script]\n", os.Args[0])
		f.PrintDefaults()
	}
	hoverFlags.addFlags(f)
	f.StringVar(&hoverFlags.locate, "locate", "", "mark the location `lon,lat` on the map")
	registerSubcommand("hover", "[flags] <line|scatter|map|events> [script] - replay a pointer script against a chart", cmdHover, f)
}

func cmdHover() {
	f := subcommands["hover"].flags
	if f.NArg() < 1 || f.NArg() > 2 {
		f.Usage()
		os.Exit(2)
	}

	var c charts.Chart
	switch f.Arg(0) {
	case "line":
		cfg := hoverFlags.loadConfig()
		c = buildLine(cfg, hoverFlags.loadWeather(cfg), -1)
	case "scatter":
		cfg := hoverFlags.loadConfig()
		c = buildScatter(cfg, hoverFlags.loadWeather(cfg), false)
	case "map":
		cfg := hoverFlags.loadConfig()
		m, err := buildMap(cfg, hoverFlags.loadCountries(cfg), hoverFlags.loadIndicators(cfg), "", hoverFlags.locate)
		if err != nil {
			log.Fatal(err)
		}
		c = m
	case "events":
		c = charts.NewEvents()
	default:
		log.Fatalf("unknown chart %q", f.Arg(0))
	}

	s := newSession(c, os.Stdout, saveSVG)
	if f.NArg() == 2 {
		file, err := os.Open(f.Arg(1))
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		if err := runScript(s, file, f.Arg(1)); err != nil {
			log.Fatal(err)
		}
		return
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := interactive(s); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runScript(s, os.Stdin, "<stdin>"); err != nil {
		log.Fatal(err)
	}
}

// runScript runs every line of r, stopping at the first error.
func runScript(s *session, r io.Reader, name string) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := s.exec(sc.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	return sc.Err()
}

// interactive reads commands from the terminal until EOF. Errors in a
// command are reported and reading continues.
func interactive(s *session) error {
	items := make([]readline.PrefixCompleterInterface, len(scriptCommands))
	for i, cmd := range scriptCommands {
		items[i] = readline.PcItem(cmd)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hover> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func saveSVG(path string, f *draw.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	draw.WriteSVG(file, f)
	return file.Close()
}
