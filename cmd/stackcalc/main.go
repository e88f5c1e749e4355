// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ezrec/stackcalc/config"
	"github.com/ezrec/stackcalc/script"
	"github.com/ezrec/stackcalc/simulator"
	"github.com/ezrec/stackcalc/tui"
)

func main() {
	var configFile string
	var scriptFile string
	var input string
	var output string
	var interactive bool
	var verbose bool

	flag.StringVar(&configFile, "c", "", ".toml configuration file")
	flag.StringVar(&scriptFile, "s", "", ".star script to run")
	flag.StringVar(&input, "i", "-", "Tape input of button names")
	flag.StringVar(&output, "o", "-", "Display output")
	flag.BoolVar(&interactive, "t", false, "Interactive terminal front panel")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}
	cfg.Verbose = cfg.Verbose || verbose

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if interactive {
		if cfg.Verbose {
			logf, err := tea.LogToFile("stackcalc.log", "stackcalc")
			if err != nil {
				log.Fatal(err)
			}
			defer logf.Close()
		}

		model, err := tui.New(cfg)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}

		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	sim := simulator.NewSimulator()
	sim.Verbose = cfg.Verbose
	sim.Calculator.DelayMs = cfg.DebounceMs

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	if len(scriptFile) != 0 {
		rn := &script.Runner{Sim: sim, Output: out}
		_, err := rn.Run(ctx, scriptFile, nil)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	in := os.Stdin
	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		in = inf
	}

	err := sim.Tape(ctx, in, out)
	if err != nil {
		log.Fatal(err)
	}
}
