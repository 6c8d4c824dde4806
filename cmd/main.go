package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/alecthomas/kong"
)

// Context carries the global flags to every command.
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

var CLI struct {
	Config     string `help:"Plant definition file" default:"plant.yaml" short:"c"`
	Verbose    bool   `help:"Enable verbose output" short:"v"`
	Quiet      bool   `help:"Suppress output" short:"q"`
	CPUProfile string `help:"Write a CPU profile to this file" name:"cpuprofile"`

	Generate GenerateCmd `cmd:"" help:"Print a generation of the plant's L-system"`
	Render   RenderCmd   `cmd:"" help:"Draw the plant as SVG"`
	Analyse  AnalyseCmd  `cmd:"" help:"Chart how the plant grows per generation"`
	Tokenize TokenizeCmd `cmd:"" help:"Classify text with the definition's token table"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Println("plantgen v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("plantgen"),
		kong.Description("Grow and draw branching plants with L-systems."),
	)

	if CLI.CPUProfile != "" {
		f, err := os.Create(CLI.CPUProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	if err := ctx.Run(appCtx); err != nil {
		pprof.StopCPUProfile()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
