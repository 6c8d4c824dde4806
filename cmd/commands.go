package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/viktordanov/plantgen"
	"github.com/viktordanov/plantgen/canvas"
	"github.com/viktordanov/plantgen/tokenizer"
)

// GenerateCmd prints a generation of the L-system.
type GenerateCmd struct {
	Generations int  `help:"Generation to print (defaults to the definition's)" default:"-1" short:"n"`
	LengthOnly  bool `help:"Print only the number of symbols"`
}

func (cmd *GenerateCmd) Run(ctx *Context) error {
	def, plant, err := loadPlant(ctx)
	if err != nil {
		return err
	}
	n := generations(cmd.Generations, def)

	commands := plant.Generation(n)
	if cmd.LengthOnly {
		fmt.Println(plantgen.SymbolCount(commands))
		return nil
	}
	if ctx.Verbose {
		color.Blue("Generation %d of %s (%d symbols)", n, def.Name, plantgen.SymbolCount(commands))
	}
	fmt.Println(commands)
	return nil
}

// RenderCmd draws the plant as SVG.
type RenderCmd struct {
	Out         string `help:"Output file (defaults to the definition's output)" short:"o"`
	Generations int    `help:"Generation to draw (defaults to the definition's)" default:"-1" short:"n"`
	All         bool   `help:"Write one file per generation, from the axiom up"`
}

func (cmd *RenderCmd) Run(ctx *Context) error {
	def, plant, err := loadPlant(ctx)
	if err != nil {
		return err
	}
	out := cmd.Out
	if out == "" {
		out = def.Output
	}

	if !cmd.All {
		n := generations(cmd.Generations, def)
		return writeSVG(ctx, out, def.Name, func(svg *canvas.SVG) error {
			return plant.Render(n, svg)
		})
	}

	if cmd.Generations >= 0 {
		plant.Generations = cmd.Generations
	}
	for n, frame := range plant.Grow() {
		path := numberedPath(out, n)
		title := fmt.Sprintf("%s, generation %d", def.Name, n)
		draw := func(svg *canvas.SVG) error { return frame.Render(svg) }
		if err := writeSVG(ctx, path, title, draw); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(ctx *Context, path, title string, draw func(*canvas.SVG) error) error {
	svg := canvas.NewSVG()
	svg.Title = title
	if err := draw(svg); err != nil {
		return fmt.Errorf("failed to draw %s: %w", title, err)
	}
	if err := svg.WriteFile(path); err != nil {
		return err
	}
	if !ctx.Quiet {
		color.Green("Wrote %s (%d segments)", path, len(svg.Segments))
	}
	return nil
}

// AnalyseCmd charts the growth of the plant.
type AnalyseCmd struct {
	Out         string `help:"HTML file to write" default:"growth.html" short:"o"`
	Generations int    `help:"Number of generations to analyse (defaults to the definition's)" default:"-1" short:"n"`
	Serve       string `help:"Serve the chart on this address instead of writing a file, e.g. :8081"`
}

func (cmd *AnalyseCmd) Run(ctx *Context) error {
	def, plant, err := loadPlant(ctx)
	if err != nil {
		return err
	}
	report := plantgen.AnalyseGrowth(def.Name, plant.System, generations(cmd.Generations, def))

	if cmd.Serve != "" {
		if !ctx.Quiet {
			color.Blue("Serving growth chart of %s on %s", def.Name, cmd.Serve)
		}
		mux := http.NewServeMux()
		mux.Handle("/", report)
		return http.ListenAndServe(cmd.Serve, mux)
	}

	f, err := os.Create(cmd.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cmd.Out, err)
	}
	if err := report.RenderChart(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if !ctx.Quiet {
		color.Green("Wrote %s (average growth %.4f)", cmd.Out, report.AverageGrowth())
	}
	return nil
}

// TokenizeCmd classifies text with the definition's token table.
type TokenizeCmd struct {
	Text string   `arg:"" help:"Text to tokenize"`
	Skip []string `help:"Token kinds to leave out of the output"`
}

func (cmd *TokenizeCmd) Run(ctx *Context) error {
	def, _, err := loadPlant(ctx)
	if err != nil {
		return err
	}
	tok, err := tokenizer.Compile(def.Tokens, tokenizer.Options{Skip: cmd.Skip})
	if err != nil {
		return err
	}

	for token, err := range tok.Tokens(cmd.Text) {
		if err != nil {
			var noMatch *tokenizer.NoMatchError
			if errors.As(err, &noMatch) && !ctx.Quiet {
				printContext(cmd.Text, noMatch.Offset)
			}
			return err
		}
		pos := tokenizer.PositionOf(cmd.Text, token.Offset)
		fmt.Printf("%s\t%-10s %q\n", pos, tok.Name(token.Kind), token.Lexeme)
	}
	return nil
}

// printContext shows the line holding offset with a marker under it.
func printContext(text string, offset int) {
	pos := tokenizer.PositionOf(text, offset)
	line := strings.Split(text, "\n")[pos.Line-1]
	fmt.Fprintf(os.Stderr, "%d │ %s\n", pos.Line, line)
	fmt.Fprintf(os.Stderr, "%*s │ %s", len(fmt.Sprint(pos.Line)), "", strings.Repeat(" ", pos.Column-1))
	color.New(color.FgRed).Fprintln(os.Stderr, "^ no token starts here")
}

func generations(flag int, def *plantgen.Definition) int {
	if flag >= 0 {
		return flag
	}
	return def.Generations
}
