package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/termtick/termtick/internal/cli"
	"github.com/termtick/termtick/internal/config"
	"github.com/termtick/termtick/internal/face"
	"github.com/termtick/termtick/internal/render"
	"github.com/termtick/termtick/internal/theme"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Theme            string  `help:"Theme of the clock." default:"nord-frost"`
	Tick             int     `help:"How often the clock is redrawn, in milliseconds." default:"1000"`
	AspectRatio      float64 `help:"Height:width ratio of a terminal character cell." default:"2.0"`
	HideSecondHand   bool    `help:"Hide the second hand."`
	HideHourLabels   bool    `help:"Hide the hour labels."`
	ShowMinuteLabels bool    `help:"Show the minute labels."`
	ListThemes       bool    `help:"List the available themes and exit."`
	Version          bool    `help:"Show version information."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("termtick"),
		kong.Description("An analog clock for your terminal, drawn in truecolor blocks."),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}
	if CLI.ListThemes {
		cli.PrintThemes(theme.All())
		os.Exit(0)
	}

	// Configuration errors are fatal before any rendering begins.
	th, err := theme.Lookup(CLI.Theme)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if CLI.Tick <= 0 {
		cli.PrintError(fmt.Sprintf("tick interval must be positive, got %d ms", CLI.Tick))
		os.Exit(1)
	}
	if CLI.AspectRatio < config.MinAspectRatio || CLI.AspectRatio > config.MaxAspectRatio {
		cli.PrintError(fmt.Sprintf("aspect ratio %g out of range [%g, %g]",
			CLI.AspectRatio, config.MinAspectRatio, config.MaxAspectRatio))
		os.Exit(1)
	}

	// An unusable terminal is an environment error, also fatal up front:
	// it would recur on every tick, so there is nothing to retry.
	screen, err := tcell.NewScreen()
	if err != nil {
		cli.PrintError(fmt.Sprintf("opening terminal: %v", err))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		cli.PrintError(fmt.Sprintf("initializing terminal: %v", err))
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	loop := render.NewLoop(screen, render.Options{
		Palette: palette(th),
		Show: face.Options{
			ShowSecondHand:   !CLI.HideSecondHand,
			ShowHourLabels:   !CLI.HideHourLabels,
			ShowMinuteLabels: CLI.ShowMinuteLabels,
		},
		TickInterval: time.Duration(CLI.Tick) * time.Millisecond,
		AspectRatio:  CLI.AspectRatio,
	})

	runErr := loop.Run()

	// Restore the terminal before touching stdout or stderr. Not deferred:
	// os.Exit would skip it.
	screen.Fini()

	if runErr != nil {
		cli.PrintError(runErr.Error())
		os.Exit(1)
	}
}

func palette(th theme.Theme) face.Palette {
	return face.Palette{
		Hour:   rgb(th.Hour),
		Minute: rgb(th.Minute),
		Second: rgb(th.Second),
		Face:   rgb(th.Face),
	}
}

func rgb(c colorful.Color) face.Color {
	r, g, b := c.RGB255()
	return face.Color{R: r, G: g, B: b}
}
