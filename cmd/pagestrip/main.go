// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cpcloud/pagestrip/internal/app"
	"github.com/cpcloud/pagestrip/internal/config"
	"github.com/cpcloud/pagestrip/internal/demo"
	"github.com/cpcloud/pagestrip/internal/pages"
)

// Set via -ldflags at build time.
var version = "dev"

type cli struct {
	Config  string           `help:"Config file (default: ${config_path})." type:"path" placeholder:"PATH"`
	Demo    int              `help:"Append N generated demo pages." default:"0" placeholder:"N"`
	Seed    uint64           `help:"Seed for demo pages (0 = random)." default:"0"`
	NoMouse bool             `help:"Disable mouse support."`
	Print   bool             `help:"Write the final page list as TOML to stdout on exit."`
	Verbose int              `short:"v" type:"counter" help:"Log verbosity for the activity pane (-v info, -vv debug)."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name(config.AppName),
		kong.Description("A reorderable page strip for form builders."),
		kong.UsageOnError(),
		kong.Vars{
			"version":     version,
			"config_path": config.Path(),
		},
	)

	cfg, err := config.Load(args.Config)
	if err != nil {
		fail("load config", err)
	}

	initial := cfg.InitialPages()
	if args.Demo > 0 {
		if initial == nil {
			initial = pages.DefaultPages()
		}
		initial = demo.Pages(initial, args.Demo, args.Seed)
	}

	model := app.NewModel(app.Options{
		Pages:       initial,
		NewPageName: cfg.NewPageName,
		Verbosity:   args.Verbose,
		LogEntries:  cfg.LogEntries,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse && !args.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		fail("run app", err)
	}

	if args.Print {
		if m, ok := final.(*app.Model); ok {
			if err := config.Encode(os.Stdout, m.Pages()); err != nil {
				fail("print pages", err)
			}
		}
	}
}

func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s: %v\n", config.AppName, context, err)
	os.Exit(1)
}
