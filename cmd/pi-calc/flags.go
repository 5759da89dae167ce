// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --theme, --locale, --data-dir, --no-persist, --print, --keys, --format, --verbose, --version

package main

import (
	"flag"

	"github.com/mauromedda/pi-calc/internal/config"
)

type cliArgs struct {
	theme     string
	locale    string
	dataDir   string
	noPersist bool
	print     bool
	keys      string
	format    string
	history   bool
	verbose   bool
	version   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.theme, "theme", "", "Colour theme: dark or light")
	flag.StringVar(&args.locale, "locale", "", "Locale for digit grouping (e.g., en, de, fr-CH)")
	flag.StringVar(&args.dataDir, "data-dir", "", "Directory for persisted history and theme")
	flag.BoolVar(&args.noPersist, "no-persist", false, "Keep history and theme in memory only")
	flag.BoolVar(&args.print, "print", false, "Non-interactive print mode")
	flag.StringVar(&args.keys, "keys", "", `Key script for print mode (e.g., "3+4*2=" or "12<backspace>=")`)
	flag.StringVar(&args.format, "format", "text", "Print mode output: text or json")
	flag.BoolVar(&args.history, "history", false, "Print mode: also print history lines")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// apply overlays non-zero flags onto s.
func (a cliArgs) apply(s config.Settings) config.Settings {
	if a.theme != "" {
		s.Theme = a.theme
	}
	if a.locale != "" {
		s.Locale = a.locale
	}
	if a.dataDir != "" {
		s.DataDir = a.dataDir
	}
	if a.noPersist {
		s.NoPersist = true
	}
	return s
}

// printMode reports whether the flags select the headless mode.
func (a cliArgs) printMode() bool {
	return a.print || a.keys != ""
}
