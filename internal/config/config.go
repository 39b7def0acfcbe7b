package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/shoplist/internal/ui"
)

// Config holds the runtime options for the binary.
type Config struct {
	Theme      string
	NoColor    bool
	ForceColor bool
	AltScreen  bool
	Group      bool
	DebugLog   string // file path; empty disables debug logging

	Args []string // positional arguments left after flags
}

// Load reads environment defaults and then parses root flags from args
// (without the program name). Flags win over the environment.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		Theme:     envOr("SHOPLIST_THEME", "classic"),
		NoColor:   os.Getenv("NO_COLOR") != "",
		AltScreen: true,
		DebugLog:  strings.TrimSpace(os.Getenv("SHOPLIST_DEBUG")),
	}

	fs := flag.NewFlagSet("shoplist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: "+strings.Join(ui.Themes, ", "))
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colors")
	fs.BoolVar(&cfg.ForceColor, "force-color", false, "emit colors even when not on a terminal")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "run the list in the alternate screen")
	fs.BoolVar(&cfg.Group, "group", false, "group check output by pending/purchased")
	switch err := fs.Parse(args); {
	case errors.Is(err, flag.ErrHelp):
		cfg.Args = []string{"help"}
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("flags: %w", err)
	}
	cfg.Args = fs.Args()

	if !validTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme %q (want one of %s)", cfg.Theme, strings.Join(ui.Themes, ", "))
	}
	return cfg, nil
}

// Apply pushes the styling options into the ui package.
func (c *Config) Apply() error {
	if err := ui.SetTheme(c.Theme); err != nil {
		return err
	}
	ui.SetColorForcing(c.ForceColor, c.NoColor)
	return nil
}

func validTheme(name string) bool {
	for _, t := range ui.Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
