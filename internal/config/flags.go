package config

import "flag"

// parseFlags defines the root flags on fs with the current values as
// defaults, then parses args. Whatever is left is in fs.Args().
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskboard", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "URL of the todo collection")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "colour palette (classic|neon|mono)")
	fs.StringVar(&cfg.Dark, "dark", cfg.Dark, "dark mode (auto|on|off)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	fs.BoolVar(&cfg.Group, "group", cfg.Group, "group ls output by pending/done")
	return fs.Parse(args)
}
