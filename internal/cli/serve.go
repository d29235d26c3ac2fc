package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"formedit/internal/api"
	"formedit/internal/config"
)

// serveAPI is a test seam for running the HTTP server.
var serveAPI = api.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to a config file")
		addr := flags.String("addr", "", "Address to listen on (overrides config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		cfg := config.Config{Version: 1}
		if *configPath != "" {
			loaded, err := config.Load(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Config error:\n%s\n", err.Error())
				return ExitError
			}
			cfg = loaded
		} else {
			config.Normalize(&cfg)
		}
		if *addr != "" {
			cfg.Server.Addr = *addr
		}

		fmt.Fprintf(stdout, "Serving editor API at http://%s\n", cfg.Server.Addr)
		if err := serveAPI(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
