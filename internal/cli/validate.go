package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"formedit/internal/config"
	"formedit/internal/form"
	"formedit/internal/payload"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		payloadPath := flags.String("payload", "", "Path to a form payload JSON file")
		configPath := flags.String("config", "", "Path to a config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if (*payloadPath == "") == (*configPath == "") {
			fmt.Fprintln(stderr, "exactly one of --payload or --config is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if *configPath != "" {
			if _, err := config.Load(*configPath); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Config OK")
			return ExitOK
		}

		data, err := os.ReadFile(*payloadPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		doc, err := payload.Parse(string(data))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		if err := form.Validate(payload.Decode(doc)); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Payload OK (%d questions)\n", len(doc.Form))
		return ExitOK
	}
}
