package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"formedit/internal/config"
	"formedit/internal/form"
	"formedit/internal/payload"
	"formedit/pkg/submit"
)

// runSubmit builds the handler for the submit command.
func runSubmit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		payloadPath := flags.String("payload", "", "Path to a form payload JSON file")
		url := flags.String("url", config.DefaultSubmitURL, "Submission endpoint URL")
		timeout := flags.Int("timeout", config.DefaultTimeoutSeconds, "Request timeout in seconds")
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
		if *payloadPath == "" {
			fmt.Fprintln(stderr, "Missing --payload")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *timeout <= 0 {
			fmt.Fprintln(stderr, "--timeout must be positive")
			return ExitUsage
		}

		data, err := os.ReadFile(*payloadPath)
		if err != nil {
			fmt.Fprintf(stderr, "read payload: %v\n", err)
			return ExitError
		}
		doc, err := payload.Parse(string(data))
		if err != nil {
			fmt.Fprintf(stderr, "Submission failed:\n%s\n", err.Error())
			return ExitError
		}
		if err := form.Validate(payload.Decode(doc)); err != nil {
			fmt.Fprintf(stderr, "Submission failed:\n%s\n", err.Error())
			return ExitError
		}

		client := submit.NewWithTimeout(*url, time.Duration(*timeout)*time.Second)
		receipt, err := client.Submit(context.Background(), doc, time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Submission failed:\n%v\n", err)
			return ExitError
		}
		if receipt.ID != "" {
			fmt.Fprintf(stdout, "Submitted: %s\n", receipt.ID)
		} else {
			fmt.Fprintln(stdout, "Submitted")
		}
		return ExitOK
	}
}
