package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"formedit/internal/codegen"
	"formedit/internal/form"
	"formedit/internal/markup"
	"formedit/internal/payload"
)

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		from := flags.String("from", "", "Source view: "+targetList())
		to := flags.String("to", "", "Destination view: "+targetList())
		inPath := flags.String("in", "", "Input file (default: stdin)")
		outPath := flags.String("out", "", "Output file (default: stdout)")
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

		fromTarget, err := codegen.ParseTarget(*from)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --from: %v\n", err)
			return ExitUsage
		}
		toTarget, err := codegen.ParseTarget(*to)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --to: %v\n", err)
			return ExitUsage
		}

		input, err := readInput(*inPath)
		if err != nil {
			fmt.Fprintf(stderr, "read input: %v\n", err)
			return ExitError
		}

		questions, err := loadQuestions(fromTarget, input)
		if err != nil {
			fmt.Fprintf(stderr, "convert: %v\n", err)
			return ExitError
		}

		output, err := codegen.Render(toTarget, questions, "")
		if err != nil {
			fmt.Fprintf(stderr, "convert: %v\n", err)
			return ExitError
		}

		if *outPath == "" {
			fmt.Fprintln(stdout, output)
			return ExitOK
		}
		if err := os.WriteFile(*outPath, []byte(output+"\n"), 0o644); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadQuestions reads the question model out of one source view.
func loadQuestions(from codegen.Target, input string) ([]form.Question, error) {
	if from == codegen.TargetMarkup {
		return form.Merge(nil, markup.Parse(input)), nil
	}
	block, ok := codegen.ExtractBlock(input, from.Anchor())
	if !ok {
		return nil, fmt.Errorf("no payload block found for %s", from)
	}
	doc, err := payload.Parse(block.Text)
	if err != nil {
		return nil, err
	}
	return payload.Decode(doc), nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func targetList() string {
	names := make([]string, 0, len(codegen.Targets()))
	for _, target := range codegen.Targets() {
		names = append(names, string(target))
	}
	return strings.Join(names, ", ")
}
