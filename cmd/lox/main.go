package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxlang"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/vars"
	"golang.org/x/term"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

var promptFlag = cmds.Var[string]("-prompt")

func main() {
	rest := cmds.ExecuteLeading(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		loader configs.Loader,
	) {
		ctx, _ := newSpan(context.Background(), "")

		switch {

		case len(rest) > 1:
			fmt.Println("Usage: lox [script]")
			os.Exit(64)

		case len(rest) == 1:
			runFile(ctx, logger, rest[0])

		default:
			runPrompt(ctx, logger, loader)

		}
	})
}

func runFile(ctx context.Context, logger logs.Logger, path string) {
	logger.InfoContext(ctx, "reading", "file", path)
	content, err := os.ReadFile(path)
	if err != nil {
		err = logs.WrapSpan(ctx, err)
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
	if run(ctx, logger, string(content)) {
		os.Exit(65)
	}
}

func runPrompt(ctx context.Context, logger logs.Logger, loader configs.Loader) {
	prompt := vars.FirstNonZero(
		vars.DerefOrZero(promptFlag),
		configs.First[string](loader, "repl.prompt"),
		"> ",
	)
	isTerminal := term.IsTerminal(int(os.Stdin.Fd()))

	input := bufio.NewScanner(os.Stdin)
	for {
		if isTerminal {
			fmt.Print(prompt)
		}
		if !input.Scan() {
			break
		}
		run(ctx, logger, input.Text())
	}
}

// run scans one program and prints its tokens. It reports whether the scan
// produced lexical errors; the REPL ignores that, file mode exits nonzero.
func run(ctx context.Context, logger logs.Logger, source string) bool {
	scanner := loxlang.NewScanner(source, loxlang.NewStderrReporter())
	tokens := scanner.ScanTokens()
	for _, token := range tokens {
		fmt.Println(token)
	}
	logger.DebugContext(ctx, "scan done",
		"tokens", len(tokens),
		"errors", scanner.HadErrors(),
	)
	return scanner.HadErrors()
}
