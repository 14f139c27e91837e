package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	os.Args = append(os.Args[:1:1], normalizeVerb(os.Args[1:])...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var knownVerbs = map[string]struct{}{
	"run":         {},
	"check":       {},
	"systemfairy": {},
	"install":     {},
	"history":     {},
	"config":      {},
	"help":        {},
	"completion":  {},
}

// normalizeVerb lowercases the leading verb so "mason Check" and
// "mason SYSTEMFAIRY" resolve like their lowercase forms.
func normalizeVerb(args []string) []string {
	if len(args) == 0 {
		return args
	}
	lowered := strings.ToLower(args[0])
	if _, ok := knownVerbs[lowered]; !ok {
		return args
	}
	out := append([]string(nil), args...)
	out[0] = lowered
	return out
}
