// Command percolationstats estimates the site-percolation threshold by
// Monte Carlo simulation.
//
// Usage:
//
//	percolationstats N T [--seed S] [--format text|json] [--confidence L] [--config file.yaml] [-v]
//
// Example:
//
//	$ percolationstats 200 100
//	Mean: 0.5929934999999997
//	Std Dev: 0.00876990421552567
//	95% confidence interval: 0.5912745987737567, 0.5947124012262428
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(newApp(os.Stdout))
	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if code == ExitUsage {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
	}
	stop()
	os.Exit(code)
}
