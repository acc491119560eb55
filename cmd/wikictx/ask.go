package main

import (
	"fmt"

	"github.com/fwojciec/wikictx"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if wikictx.ErrorCode(err) == wikictx.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wikictx runs' to see stored runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		}
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, run.Document, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
