package main

import (
	"fmt"

	"github.com/fwojciec/wikictx"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if wikictx.ErrorCode(err) == wikictx.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wikictx runs' to see stored runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		}
		return err
	}

	if c.Pages {
		for _, p := range run.Pages {
			fmt.Fprintf(deps.Stdout, "%3d  %-26s  %s\n", p.Position, p.Section, p.SourceURL)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, run.Document)
	return nil
}
