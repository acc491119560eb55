package main

import (
	"fmt"

	"github.com/fwojciec/wikictx"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wikictx.Errorf(wikictx.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if wikictx.ErrorCode(err) == wikictx.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'wikictx runs' to see stored runs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.ID)
	return nil
}
