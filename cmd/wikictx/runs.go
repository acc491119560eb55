package main

import (
	"fmt"

	"github.com/fwojciec/wikictx"
	"github.com/fwojciec/wikictx/crawl"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, wikictx.RunFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'wikictx collect' to create one.")
		return nil
	}

	for _, r := range runs {
		seed := ""
		if len(r.Seeds) > 0 {
			seed = crawl.TruncateURL(r.Seeds[0], 50)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %3d pages  %2d spaces  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.PageCount, r.SpaceCount, seed)
	}

	return nil
}
