package main

import (
	"fmt"

	"github.com/fwojciec/wikictx"
	"github.com/fwojciec/wikictx/crawl"
)

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies) error {
	result, err := deps.Controller.CollectContext(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikictx.ErrorMessage(err))
		return err
	}

	run := &wikictx.Run{
		ID:         result.RunID,
		Caller:     result.Caller,
		Seeds:      result.Seeds,
		Document:   result.Document,
		PageCount:  result.PageCount,
		SpaceCount: result.SpaceCount,
		CreatedAt:  result.GeneratedAt,
		Pages:      result.Pages,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving run: %s\n", wikictx.ErrorMessage(err))
		return err
	}

	path, err := deps.Exporter.Export(result.Document, result.GeneratedAt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error exporting document: %s\n", wikictx.ErrorMessage(err))
		return err
	}

	size := crawl.FormatBytes(len(result.Document))
	if deps.Tokens != nil {
		if tokens, err := deps.Tokens.CountTokens(deps.Ctx, result.Document); err == nil {
			size = fmt.Sprintf("%s, %s", size, crawl.FormatTokens(tokens))
		}
	}

	fmt.Fprintf(deps.Stdout, "Collected %d page(s) across %d space(s) (%s)\n",
		result.PageCount, result.SpaceCount, size)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d page(s) failed to fetch\n", result.Failed)
	}
	fmt.Fprintf(deps.Stdout, "Saved run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)

	return nil
}
