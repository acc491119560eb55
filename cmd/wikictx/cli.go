package main

import (
	"context"
	"io"

	"github.com/fwojciec/wikictx"
	"github.com/fwojciec/wikictx/crawl"
	"github.com/fwojciec/wikictx/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Runs       wikictx.RunService
	Controller *crawl.Controller
	Exporter   wikictx.DocumentExporter
	Tokens     wikictx.TokenCounter
	Asker      wikictx.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Collect CollectCmd `cmd:"" help:"Crawl wiki spaces and build a context document"`
	Runs    RunsCmd    `cmd:"" help:"List stored collection runs"`
	Show    ShowCmd    `cmd:"" help:"Print a stored run's context document"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored run"`
	Ask     AskCmd     `cmd:"" help:"Ask a question against a run's context document"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	URLs          []string `arg:"" help:"Wiki space URLs to crawl"`
	Out           string   `short:"o" default:"." help:"Directory for the exported document"`
	Cookie        []string `short:"C" name:"cookie" help:"Session cookie as name=value (repeatable)"`
	Browser       bool     `short:"b" help:"Fetch with a headless browser for JavaScript-rendered wikis"`
	Caller        string   `help:"Name recorded in the document header"`
	Extractor     string   `default:"wiki" enum:"wiki,article" help:"Content extraction strategy (wiki or article)"`
	OtherSpaces   int      `name:"other-spaces" help:"Cap on linked pages fetched from other spaces"`
	ExternalLinks int      `name:"external-links" help:"Cap on external linked pages fetched"`
	Verbose       bool     `short:"v" help:"Log every page fetch"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Pages bool   `help:"List the run's page records instead of the document"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	ID       string `arg:"" help:"Run ID"`
	Question string `arg:"" help:"Question to ask about the collected context"`
}
