package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikictx"
	"github.com/fwojciec/wikictx/crawl"
	"github.com/fwojciec/wikictx/fs"
	"github.com/fwojciec/wikictx/gemini"
	"github.com/fwojciec/wikictx/goquery"
	"github.com/fwojciec/wikictx/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikictx/http"
	"github.com/fwojciec/wikictx/rod"
	wikislog "github.com/fwojciec/wikictx/slog"
	"github.com/fwojciec/wikictx/sqlite"
	"github.com/fwojciec/wikictx/trafilatura"
	"github.com/go-rod/rod/lib/proto"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService wikictx.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikictx"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikictx --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKICTX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService

	// Wire command-specific dependencies based on command
	if cmd == "collect" {
		cookies, err := parseCookies(cli.Collect.Cookie)
		if err != nil {
			return err
		}

		fetcher, err := newFetcher(cli.Collect, cookies, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		level := slog.LevelInfo
		if cli.Collect.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		var pageFetcher wikictx.PageFetcher = NewPageFetcher(
			fetcher,
			newExtractor(cli.Collect.Extractor),
			htmltomarkdown.NewConverter(),
			goquery.NewLinkExtractor(),
		)
		if cli.Collect.Verbose {
			pageFetcher = wikislog.NewLoggingPageFetcher(pageFetcher, logger)
		}

		deps.Controller = &crawl.Controller{
			Fetcher:         pageFetcher,
			Status:          wikislog.NewStatusSink(logger),
			OtherSpaceLimit: cli.Collect.OtherSpaces,
			ExternalLimit:   cli.Collect.ExternalLinks,
			Caller:          cli.Collect.Caller,
		}
		deps.Exporter = fs.NewWriter(cli.Collect.Out)
		deps.Tokens = tokenCounter
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client)
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for sizing the collected document against an LLM
// context window.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("WIKICTX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikictx.db"
	}
	dir := filepath.Join(home, ".wikictx")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikictx.db")
}

// newFetcher selects the raw HTML fetcher for a collect run. The browser
// fetcher handles JavaScript-rendered wikis; plain HTTP covers the rest.
func newFetcher(cmd CollectCmd, cookies []*http.Cookie, stderr io.Writer) (wikictx.Fetcher, error) {
	if !cmd.Browser {
		return wikihttp.NewFetcher(wikihttp.WithCookies(cookies))
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	if len(cookies) > 0 {
		params, err := browserCookies(cookies, cmd.URLs)
		if err != nil {
			fetcher.Close()
			return nil, err
		}
		if err := fetcher.SetCookies(params); err != nil {
			fetcher.Close()
			return nil, fmt.Errorf("failed to set browser cookies: %w", err)
		}
	}

	return fetcher, nil
}

// newExtractor selects the content extraction strategy.
func newExtractor(strategy string) wikictx.Extractor {
	if strategy == "article" {
		return trafilatura.NewExtractor()
	}
	return goquery.NewExtractor()
}

// parseCookies converts name=value strings into cookies.
func parseCookies(raw []string) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok || name == "" {
			return nil, wikictx.Errorf(wikictx.EINVALID, "invalid cookie %q (expected name=value)", r)
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	return cookies, nil
}

// browserCookies builds browser cookie params scoped to the seed URL hosts.
func browserCookies(cookies []*http.Cookie, seeds []string) ([]*proto.NetworkCookieParam, error) {
	domains := make(map[string]struct{})
	for _, seed := range seeds {
		u, err := url.Parse(strings.TrimSpace(seed))
		if err != nil || u.Host == "" {
			continue
		}
		host := u.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		domains[host] = struct{}{}
	}
	if len(domains) == 0 {
		return nil, wikictx.Errorf(wikictx.EINVALID, "no valid seed URL to scope cookies to")
	}

	var params []*proto.NetworkCookieParam
	for domain := range domains {
		for _, c := range cookies {
			params = append(params, &proto.NetworkCookieParam{
				Name:   c.Name,
				Value:  c.Value,
				Domain: domain,
				Path:   "/",
			})
		}
	}
	return params, nil
}
