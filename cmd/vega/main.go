// Command vega crawls a content catalog, resolves each item's download
// chain through its intermediary pages and appends title/quality/URL
// records to a results file, with progress persisted so interrupted runs
// resume where they left off.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/crawl"
	"github.com/Manish787852/Vega-scraper/fs"
	"github.com/Manish787852/Vega-scraper/goquery"
	vegahttp "github.com/Manish787852/Vega-scraper/http"
	"github.com/Manish787852/Vega-scraper/rod"
	vegaslog "github.com/Manish787852/Vega-scraper/slog"
	"github.com/Manish787852/Vega-scraper/sqlite"
	"github.com/Manish787852/Vega-scraper/telegram"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when the run uses the SQLite ledger.
	DB *sqlite.DB

	// Renderer and sink are held for shutdown.
	Renderer vega.Renderer
	Sink     io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Renderer != nil {
		_ = m.Renderer.Close()
	}
	if m.Sink != nil {
		_ = m.Sink.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vega"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vega --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cmd == "run" && cli.Run.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Sitemaps = vegaslog.NewLoggingSitemapService(vegahttp.NewSitemapService(nil), deps.Logger)

	if cmd == "run" {
		if err := m.wirePipeline(deps, &cli.Run, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wirePipeline builds the full crawl stack for the run command.
func (m *Main) wirePipeline(deps *Dependencies, cmd *RunCmd, stderr io.Writer) error {
	// Validate the page range before paying for a browser launch.
	if _, err := vega.ParsePageRange(cmd.Pages); err != nil {
		return err
	}

	ledger, err := m.openLedger(cmd, deps.Logger)
	if err != nil {
		return err
	}

	sink, err := fs.NewSink(cmd.Results)
	if err != nil {
		return fmt.Errorf("failed to open results file at %q: %w", cmd.Results, err)
	}
	m.Sink = sink

	manager, err := rod.NewBrowserManager(
		rod.WithHeadless(cmd.Headless),
		rod.WithBlockPatterns(vega.DefaultBlockPatterns()),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	renderer := rod.NewLoggingRenderer(rod.NewRenderer(manager), deps.Logger)
	m.Renderer = renderer

	norm := vega.NewNormalizer(vega.DefaultNormalizerRules())
	ranker := vega.NewHostRanker(nil)

	resolver := &crawl.Resolver{
		Renderer:   renderer,
		Fallback:   vegahttp.NewRenderer(),
		Details:    goquery.NewDetailExtractor(norm, nil, nil, nil),
		Finals:     goquery.NewFinalExtractor(ranker, norm),
		Ranker:     ranker,
		Normalizer: norm,
		Ledger:     ledger,
		Sink:       vegaslog.NewLoggingSink(sink, deps.Logger),
		Limiter:    crawl.NewDomainLimiter(cmd.Rate),
		Logger:     deps.Logger,
	}

	deps.Pipeline = &crawl.Pipeline{
		Renderer:    renderer,
		Listings:    goquery.NewListingExtractor(),
		Resolver:    resolver,
		Ledger:      ledger,
		Notifier:    notifierFromEnv(deps.Logger),
		BaseURL:     cmd.Base,
		ResultsPath: cmd.Results,
		Logger:      deps.Logger,
	}
	if cmd.FromSitemap {
		deps.Pipeline.Sitemaps = deps.Sitemaps
	}

	return nil
}

// openLedger selects the SQLite ledger when --db is given, the JSON file
// ledger otherwise.
func (m *Main) openLedger(cmd *RunCmd, logger *slog.Logger) (vega.Ledger, error) {
	if cmd.DB != "" {
		m.DB = sqlite.NewDB(cmd.DB)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open ledger database at %q: %w", cmd.DB, err)
		}
		return vegaslog.NewLoggingLedger(sqlite.NewLedger(m.DB), logger), nil
	}
	return vegaslog.NewLoggingLedger(fs.NewLedger(cmd.Ledger), logger), nil
}

// notifierFromEnv wires the Telegram notifier when both credentials are
// present in the environment. Absent credentials disable notification.
func notifierFromEnv(logger *slog.Logger) vega.Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		logger.Debug("telegram credentials absent, notification disabled")
		return nil
	}
	return telegram.NewNotifier(token, chatID)
}
