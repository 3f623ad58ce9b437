package main

import (
	"context"
	"io"
	"log/slog"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pipeline *crawl.Pipeline
	Sitemaps vega.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Crawl listing pages and resolve download links"`
	Sitemap SitemapCmd `cmd:"" help:"Preview detail URLs discovered from the site's sitemaps"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Pages       string  `help:"Listing page range: N or N-M" env:"PAGES" default:"1"`
	Base        string  `help:"Catalog base URL" env:"BASE_DOMAIN" required:""`
	Results     string  `help:"Results file path" default:"results.txt"`
	Ledger      string  `help:"JSON ledger path" default:"processed.json"`
	DB          string  `help:"SQLite ledger path (replaces the JSON ledger)"`
	FromSitemap bool    `help:"Fall back to sitemap discovery when listing pages fail"`
	Headless    bool    `help:"Run the browser headless" default:"true" negatable:""`
	Rate        float64 `help:"Requests per second per domain" default:"1"`
	Verbose     bool    `short:"v" help:"Debug logging"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Base string `arg:"" help:"Catalog base URL"`
}
