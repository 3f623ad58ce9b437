package main

import (
	"fmt"

	vega "github.com/Manish787852/Vega-scraper"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	pages, err := vega.ParsePageRange(c.Pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vega.ErrorMessage(err))
		return err
	}

	result, err := deps.Pipeline.Run(deps.Ctx, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vega.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "run %s: %d pages, %d candidates (%d skipped), %d records, %d hops abandoned\n",
		result.RunID, result.Pages, result.Candidates, result.Skipped, result.Emitted, result.Abandoned)
	fmt.Fprintf(deps.Stdout, "results written to %s\n", c.Results)
	return nil
}

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverDetailURLs(deps.Ctx, c.Base)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vega.ErrorMessage(err))
		return err
	}
	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
