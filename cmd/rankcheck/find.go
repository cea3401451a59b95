package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rankcheck"
)

// Run executes the find command. The search is recorded whether or not the
// URL is found.
func (c *FindCmd) Run(deps *Dependencies) error {
	result, err := deps.Searches.Search(deps.Ctx, rankcheck.SearchQuery{
		Keywords:  c.Keywords,
		TargetURL: c.URL,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rankcheck.ErrorMessage(err))
		return err
	}

	if !result.Found() {
		fmt.Fprintln(deps.Stdout, "The URL was not found in the search results.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %s for %q at position(s): %s\n",
		c.URL, c.Keywords, strings.Join(result.Positions, ", "))
	return nil
}
