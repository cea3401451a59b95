package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/rankcheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	records, err := deps.Searches.History(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rankcheck.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded. Use 'rankcheck find' to run one.")
		return nil
	}

	for _, r := range records {
		positions := r.Positions
		if positions == "" {
			positions = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %q  %s  %s\n",
			r.SearchDate.Format(time.RFC3339), r.ID, r.Keywords, r.URL, positions)
	}

	return nil
}
