// Package history lists recent conversions from the journal.
package history

import (
	"fmt"
	"os"
	"text/tabwriter"

	"fjacquet/pdf-outline/cmd/root"

	"github.com/spf13/cobra"
)

var limit int

// Cmd represents the history command.
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions recorded in the journal",
	Run:   historyFunc,
}

func init() {
	Cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
}

func historyFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	jnl, err := appContainer.OpenJournal()
	if err != nil {
		logger.Fatalf("Error opening journal: %v", err)
	}
	if jnl == nil {
		logger.Fatal("The journal is disabled; enable batch.journal_enabled to record history")
	}
	defer func() {
		_ = jnl.Close()
	}()

	entries, err := jnl.Recent(limit)
	if err != nil {
		logger.Fatalf("Error reading journal: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSTATUS\tDURATION\tINPUT\tOUTPUT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ProcessedAt.Format("2006-01-02 15:04:05"),
			e.Status, e.Duration, e.InputFile, e.OutputFile)
	}
	if err := w.Flush(); err != nil {
		logger.Fatalf("Error writing output: %v", err)
	}
}
