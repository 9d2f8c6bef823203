// Package inspect dumps the scored lines of a document, which is the main
// debugging aid when the outline heuristics pick the wrong headings.
package inspect

import (
	"fmt"
	"os"
	"text/tabwriter"

	"fjacquet/pdf-outline/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the inspect command.
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the extracted lines of a PDF with fonts, sizes and scores",
	Long: `Inspect prints every assembled text line of a PDF together with its
font name, font size and heading score, as seen by the outline builder.

Example:
  pdf-outline inspect -i report.pdf`,
	Run: inspectFunc,
}

func inspectFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	adapter, err := appContainer.GetPDFAdapter()
	if err != nil {
		logger.Fatalf("Error getting PDF parser: %v", err)
	}

	scored, err := adapter.InspectLines(inputFile)
	if err != nil {
		logger.Fatalf("Error inspecting file: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tSCORE\tSIZE\tFONT\tTEXT")
	for _, s := range scored {
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%s\t%s\n",
			s.Page, s.Score, s.FontSize, s.FontName, truncate(s.Text, 80))
	}
	if err := w.Flush(); err != nil {
		logger.Fatalf("Error writing output: %v", err)
	}
}

// truncate shortens text to at most max runes, marking the cut with an
// ellipsis. Cutting on rune boundaries keeps multibyte text intact.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
