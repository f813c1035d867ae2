// Command sedam renders policy reports and export archives from local files,
// without the database or blob storage.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	model.ConfigPath = "disable"

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sedam",
		Short:         "Render policy reports and export packages from local files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRenderCmd(), newArchiveCmd())
	return root
}
