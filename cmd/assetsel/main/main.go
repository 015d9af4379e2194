package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetsel/cmd/assetsel"
	"github.com/arthur-debert/assetsel/pkg/output"
)

func main() {
	rootCmd := assetsel.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if assetsel.IsReported(err) {
			os.Exit(1)
		}
		errorStyle := output.DefaultStyles().Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
