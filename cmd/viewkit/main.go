package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦╦╔═╗╦ ╦╦╔═╦╔╦╗
  ╚╗╔╝║║╣ ║║║╠╩╗║ ║
   ╚╝ ╩╚═╝╚╩╝╩ ╩╩ ╩
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "viewkit",
		Short: "Render, preview, and publish view trees",
		Long: `Viewkit builds component trees from a YAML manifest and HTML
templates, renders them into a document, and serves or publishes
the result.

  • Declarative view manifest (views.yaml)
  • Template-driven rendering with placeholder slots
  • Local preview server with live reload
  • Snapshot publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(),
		previewCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the viewkit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Printf("\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
