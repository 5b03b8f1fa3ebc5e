package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the view tree to a static HTML file",
		Long: `Render builds the tree declared in the manifest, renders it into
the document shell, and writes the result to the output directory.

Examples:
  viewkit render
  viewkit render --output=dist/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <output dir>/index.html)")

	return cmd
}

func runRender(output string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	html, err := proj.buildDocument()
	if err != nil {
		errorMsg("Render failed")
		return err
	}

	if output == "" {
		output = filepath.Join(proj.cfg.OutputPath(), "index.html")
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return err
	}

	success("Rendered %s (%d bytes)", output, len(html))
	return nil
}
