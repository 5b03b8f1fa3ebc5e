package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viewkit-go/viewkit/internal/config"
)

const starterManifest = `templates:
  app: |
    <h1>{{.title}}</h1>
    <div class="vk-slot"></div>
  hello: |
    <p>{{.message}}</p>

types:
  hello:
    element: auto
    template: hello
    data:
      message: Hello from viewkit

root:
  name: app
  element: "#app"
  template: app
  data:
    title: My project
  items:
    - type: hello
`

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a viewkit project in the current directory",
		Long: `Init writes a starter viewkit.json, a views.yaml manifest, and an
empty template directory.

Examples:
  viewkit init
  viewkit init --name=my-project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(name string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(dir)
	}

	if _, err := os.Stat(filepath.Join(dir, config.ConfigFileName)); err == nil {
		warn("%s already exists, leaving it untouched", config.ConfigFileName)
		return nil
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.Save(dir); err != nil {
		return err
	}
	success("Created %s", config.ConfigFileName)

	manifestPath := filepath.Join(dir, cfg.Manifest)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		if err := os.WriteFile(manifestPath, []byte(starterManifest), 0o644); err != nil {
			return err
		}
		success("Created %s", cfg.Manifest)
	}

	if err := os.MkdirAll(filepath.Join(dir, cfg.Templates), 0o755); err != nil {
		return err
	}
	success("Created %s/", cfg.Templates)

	printBanner()
	info("Next: viewkit preview")
	return nil
}
