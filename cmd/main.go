// FILE: cmd/main.go

// Command dotconf inspects layered configuration the same way an application using the
// library would see it.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v2"

	"github.com/lixenwraith/dotconf"
)

// Build information, set via ldflags.
var Version = "dev"

func main() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "dotconf",
		Usage:   "Discover, merge and query configuration files",
		Version: Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Print the merged configuration, or one section of it",
				ArgsUsage: "[path]",
				Action:    showAction,
			},
			{
				Name:      "get",
				Usage:     "Print a single value",
				ArgsUsage: "<path>",
				Action:    getAction,
			},
			{
				Name:   "paths",
				Usage:  "List discovery candidates and whether each exists",
				Action: pathsAction,
			},
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Logical configuration name to discover (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Explicit configuration file, overrides discovered ones (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "template",
			Usage: "Discovery template containing {name} and optionally {extension} (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "xdg",
			Usage: "Use XDG base directory templates for discovery",
		},
		&cli.StringFlag{
			Name:  "ext",
			Usage: "Extension substituted into templates",
			Value: dotconf.DefaultExtension,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Force the parser: auto, yaml, json, toml",
			Value: string(dotconf.FormatAuto),
		},
		&cli.StringFlag{
			Name:  "env",
			Usage: "Environment variable prefix to layer on top of files",
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "Override a value as key.path=value (repeatable)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: yaml, json, toml",
			Value:   "yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log discovery and loading to stderr",
		},
	}
}

// newBuilder configures a Builder from the global flags.
func newBuilder(c *cli.Context) (*dotconf.Builder, error) {
	format, err := dotconf.ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	b := dotconf.NewBuilder().
		WithFormat(format).
		WithExtension(c.String("ext")).
		WithNames(c.StringSlice("name")...).
		WithFiles(c.StringSlice("file")...).
		WithEnvPrefix(c.String("env")).
		WithLogger(newLogger(c))

	if templates := c.StringSlice("template"); len(templates) > 0 {
		b.WithTemplates(templates...)
	} else if c.Bool("xdg") {
		b.WithTemplates(dotconf.XDGTemplates()...)
	}

	var args []string
	for _, override := range c.StringSlice("set") {
		args = append(args, "--"+override)
	}
	b.WithArgs(args)

	return b, nil
}

func newLogger(c *cli.Context) *slog.Logger {
	if !c.Bool("verbose") {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func showAction(c *cli.Context) error {
	b, err := newBuilder(c)
	if err != nil {
		return err
	}
	ns, err := b.Build()
	if err != nil {
		return err
	}

	var value any = ns
	if path := c.Args().First(); path != "" {
		value = ns.Path(path)
		if !dotconf.IsConfigured(value) {
			return fmt.Errorf("%w: %s", dotconf.ErrNotConfigured, path)
		}
	}

	return render(c.App.Writer, c.String("output"), value)
}

func getAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("get requires a path argument")
	}

	b, err := newBuilder(c)
	if err != nil {
		return err
	}
	ns, err := b.Build()
	if err != nil {
		return err
	}

	value := ns.Path(path)
	switch v := value.(type) {
	case dotconf.Absent:
		return fmt.Errorf("%w: %s", dotconf.ErrNotConfigured, path)
	case *dotconf.Namespace:
		return render(c.App.Writer, c.String("output"), v)
	case string:
		fmt.Fprintln(c.App.Writer, v)
		return nil
	default:
		return render(c.App.Writer, "json", v)
	}
}

func pathsAction(c *cli.Context) error {
	names := c.StringSlice("name")
	if len(names) == 0 {
		return fmt.Errorf("paths requires at least one --name")
	}

	var templates []string
	if custom := c.StringSlice("template"); len(custom) > 0 {
		templates = custom
	} else if c.Bool("xdg") {
		templates = dotconf.XDGTemplates()
	}

	loader := dotconf.NewLoader(dotconf.LoadOptions{
		Templates: templates,
		Extension: c.String("ext"),
		Logger:    newLogger(c),
	})
	candidates, err := loader.Lookup(names...)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		marker := "-"
		if candidate.Found {
			marker = "+"
		}
		fmt.Fprintf(c.App.Writer, "%s %s\n", marker, candidate.Path)
	}
	return nil
}

// render writes a value to w in the requested output format.
func render(w io.Writer, output string, value any) error {
	if ns, ok := value.(*dotconf.Namespace); ok {
		if output == "toml" {
			return ns.Dump(w)
		}
		value = ns.AsMap()
	}

	switch output {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case "yaml", "toml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to render yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
