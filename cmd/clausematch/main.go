// Copyright 2025 Dachico Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	clausematch "github.com/dachico/clausematch"
	"github.com/dachico/clausematch/catalogue"
	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/mapping"
	"github.com/dachico/clausematch/segment"
	"github.com/dachico/clausematch/translate/llm"
)

func main() {
	app := &cli.App{
		Name:  "clausematch",
		Usage: "Match client insurance clauses against a standardized clause library",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "match",
				Usage:  "Match a clause document against the library",
				Action: matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "library",
						Aliases:  []string{"L"},
						Usage:    "Clause library file (.json or .csv)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Client clause document (plain text, one paragraph per line)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Lexicon configuration file",
					},
					&cli.StringFlag{
						Name:  "mappings",
						Usage: "User mapping file",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Translation cache directory",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "OpenAI-compatible translation endpoint",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Translation model name",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the JSON report to a file instead of stdout",
					},
				},
			},
			{
				Name:  "mappings",
				Usage: "Manage user clause mappings",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add or update a mapping",
						ArgsUsage: "<english> <chinese> [library-name]",
						Action:    mappingsAddCommand,
						Flags: []cli.Flag{
							mappingFileFlag(),
							&cli.StringFlag{
								Name:  "notes",
								Usage: "Free-form notes",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List all mappings",
						Action: mappingsListCommand,
						Flags:  []cli.Flag{mappingFileFlag()},
					},
					{
						Name:      "delete",
						Usage:     "Delete a mapping by English name",
						ArgsUsage: "<english>",
						Action:    mappingsDeleteCommand,
						Flags:     []cli.Flag{mappingFileFlag()},
					},
					{
						Name:      "import",
						Usage:     "Import mappings from a JSON file",
						ArgsUsage: "<file>",
						Action:    mappingsImportCommand,
						Flags:     []cli.Flag{mappingFileFlag()},
					},
					{
						Name:      "export",
						Usage:     "Export mappings to a shareable JSON file",
						ArgsUsage: "<file>",
						Action:    mappingsExportCommand,
						Flags:     []cli.Flag{mappingFileFlag()},
					},
				},
			},
			{
				Name:  "config",
				Usage: "Inspect the lexicon configuration",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "Print lexicon table sizes and thresholds",
						Action: configStatsCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "config",
								Usage: "Lexicon configuration file",
							},
						},
					},
					{
						Name:      "init",
						Usage:     "Write the default configuration to a file",
						ArgsUsage: "<file>",
						Action:    configInitCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func mappingFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Mapping file",
		Value:   "clause_mappings.json",
	}
}

func loadLibrary(path string) ([]core.LibraryRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return catalogue.LoadCSV(path)
	default:
		return catalogue.LoadJSON(path)
	}
}

func matchCommand(c *cli.Context) error {
	records, err := loadLibrary(c.String("library"))
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	data, err := os.ReadFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	clauses, titleOnly := segment.Segment(strings.Split(string(data), "\n"))
	if len(clauses) == 0 {
		return fmt.Errorf("no clauses found in %s", c.String("input"))
	}

	opts := []clausematch.EngineOption{
		clausematch.WithConfigPath(c.String("config")),
		clausematch.WithUserMappings(c.String("mappings")),
	}
	if cache := c.String("cache"); cache != "" {
		opts = append(opts, clausematch.WithTranslationCache(cache))
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, clausematch.WithWorkers(workers))
	}
	if host := c.String("llm-host"); host != "" {
		provider, err := llm.NewProvider(llm.Config{
			Host:  host,
			Model: c.String("llm-model"),
		})
		if err != nil {
			return fmt.Errorf("failed to create translation provider: %w", err)
		}
		defer provider.Close()
		opts = append(opts, clausematch.WithTranslationProvider(provider))
	}

	engine, err := clausematch.NewEngine(records, opts...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}
	defer engine.Close()

	report, err := engine.MatchAll(context.Background(), clauses, titleOnly)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if path := c.String("output"); path != "" {
		return os.WriteFile(path, append(out, '\n'), 0o644)
	}
	fmt.Println(string(out))
	return nil
}

func withMappingStore(c *cli.Context, fn func(store *mapping.Store) (bool, error)) error {
	path := c.String("file")
	store := mapping.NewStore()
	if err := store.Load(path); err != nil {
		return fmt.Errorf("failed to load mappings: %w", err)
	}

	save, err := fn(store)
	if err != nil {
		return err
	}
	if save {
		return store.Save(path)
	}
	return nil
}

func mappingsAddCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: mappings add <english> <chinese> [library-name]")
	}
	return withMappingStore(c, func(store *mapping.Store) (bool, error) {
		created := store.Add(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), c.String("notes"), "manual")
		if created {
			fmt.Println("mapping added")
		} else {
			fmt.Println("mapping updated")
		}
		return true, nil
	})
}

func mappingsListCommand(c *cli.Context) error {
	return withMappingStore(c, func(store *mapping.Store) (bool, error) {
		for _, m := range store.All() {
			line := fmt.Sprintf("%s -> %s", m.English, m.Chinese)
			if m.Library != "" {
				line += " -> " + m.Library
			}
			fmt.Println(line)
		}
		fmt.Printf("%d mappings\n", store.Len())
		return false, nil
	})
}

func mappingsDeleteCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: mappings delete <english>")
	}
	return withMappingStore(c, func(store *mapping.Store) (bool, error) {
		if !store.Delete(c.Args().Get(0)) {
			return false, fmt.Errorf("no mapping for %q", c.Args().Get(0))
		}
		fmt.Println("mapping deleted")
		return true, nil
	})
}

func mappingsImportCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: mappings import <file>")
	}
	return withMappingStore(c, func(store *mapping.Store) (bool, error) {
		count, err := store.ImportJSON(c.Args().Get(0))
		if err != nil {
			return false, fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("%d mappings imported\n", count)
		return count > 0, nil
	})
}

func mappingsExportCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: mappings export <file>")
	}
	return withMappingStore(c, func(store *mapping.Store) (bool, error) {
		if err := store.ExportJSON(c.Args().Get(0)); err != nil {
			return false, fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("%d mappings exported to %s\n", store.Len(), c.Args().Get(0))
		return false, nil
	})
}

func configStatsCommand(c *cli.Context) error {
	lex := lexicon.Load(c.String("config"))

	stats := lex.Stats()
	for _, name := range []string{"vocabulary", "semantic_aliases", "keyword_groups", "exact_overrides", "penalty_keywords", "noise_words"} {
		fmt.Printf("%-18s %d\n", name, stats[name])
	}

	th := lex.Thresholds()
	fmt.Printf("thresholds   exact=%.2f semantic=%.2f keyword=%.2f fuzzy=%.2f accept=%.2f\n",
		th.ExactMin, th.SemanticMin, th.KeywordMin, th.FuzzyMin, th.AcceptMin)
	return nil
}

func configInitCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: config init <file>")
	}
	path := c.Args().Get(0)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	lex := lexicon.New()
	if err := lex.Save(path); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	fmt.Printf("default configuration written to %s\n", path)
	return nil
}
