// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/cinemind"
	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/ai/ollamacli"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cinemind",
		Usage: "Chat with a media catalog using retrieval-grounded replies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "chat",
				Usage:     "Answer a single query against the catalog",
				ArgsUsage: "QUERY",
				Action:    chatCommand,
				Flags:     append(catalogFlags(), aiFlags()...),
			},
			{
				Name:   "repl",
				Usage:  "Answer queries interactively from stdin",
				Action: replCommand,
				Flags:  append(catalogFlags(), aiFlags()...),
			},
			{
				Name:   "warm",
				Usage:  "Precompute the embedding cache for a catalog",
				Action: warmCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"c"},
			Usage:    "Path to the catalog CSV file",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Path to the embedding cache directory (omit to disable caching)",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Worker pool size for startup embedding (0 uses the default)",
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "tagger-model",
			Usage: "Model name for named-entity tagging",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "generator-model",
			Usage: "Model name for response generation",
			Value: "mistral",
		},
		&cli.BoolFlag{
			Name:  "ollama-cli",
			Usage: "Generate responses through the local ollama binary instead of the API",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Response generation timeout",
			Value: 60 * time.Second,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log each pipeline stage",
		},
	}
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	assistant, err := buildAssistant(ctx, c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	reply, err := answer(ctx, c, assistant, query)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func replCommand(c *cli.Context) error {
	ctx := context.Background()

	assistant, err := buildAssistant(ctx, c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	fmt.Fprintf(os.Stderr, "Catalog loaded: %d entries. Type a query, or \"exit\" to quit.\n", assistant.Catalog().Len())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}

		reply, err := answer(ctx, c, assistant, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(reply)
		fmt.Println()
	}
	return scanner.Err()
}

func warmCommand(c *cli.Context) error {
	ctx := context.Background()

	cachePath := c.String("cache")
	if cachePath == "" {
		return fmt.Errorf("cache path is required for warming")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)

	start := time.Now()
	assistant, err := cinemind.NewAssistant(ctx, c.String("catalog"),
		cinemind.WithAIConfig(aiConfig),
		cinemind.WithCachePath(cachePath),
		cinemind.WithPoolSize(c.Int("pool-size")),
	)
	if err != nil {
		return fmt.Errorf("warming failed: %w", err)
	}
	defer assistant.Close()

	fmt.Fprintf(os.Stderr, "Embedded %d entries in %s; cache at %s\n",
		assistant.Catalog().Len(), time.Since(start).Round(time.Millisecond), cachePath)
	return nil
}

func buildAssistant(ctx context.Context, c *cli.Context) (*cinemind.Assistant, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithTaggerModel(c.String("tagger-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithGenerateTimeout(c.Duration("timeout")),
	)

	opts := []cinemind.AssistantOption{
		cinemind.WithAIConfig(aiConfig),
	}
	if path := c.String("cache"); path != "" {
		opts = append(opts, cinemind.WithCachePath(path))
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, cinemind.WithPoolSize(size))
	}
	if c.Bool("ollama-cli") {
		generator, err := ollamacli.NewGenerator(c.String("generator-model"), c.Duration("timeout"))
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama generator: %w", err)
		}
		opts = append(opts, cinemind.WithGenerator(generator))
	}

	return cinemind.NewAssistant(ctx, c.String("catalog"), opts...)
}

func answer(ctx context.Context, c *cli.Context, assistant *cinemind.Assistant, query string) (string, error) {
	if c.Bool("verbose") {
		return assistant.ChatWithMonitor(ctx, query, &logMonitor{logger: slog.Default()})
	}
	return assistant.Chat(ctx, query)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
