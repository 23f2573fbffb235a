// Command buildindex builds the persisted document index the chat page
// answers from, and can query it from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/schoolhub/internal/pkg/docindex"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "buildindex",
		Usage: "build and query the school document index",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "index every .txt and .md file under a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "docs", Value: "docs", Usage: "directory holding the school documents", EnvVars: []string{"CHAT_DOCUMENT_DIR"}},
					&cli.StringFlag{Name: "out", Value: "index_store/school.bleve", Usage: "directory to write the index to", EnvVars: []string{"CHAT_INDEX_PATH"}},
				},
				Action: build,
			},
			{
				Name:      "query",
				Usage:     "answer a question from a saved index",
				ArgsUsage: "QUESTION",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "index", Value: "index_store/school.bleve", Usage: "saved index directory", EnvVars: []string{"CHAT_INDEX_PATH"}},
					&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second},
				},
				Action: query,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("buildindex failed")
		os.Exit(1)
	}
}

func build(c *cli.Context) error {
	start := time.Now()
	index := docindex.NewBleveIndex(c.String("out"))
	if err := index.Build(c.Context, c.String("docs")); err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	defer index.Close()
	logger.Info().
		Str("docs", c.String("docs")).
		Str("out", c.String("out")).
		Int("passages", index.Len()).
		Dur("took", time.Since(start)).
		Msg("Index written")
	return nil
}

func query(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("a question is required", 2)
	}

	index := docindex.NewBleveIndex("")
	if err := index.Load(c.String("index")); err != nil {
		return fmt.Errorf("load index: %w", err)
	}
	defer index.Close()

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	answer, err := index.Query(ctx, c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, answer)
	return nil
}
