// Command build-dictation assembles a dictation from a delimited word-pair
// file and stores it, without going through the HTTP API.
//
// Flags:
//
//	--file       path to the word-pair file (required)
//	--title      dictation title (generated when empty)
//	--first      first language (default: English)
//	--second     second language (default: Spanish)
//	--delimiter  field delimiter (default: upload.delimiter from config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dictation-builder/internal/app"
	"github.com/heartmarshall/dictation-builder/internal/config"
	"github.com/heartmarshall/dictation-builder/internal/service/dictation"
	"github.com/heartmarshall/dictation-builder/internal/service/extraction"
)

func main() {
	fileFlag := flag.String("file", "", "path to the word-pair file")
	titleFlag := flag.String("title", "", "dictation title (generated when empty)")
	firstFlag := flag.String("first", "English", "first language")
	secondFlag := flag.String("second", "Spanish", "second language")
	delimFlag := flag.String("delimiter", "", "field delimiter (default: from config)")
	flag.Parse()

	if *fileFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	raw, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read word pairs", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	delimiter := cfg.Upload.Delimiter
	if *delimFlag != "" {
		delimiter = *delimFlag
	}
	pairs, err := extraction.ParseText(string(raw), delimiter)
	if err != nil {
		logger.Error("parse word pairs", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	components, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer components.Close()

	id, err := components.Dictations.Create(ctx, dictation.CreateInput{
		Title:          *titleFlag,
		FirstLanguage:  *firstFlag,
		SecondLanguage: *secondFlag,
		WordPairs:      pairs,
	})
	if err != nil {
		logger.Error("create dictation", slog.String("error", err.Error()))
		components.Close()
		os.Exit(1)
	}

	logger.Info("dictation created",
		slog.String("dictation_id", id.String()),
		slog.Int("pairs", len(pairs)),
	)
	fmt.Printf("%s\n/dictation/%s/play\n", id, id)
}
