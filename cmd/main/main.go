package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/CTAG07/Utricularia/pkg/markov"
)

const usage = "usage: utricularia <windowLength> <initialText> <generatedTextLength> <mode> <corpusPath>\n" +
	"  mode: \"random\" for unseeded generation, anything else for the fixed seed"

func main() {
	config, err := LoadConfig("./config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))

	if err := run(config, logger, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n%s\n", err, usage)
		os.Exit(2)
	}
}

// run parses the positional arguments, trains a model on the corpus, and
// prints the generated text to stdout.
func run(config *Config, logger *slog.Logger, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("expected 5 arguments, got %d", len(args))
	}

	windowLength, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid window length %q: %w", args[0], err)
	}
	initialText := args[1]
	generatedTextLength, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid generated text length %q: %w", args[2], err)
	}
	if generatedTextLength < 0 {
		return fmt.Errorf("generated text length must not be negative, got %d", generatedTextLength)
	}
	mode := args[3]
	corpusPath := args[4]

	opts := []markov.ModelOption{markov.WithLogger(logger)}
	if mode != "random" {
		opts = append(opts, markov.WithSeed(config.FixedSeed))
	}

	model, err := markov.NewModel(windowLength, opts...)
	if err != nil {
		return err
	}

	corpus, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("could not open corpus: %w", err)
	}
	defer func(corpus *os.File) {
		_ = corpus.Close()
	}(corpus)

	if err = model.Train(context.Background(), markov.NewReaderSource(corpus)); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	var genOpts []markov.GenerateOption
	if config.Temperature != 1.0 {
		genOpts = append(genOpts, markov.WithTemperature(config.Temperature))
	}
	if config.TopK > 0 {
		genOpts = append(genOpts, markov.WithTopK(config.TopK))
	}

	fmt.Println(model.Generate(initialText, generatedTextLength, genOpts...))
	return nil
}
