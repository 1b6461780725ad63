package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/petrel-labs/markovtext/pkg/corpus"
	"github.com/petrel-labs/markovtext/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const usage = `usage: markovtext [-config path] <command> [arguments]

commands:
  add <name> <file>      store a corpus from a .txt or .pdf file
  list                   list stored corpora
  remove <name>          delete a stored corpus
  generate <name>        build a model from a stored corpus and print sentences
  version                print build information
`

func main() {
	configPath := flag.String("config", "./config.json", "path to the config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "markovtext: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	config, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if args[0] == "version" {
		fmt.Printf("markovtext %s (%s, built %s)\n", Version, Commit, BuildDate)
		return nil
	}

	if err = os.MkdirAll(config.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := initDB(config.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	if err = corpus.SetupSchema(db); err != nil {
		return fmt.Errorf("failed to set up corpus schema: %w", err)
	}

	store, err := corpus.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create corpus store: %w", err)
	}
	defer store.Close()
	store.SetLogger(logger)

	ctx := context.Background()

	switch args[0] {
	case "add":
		return runAdd(ctx, store, args[1:])
	case "list":
		return runList(ctx, store)
	case "remove":
		return runRemove(ctx, store, args[1:])
	case "generate":
		return runGenerate(ctx, store, logger, config, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runAdd(ctx context.Context, store *corpus.Store, args []string) error {
	if len(args) != 2 {
		return errors.New("add requires a corpus name and a file path")
	}
	name, path := args[0], args[1]

	content, err := corpus.LoadFile(path)
	if err != nil {
		return err
	}
	if err := store.Add(ctx, name, content); err != nil {
		return err
	}
	fmt.Printf("stored corpus %q (%d bytes)\n", name, len(content))
	return nil
}

func runList(ctx context.Context, store *corpus.Store) error {
	infos, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no corpora stored")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-24s %10d bytes  %s\n", info.Name, info.Size, info.AddedAt.Format("2006-01-02"))
	}
	return nil
}

func runRemove(ctx context.Context, store *corpus.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("remove requires a corpus name")
	}
	return store.Remove(ctx, args[0])
}

func runGenerate(ctx context.Context, store *corpus.Store, logger *slog.Logger, config *Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	order := fs.Int("order", config.DefaultOrder, "phrase length of the model")
	count := fs.Int("count", config.SentenceCount, "number of sentences to generate")
	seed := fs.Uint64("seed", 0, "seed for replayable output (0 uses the shared generator)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("generate requires a corpus name")
	}

	content, err := store.Get(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	// Models live only for the duration of this invocation; each run trains
	// from the stored text again.
	builder := markov.NewBuilder(markov.WithLogger(logger))
	model, err := builder.Build(content, *order)
	if err != nil {
		return fmt.Errorf("failed to build model: %w", err)
	}

	stats := model.Stats()
	logger.Debug("Model ready",
		slog.Int("order", stats.Order),
		slog.Int("starter_phrases", stats.StarterPhrases),
		slog.Int("phrases", stats.Phrases),
		slog.Int("transitions", stats.Transitions),
		slog.Int("max_fanout", stats.MaxFanout),
	)

	var rng markov.RandomSource
	if *seed != 0 {
		rng = markov.NewSeededSource(*seed, 0)
	} else {
		rng = markov.NewRandSource()
	}

	for i := 0; i < *count; i++ {
		sentence, err := model.Generate(rng, markov.WithWordLimit(config.WordLimit))
		if err != nil {
			var limitErr *markov.WordLimitError
			if errors.As(err, &limitErr) {
				logger.Warn("Sentence hit the word limit, output truncated",
					slog.Int("words", limitErr.Words),
				)
				fmt.Println(limitErr.Partial)
				continue
			}
			return err
		}
		fmt.Println(sentence)
	}
	return nil
}
