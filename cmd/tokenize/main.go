// Command tokenize reads one document per line from files or stdin and
// writes one JSON object per document to stdout.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dcossyleon/smltar"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// envOptions are overrides applied on top of the config file, so a
// corpus job can switch lexicons without editing YAML.
type envOptions struct {
	LogLevel       string `env:"SMLTAR_LOG_LEVEL" envDefault:"info"`
	Mode           string `env:"SMLTAR_MODE"`
	StopwordSource string `env:"SMLTAR_STOPWORDS"`
}

func main() {
	configPath := flag.String("config", "", "path to YAML tokenization config")
	mode := flag.String("mode", "", "tokenization mode (words, characters, ngrams, character_ngrams, regex)")
	pattern := flag.String("pattern", "", "extraction pattern for regex mode")
	n := flag.Int("n", 0, "maximum n-gram width")
	nMin := flag.Int("nmin", 0, "minimum n-gram width")
	lowercase := flag.Bool("lowercase", false, "lowercase token text")
	stopwords := flag.String("stopwords", "", "stopword lexicon (snowball, smart)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(Version)
		return
	}

	// The .env file is optional.
	_ = godotenv.Load()
	var opts envOptions
	if err := env.Parse(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse environment: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(opts.LogLevel),
	}))
	slog.SetDefault(logger)

	cfg, err := buildConfig(*configPath, opts, flagOverrides{
		mode:      *mode,
		pattern:   *pattern,
		n:         *n,
		nMin:      *nMin,
		lowercase: *lowercase,
		stopwords: *stopwords,
	})
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	tok, err := smltar.New(cfg)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting tokenize",
		"version", Version,
		"mode", cfg.Mode,
		"inputs", flag.NArg(),
	)

	out := json.NewEncoder(os.Stdout)
	exitCode := 0
	if flag.NArg() == 0 {
		if err := run(tok, os.Stdin, out, logger); err != nil {
			exitCode = 1
		}
	} else {
		for _, path := range flag.Args() {
			f, err := os.Open(path)
			if err != nil {
				logger.Error("open input", "path", path, "error", err)
				exitCode = 1
				continue
			}
			if err := run(tok, f, out, logger); err != nil {
				exitCode = 1
			}
			f.Close()
		}
	}
	os.Exit(exitCode)
}

type flagOverrides struct {
	mode      string
	pattern   string
	n         int
	nMin      int
	lowercase bool
	stopwords string
}

// buildConfig layers the YAML file, then environment overrides, then
// command-line flags.
func buildConfig(path string, opts envOptions, flags flagOverrides) (smltar.Config, error) {
	cfg := smltar.Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}
	if opts.Mode != "" {
		cfg.Mode = smltar.Mode(opts.Mode)
	}
	if opts.StopwordSource != "" {
		cfg.StopwordSource = opts.StopwordSource
	}
	if flags.mode != "" {
		cfg.Mode = smltar.Mode(flags.mode)
	}
	if flags.pattern != "" {
		cfg.Pattern = flags.pattern
	}
	if flags.n != 0 {
		cfg.N = flags.n
	}
	if flags.nMin != 0 {
		cfg.NMin = flags.nMin
	}
	if flags.lowercase {
		cfg.Lowercase = true
	}
	if flags.stopwords != "" {
		cfg.StopwordSource = flags.stopwords
	}
	return cfg, nil
}

// docResult is the output record for one document.
type docResult struct {
	Index  int            `json:"index"`
	Tokens []smltar.Token `json:"tokens"`
	Error  string         `json:"error,omitempty"`
}

// run tokenizes one line-per-document stream. Malformed documents are
// reported in their output records and do not stop the stream.
func run(tok *smltar.Tokenizer, r io.Reader, out *json.Encoder, logger *slog.Logger) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var docs []string
	for sc.Scan() {
		docs = append(docs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		logger.Error("read input", "error", err)
		return err
	}

	var failed int
	for _, res := range tok.TokenizeBatch(docs) {
		rec := docResult{Index: res.Index, Tokens: res.Tokens}
		if res.Err != nil {
			rec.Error = res.Err.Error()
			failed++
		}
		if err := out.Encode(rec); err != nil {
			logger.Error("write output", "error", err)
			return err
		}
	}
	logger.Info("tokenized batch", "documents", len(docs), "failed", failed)
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
