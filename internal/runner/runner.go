package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	"paracheck/internal/checker"
	"paracheck/internal/config"
)

type Options struct {
	Dictionary     string
	Text           string
	Input          string
	Config         string
	GenerateConfig string
	Metric         string
	RedisAddr      string
	RedisKey       string
	JSON           bool
	Verbose        bool
	Silent         bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Spell-correct a paragraph against a word list and assign it a topic.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Text, "text", "t", "", "paragraph to check"),
		flagSet.StringVarP(&opts.Input, "file", "f", "", "file to read the paragraph from (default stdin)"),
		flagSet.StringVarP(&opts.Dictionary, "dictionary", "d", "", "plain-text file the dictionary is built from"),
	)

	flagSet.CreateGroup("matching", "Matching",
		flagSet.StringVarP(&opts.Metric, "metric", "m", "", "similarity metric (ratio, levenshtein, osa, jarowinkler)"),
		flagSet.StringVar(&opts.RedisAddr, "redis-addr", "", "redis address holding extra dictionary words"),
		flagSet.StringVar(&opts.RedisKey, "redis-key", "", "redis set with extra dictionary words"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.JSON, "json", "j", false, "write the result as JSON"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", "paracheck config file (yaml)"),
		flagSet.StringVar(&opts.GenerateConfig, "generate-config", "", "write a sample config file and exit"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	return opts
}

// Settings merges the config file, the environment and the flags, in that
// order of precedence from lowest to highest.
func (o *Options) Settings() (*config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		fileCfg, err := config.NewConfig(o.Config)
		if err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", o.Config, err)
		}
		cfg = *fileCfg
	}
	cfg.ApplyEnv()
	if o.Dictionary != "" {
		cfg.Dictionary = o.Dictionary
	}
	if o.Metric != "" {
		cfg.Metric = o.Metric
	}
	if o.RedisAddr != "" {
		cfg.Redis.Addr = o.RedisAddr
	}
	if o.RedisKey != "" {
		cfg.Redis.Key = o.RedisKey
	}
	return &cfg, cfg.Validate()
}

// readInput prefers -text, then -file, then stdin.
func (o *Options) readInput(stdin io.Reader) (string, error) {
	switch {
	case o.Text != "":
		return o.Text, nil
	case o.Input != "":
		if !fileutil.FileExists(o.Input) {
			return "", errorutil.NewWithTag("paracheck", "input file %s does not exist", o.Input)
		}
		bin, err := os.ReadFile(o.Input)
		if err != nil {
			return "", err
		}
		return string(bin), nil
	case stdin != nil:
		bin, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(bin), nil
	}
	return "", errorutil.NewWithTag("paracheck", "no input found")
}

// Run checks one paragraph and writes the result to w. stdin may be nil
// when nothing is piped in.
func Run(ctx context.Context, o *Options, stdin io.Reader, w io.Writer) error {
	if o.GenerateConfig != "" {
		if err := config.GenerateSample(o.GenerateConfig); err != nil {
			return err
		}
		gologger.Info().Msgf("Sample config written to %s", o.GenerateConfig)
		return nil
	}

	cfg, err := o.Settings()
	if err != nil {
		return err
	}
	text, err := o.readInput(stdin)
	if err != nil {
		return err
	}

	c, err := checker.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	res, err := c.Process(text)
	if err != nil {
		return err
	}

	if o.JSON {
		out, err := MarshalNoEscape(res, true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	_, err = io.WriteString(w, Render(res))
	return err
}

// Render formats res the way it is shown to a user.
func Render(res *checker.Result) string {
	var sb strings.Builder
	sb.WriteString("Spelling Corrections & Suggestions:\n")
	for _, c := range res.Corrections {
		sb.WriteString(c.String())
		sb.WriteString("\n\n")
	}
	sb.WriteString("Corrected Paragraph:\n")
	sb.WriteString(res.Corrected)
	sb.WriteString("\n\nParagraph Category: ")
	sb.WriteString(res.Category)
	sb.WriteString("\n")
	return sb.String()
}
