package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/bracket"
	"github.com/npillmayer/bracket/internal/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type flags struct {
	config  string
	trace   string
	grammar string
	verify  bool
	forest  string
}

func rootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "bracket [flags] START token[.TAG] ...",
		Short: "bracket - bracketing of part-of-speech tagged sentences",
		Long: `bracket parses a sentence of tagged tokens with a phrase-structure
grammar and prints every parse as a bracketed S-expression.

Example:
  bracket S the.Det big.Adj dog.N has.Aux barked.V

Categories of the shipped grammar:
  Det Adj N P Conj Aux V Adv C`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), f, cmd.Flags().Changed("verify"), args)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default: $"+config.EnvVar+" or ./bracket.toml)")
	cmd.Flags().StringVar(&f.trace, "trace", "", "trace level: error, info or debug")
	cmd.Flags().StringVar(&f.grammar, "grammar", "", "grammar file replacing the shipped grammar")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check acceptance with a second recognizer")
	cmd.Flags().StringVar(&f.forest, "forest", "", "write the parse forest to a GraphViz file")
	return cmd
}

func run(w io.Writer, f *flags, verifySet bool, args []string) error {
	if len(args) == 0 {
		return bracket.ErrNoStartSymbol
	}
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}
	if f.trace != "" {
		cfg.Trace.Level, cfg.Trace.Syntax = f.trace, f.trace
	}
	if f.grammar != "" {
		cfg.Grammar.File = f.grammar
	}
	if verifySet {
		cfg.Grammar.Verify = f.verify
	}
	if f.forest != "" {
		cfg.Grammar.Forest = f.forest
	}
	if err := setupTracing(cfg); err != nil {
		return err
	}
	opts := []bracket.Option{bracket.Verify(cfg.Grammar.Verify)}
	if cfg.Grammar.File != "" {
		text, err := os.ReadFile(cfg.Grammar.File)
		if err != nil {
			return fmt.Errorf("cannot read grammar: %w", err)
		}
		opts = append(opts, bracket.WithGrammar(string(text)))
	}
	if cfg.Grammar.Forest != "" {
		out, err := os.Create(cfg.Grammar.Forest)
		if err != nil {
			return fmt.Errorf("cannot create forest file: %w", err)
		}
		defer out.Close()
		opts = append(opts, bracket.ExportForest(out))
	}
	// units may contain several tokens when quoted by the caller
	units := append([]string{args[0]}, strings.Fields(strings.Join(args[1:], " "))...)
	_, err = bracket.Run(w, units, opts...)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

func setupTracing(cfg *config.Config) error {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := config.SetLevel(gtrace.CoreTracer, cfg.Trace.Level); err != nil {
		return err
	}
	return config.SetLevel(gtrace.SyntaxTracer, cfg.Trace.Syntax)
}
