package bracket

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bracket/ebnf"
	"github.com/npillmayer/bracket/sexpr"
	"github.com/npillmayer/bracket/tagging"
	"github.com/npillmayer/gorgo/lr/sppf"
)

// Errors of Run.
var (
	ErrNoStartSymbol = errors.New("no start symbol given")
	ErrVerification  = errors.New("recognizers disagree on input")
)

// Option configures a call to Run.
type Option func(*options)

type options struct {
	grammar string
	verify  bool
	forest  *os.File
}

// WithGrammar replaces the shipped grammar by grammar text g.
func WithGrammar(g string) Option {
	return func(opts *options) {
		opts.grammar = g
	}
}

// Verify sets an option to have the input checked by a second recognizer
// (see ebnf.Parser.Recognize). If the recognizers disagree on whether the
// input is derivable, Run returns ErrVerification.
func Verify(b bool) Option {
	return func(opts *options) {
		opts.verify = b
	}
}

// ExportForest sets an option to write the shared packed parse forest of the
// second recognizer to f, in GraphViz format.
func ExportForest(f *os.File) Option {
	return func(opts *options) {
		opts.forest = f
	}
}

// Run brackets a sentence. args[0] is the start symbol, args[1:] are the
// units of the tagged sentence. Every parse is written to w as an S-expression
// on a line of its own.
//
// Run returns the number of parses written. A sentence without a parse is not
// an error.
func Run(w io.Writer, args []string, opts ...Option) (int, error) {
	o := &options{grammar: Grammar}
	for _, opt := range opts {
		opt(o)
	}
	if len(args) == 0 || args[0] == "" {
		return 0, ErrNoStartSymbol
	}
	start := args[0]
	g, err := ebnf.Compile(o.grammar, start)
	if err != nil {
		return 0, fmt.Errorf("cannot compile grammar: %w", err)
	}
	tg := tagging.ClassifyArgs(args[1:])
	CT().Infof("bracketing %d tokens with start symbol %s", tg.Len(), start)
	parser := ebnf.NewParser(g, tg.Terminals())
	forest, err := parser.Parse(tg.Tokens())
	if err != nil {
		return 0, err
	}
	defer forest.Close()
	n, err := sexpr.Write(w, forest.Trees())
	if err != nil {
		return n, err
	}
	CT().Infof("%d parse(s)", n)
	if o.verify || o.forest != nil {
		err = recognize(parser, tg.Tokens(), forest.Accepted(), o)
	}
	return n, err
}

func recognize(parser *ebnf.Parser, tokens []string, accepted bool, o *options) error {
	accept, forest, err := parser.Recognize(tokens)
	if err != nil {
		return fmt.Errorf("second recognizer failed: %w", err)
	}
	if o.verify && accept != accepted {
		return fmt.Errorf("%w: accepted = %v, second opinion = %v", ErrVerification, accepted, accept)
	}
	if o.forest != nil && forest != nil {
		sppf.ToGraphViz(forest, o.forest)
		CT().Infof("exported parse forest to %s", o.forest.Name())
	}
	return nil
}
