package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BRACKET_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommand(t *testing.T) {
	out, err := execute(t, "NP", "the.Det", "big.Adj", "dog.N")
	require.NoError(t, err)
	assert.Equal(t, "[NP [Det the] [AdjP [Adj big]] [N dog]]\n", out)
}

func TestCommandQuotedSentence(t *testing.T) {
	out, err := execute(t, "NP", "the.Det big.Adj  dog.N")
	require.NoError(t, err)
	assert.Equal(t, "[NP [Det the] [AdjP [Adj big]] [N dog]]\n", out)
}

func TestCommandNoParse(t *testing.T) {
	out, err := execute(t, "S", "the.Det", "dog.N", "barked.V")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCommandNoStartSymbol(t *testing.T) {
	_, err := execute(t)
	assert.True(t, errors.Is(err, bracket.ErrNoStartSymbol))
}

func TestCommandGrammarFile(t *testing.T) {
	dir := t.TempDir()
	grammar := filepath.Join(dir, "tiny.ebnf")
	require.NoError(t, os.WriteFile(grammar, []byte("S := Det N ; # tiny\n"), 0644))
	forest := filepath.Join(dir, "forest.dot")
	out, err := execute(t, "--grammar", grammar, "--verify", "--forest", forest, "--trace", "error",
		"S", "the.Det", "dog.N")
	require.NoError(t, err)
	assert.Equal(t, "[S [Det the] [N dog]]\n", out)
	dot, err := os.ReadFile(forest)
	require.NoError(t, err)
	assert.NotEmpty(t, dot)
}

func TestCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.ebnf"), []byte("S := N ;"), 0644))
	cfg := filepath.Join(dir, "bracket.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[grammar]\nfile = \"tiny.ebnf\"\n"), 0644))
	out, err := execute(t, "--config", cfg, "S", "dog.N")
	require.NoError(t, err)
	assert.Equal(t, "[S [N dog]]\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "--trace", "loud", "S", "dog.N")
	assert.Error(t, err)
	_, err = execute(t, "--grammar", filepath.Join(t.TempDir(), "missing.ebnf"), "S", "dog.N")
	assert.Error(t, err)
	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "S", "dog.N")
	assert.Error(t, err)
}
