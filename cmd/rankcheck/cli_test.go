package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/rankcheck/cmd/rankcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "find", "history"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"serve"})
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cli.DB)
	assert.Equal(t, "https://www.google.co.uk/search", cli.SearchURL)
	assert.Equal(t, ":5000", cli.Serve.Addr)
	assert.Equal(t, []string{"http://localhost:8080"}, cli.Serve.AllowOrigin)
	assert.InDelta(t, 5.0, cli.Serve.Rate, 0)
	assert.Equal(t, 10, cli.Serve.Burst)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	for _, cmd := range []string{"serve", "find", "history"} {
		assert.Contains(t, stdout.String(), cmd)
	}
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_FindThenHistory(t *testing.T) {
	t.Parallel()

	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body>
<div class="egMi0 kCrYT"><a href="/url?q=https://other.com">x</a></div>
<div class="egMi0 kCrYT"><a href="/url?q=https://www.Example.com/page">y</a></div>
</body></html>`)
	}))
	t.Cleanup(engine.Close)

	dbPath := filepath.Join(t.TempDir(), "history.db")
	common := []string{"--db", dbPath, "--search-url", engine.URL + "/search"}

	stdout := &bytes.Buffer{}
	err := main.NewMain().Run(context.Background(),
		append(append([]string{}, common...), "find", "e-commerce platform", "example.com"),
		stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "position(s): 2")

	stdout.Reset()
	err = main.NewMain().Run(context.Background(),
		append(append([]string{}, common...), "find", "e-commerce platform", "missing.org"),
		stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "not found")

	stdout.Reset()
	err = main.NewMain().Run(context.Background(),
		append(append([]string{}, common...), "history"),
		stdout, &bytes.Buffer{})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "missing.org")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("example.com")), bytes.Index(stdout.Bytes(), []byte("missing.org")))
}
