package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"cssnap", "--config", filepath.Join("testdata", "quiet.yaml")}, args...))
	return out.String(), err
}

func TestSnapshotHTML(t *testing.T) {
	out, err := runApp(t, "--css", "testdata/styles.css", "--select", "p", "testdata/page.html")
	require.NoError(t, err)
	expected := strings.Join([]string{
		`<p`,
		`  class="css-text { color: red; } plain"`,
		`>`,
		`  World`,
		`</p>`,
		``,
		`.css-text:hover { color: blue; }`,
		``,
	}, "\n")
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotInlineStyles(t *testing.T) {
	out, err := runApp(t, "--inline-styles", "testdata/page.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<main"), "expected first element of body, is\n%s", out)
	assert.Contains(t, out, "css-title { font-size: 2em; }")
	assert.Contains(t, out, `class="css-main"`)
}

func TestSnapshotJSON(t *testing.T) {
	out, err := runApp(t, "--css", "testdata/styles.css", "--indent", "4", "testdata/tree.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<button\n    className=\"css-text { color: red; }\"\n>"), "unexpected output\n%s", out)
}

func TestDumpTree(t *testing.T) {
	out, err := runApp(t, "--tree", "testdata/page.html")
	require.NoError(t, err)
	assert.Contains(t, out, "<main> .css-main")
	out, err = runApp(t, "--dot", "testdata/tree.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
}

func TestLogsStayOffOutput(t *testing.T) {
	app := newApp()
	var out, errs bytes.Buffer
	app.Writer, app.ErrWriter = &out, &errs
	err := app.Run(context.Background(), []string{"cssnap", "--config", filepath.Join("testdata", "normal.yaml"),
		"--select", "table", "testdata/page.html"})
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errs.String(), "Nothing to print")
}

func TestErrorsDoNotExit(t *testing.T) {
	exiter := cli.OsExiter
	defer func() { cli.OsExiter = exiter }()
	var codes []int
	cli.OsExiter = func(code int) { codes = append(codes, code) }
	_, err := runApp(t, "--css", "testdata/missing.css", "--css", "testdata/missing2.css", "testdata/page.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to load style sheets")
	assert.Empty(t, codes, "command must return its errors to main")
}

func TestErrors(t *testing.T) {
	_, err := runApp(t, "--css", "testdata/missing.css", "--css", "testdata/missing2.css", "testdata/page.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.css")
	assert.Contains(t, err.Error(), "missing2.css")
	_, err = runApp(t, "--probe", "everything", "testdata/page.html")
	assert.Error(t, err)
	_, err = runApp(t, "--select", "p[", "testdata/page.html")
	assert.Error(t, err)
	_, err = runApp(t, "testdata/page.html", "extra")
	assert.Error(t, err)
}
