// Command cssnap renders an HTML, XML or test-renderer JSON file as a
// snapshot, with generated class names substituted by the CSS they resolve
// to.
//
//	cssnap --css styles.css page.html
//	cssnap --inline-styles --select 'main .card' page.html
//	cssnap --json --css emotion.css tree.json
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/npillmayer/cssnap"
	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/domdbg"
	"github.com/npillmayer/cssnap/dom/htmlnode"
	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/npillmayer/cssnap/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cssnap/dom/testtree"
	"github.com/npillmayer/cssnap/dom/xmlnode"
	"github.com/npillmayer/cssnap/internal/config"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type env struct {
	cfg *config.Config
	log *zap.Logger
}

type envKey struct{}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

// initializeAppContext loads the configuration and prepares logging after the
// command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)
	cfg, err := config.LoadConfiguration(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if err := applyFlags(cfg, cmd); err != nil {
		return ctx, err
	}
	e.cfg = cfg
	e.log = cfg.Logging.Prepare(cmd.Root().ErrWriter)
	e.log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()))
	return context.WithValue(ctx, envKey{}, e), nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	_ = e.log.Sync()
	return nil
}

// applyFlags superimposes command line flags on the configuration.
func applyFlags(cfg *config.Config, cmd *cli.Command) error {
	if cmd.IsSet("prefix") {
		cfg.ClassPrefix = cmd.String("prefix")
	}
	if cmd.IsSet("pattern") {
		cfg.ClassPattern = cmd.String("pattern")
	}
	if cmd.IsSet("probe") {
		cfg.Probe = cmd.String("probe")
	}
	if cmd.IsSet("indent") {
		cfg.Indent = int(cmd.Int("indent"))
	}
	if cmd.IsSet("css") {
		cfg.CSS = append(cfg.CSS, cmd.StringSlice("css")...)
	}
	if cmd.Bool("debug") {
		cfg.Logging.Level = "debug"
	}
	return cfg.Validate()
}

// loadStyleSheets reads all CSS files into a single style sheet. Files are
// processed independently; failures are collected.
func loadStyleSheets(paths []string, log *zap.Logger) (*cssom.Sheet, error) {
	sheet := cssom.NewSheet()
	var err error
	for _, path := range paths {
		data, er := os.ReadFile(path)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to read style sheet: %w", er))
			continue
		}
		s, er := douceuradapter.Parse(string(data))
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("style sheet '%s': %w", path, er))
			continue
		}
		log.Debug("Loaded style sheet", zap.String("file", path), zap.Int("rules", s.Len()))
		sheet.AppendRules(s)
	}
	return sheet, err
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

type inputFormat int

const (
	formatHTML inputFormat = iota
	formatXML
	formatJSON
)

func detectFormat(cmd *cli.Command, path string) inputFormat {
	switch {
	case cmd.Bool("json"):
		return formatJSON
	case cmd.Bool("xml"):
		return formatXML
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".xml", ".svg", ".xhtml":
		return formatXML
	}
	return formatHTML
}

// run is the action of the command.
func run(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	if cmd.NArg() > 1 {
		return errors.New("too many arguments, expected a single input file")
	}
	path := cmd.Args().First()
	sheet, err := loadStyleSheets(e.cfg.CSS, e.log)
	if err != nil {
		return fmt.Errorf("unable to load style sheets: %w", err)
	}
	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	opts, err := e.cfg.Options()
	if err != nil {
		return err
	}
	s := cssnap.New(sheet, opts...)
	out := cmd.Root().Writer

	var tree dom.TreeNode
	var snapshot func() (string, error)
	switch detectFormat(cmd, path) {
	case formatJSON:
		root, err := testtree.Parse(data)
		if err != nil {
			return err
		}
		tree = root
		snapshot = func() (string, error) { return s.Snapshot(root), nil }
	case formatXML:
		root, err := xmlnode.Parse(string(data))
		if err != nil {
			return err
		}
		tree = xmlnode.Wrap(root)
		snapshot = func() (string, error) { return s.FromXMLElement(root), nil }
	default:
		doc, err := html.Parse(strings.NewReader(string(data)))
		if err != nil {
			return fmt.Errorf("unable to parse HTML: %w", err)
		}
		if cmd.Bool("inline-styles") {
			sheets, err := douceuradapter.ExtractStyleElements(doc)
			if err != nil {
				return err
			}
			for _, inline := range sheets {
				sheet.AppendRules(inline)
			}
			e.log.Debug("Extracted inline styles", zap.Int("sheets", len(sheets)))
		}
		body := findBody(doc)
		tree = htmlnode.Wrap(body)
		snapshot = func() (string, error) {
			ex := cssnap.Extractor(cssnap.FirstChild)
			if sel := cmd.String("select"); sel != "" {
				if ex, err = cssnap.Select(sel); err != nil {
					return "", err
				}
			}
			return s.FromDOMNode(body, ex), nil
		}
	}

	switch {
	case cmd.Bool("tree"):
		_, err = fmt.Fprintln(out, domdbg.Dump(tree))
		return err
	case cmd.Bool("dot"):
		return domdbg.ToGraphViz(tree, out, s.Matcher().Match)
	}
	result, err := snapshot()
	if err != nil {
		return err
	}
	if result == "" {
		e.log.Warn("Nothing to print", zap.String("input", path))
		return nil
	}
	e.log.Debug("Snapshot created", zap.Int("rules", sheet.Len()))
	_, err = fmt.Fprintln(out, result)
	return err
}

// findBody returns the <body> element of a document, or the document itself.
func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if b := find(ch); b != nil {
				return b
			}
		}
		return nil
	}
	if body := find(doc); body != nil {
		return body
	}
	return doc
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "cssnap",
		Usage:     "snapshot markup with generated class names resolved to their CSS",
		ArgsUsage: "[FILE]",
		Before:    initializeAppContext,
		After:     destroyAppContext,
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringSliceFlag{Name: "css", Usage: "load style rules from CSS `FILE` (may be repeated)"},
			&cli.BoolFlag{Name: "inline-styles", Usage: "add rules of <style> elements of an HTML input"},
			&cli.StringFlag{Name: "prefix", Usage: "class name `PREFIX` of generated classes"},
			&cli.StringFlag{Name: "pattern", Usage: "regular `EXPRESSION` matching generated class names"},
			&cli.StringFlag{Name: "probe", Usage: "composite rule `STRATEGY` (keyspace, pairs)"},
			&cli.IntFlag{Name: "indent", Usage: "indentation `WIDTH`"},
			&cli.StringFlag{Name: "select", Aliases: []string{"s"}, Usage: "print the first element matching CSS `SELECTOR` (HTML only)"},
			&cli.BoolFlag{Name: "xml", Usage: "input is XML"},
			&cli.BoolFlag{Name: "json", Usage: "input is a test-renderer JSON tree"},
			&cli.BoolFlag{Name: "tree", Usage: "print the input tree instead of a snapshot"},
			&cli.BoolFlag{Name: "dot", Usage: "print the input tree in GraphViz format instead of a snapshot"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages"},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cssnap: %v\n", err)
		os.Exit(1)
	}
}
