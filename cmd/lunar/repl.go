package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"lunar/internal/ast"
	"lunar/internal/diagfmt"
	"lunar/internal/dialect"
	"lunar/internal/driver"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/source"
)

const historyFile = ".lunar_history"

const (
	promptMain = "lua> "
	promptCont = "...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse Lua chunks interactively",
	Long: `Repl reads Lua chunks from the terminal and shows the syntax tree of
each one. A chunk continues over several lines while it is incomplete; an
empty line ends it early`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().String("view", "tree", "initial view (tree|pretty|tokens|print|none)")
	replCmd.Flags().Bool("no-history", false, "do not read or write ~/"+historyFile)
}

var replViews = []string{"tree", "pretty", "tokens", "print", "none"}

const replHelp = `:view tree|pretty|tokens|print|none   change what each chunk shows
:dialect NAME                         lua51, lua52, lua53, lua54, luau, all
:trivia                               toggle tokens and trivia in tree views
:help                                 this text
:quit                                 leave (Ctrl+D works too)
`

type replSession struct {
	opts    driver.Options
	view    string
	astOpts diagfmt.ASTOpts
	color   bool
	out     io.Writer
	errOut  io.Writer
	chunks  int
}

func runRepl(cmd *cobra.Command, _ []string) error {
	view, err := cmd.Flags().GetString("view")
	if err != nil {
		return fmt.Errorf("failed to get view flag: %w", err)
	}
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return fmt.Errorf("failed to get no-history flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	sess := &replSession{
		opts:   s.driverOptions(),
		color:  useColor(cmd, os.Stderr),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	sess.opts.Timer = nil
	if err := sess.setView(view); err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil && !noHistory {
		histPath = filepath.Join(home, historyFile)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	fmt.Fprintf(sess.out, "lunar repl, dialect %s. :help lists commands\n", sess.opts.Version)
	for {
		src, ok := sess.read(ln)
		if !ok {
			fmt.Fprintln(sess.out)
			break
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if sess.command(trimmed) {
				break
			}
			continue
		}
		if err := sess.eval(src); err != nil {
			return err
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return nil
}

// read collects lines until the buffer parses, fails for a reason more
// input cannot fix, or an empty line is entered. ok is false on EOF.
func (s *replSession) read(ln *liner.State) (src string, ok bool) {
	var buf strings.Builder
	for {
		prompt := promptMain
		if buf.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending chunk.
			return "", true
		}
		if strings.TrimSpace(line) == "" {
			return buf.String(), true
		}
		ln.AppendHistory(line)
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)

		text := buf.String()
		if strings.HasPrefix(strings.TrimSpace(text), ":") {
			return text, true
		}
		_, errs := parser.ParseFallible(text, parser.Options{Version: s.opts.Version})
		if !needsMore(text, errs) {
			return text, true
		}
	}
}

// needsMore reports whether every error in errs could go away with more
// input: unclosed strings, comments and blocks, or anything found at the
// end of src.
func needsMore(src string, errs []parser.Error) bool {
	if len(errs) == 0 {
		return false
	}
	end, err := safecast.Conv[uint32](len(strings.TrimRight(src, " \t\r\n")))
	if err != nil {
		return false
	}
	for _, e := range errs {
		switch e := e.(type) {
		case *lexer.Error:
			if e.Kind == lexer.UnclosedString || e.Kind == lexer.UnclosedComment {
				continue
			}
		case *parser.AstError:
			if e.Kind() == parser.UnclosedConstruct {
				continue
			}
		}
		if start, _ := e.Range(); start.Bytes >= end {
			continue
		}
		return false
	}
	return true
}

// command runs a ':' line and reports whether the session should end.
func (s *replSession) command(line string) (quit bool) {
	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprint(s.out, replHelp)
	case ":view":
		if err := s.setView(arg); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	case ":dialect":
		v, err := dialect.Parse(arg)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			break
		}
		s.opts.Version = v
		fmt.Fprintf(s.out, "dialect %s\n", v)
	case ":trivia":
		s.astOpts.Trivia = !s.astOpts.Trivia
		s.astOpts.Tokens = s.astOpts.Trivia
		fmt.Fprintf(s.out, "trivia %s\n", onOff(s.astOpts.Trivia))
	default:
		fmt.Fprintf(s.errOut, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

func (s *replSession) setView(name string) error {
	for _, v := range replViews {
		if v == name {
			s.view = name
			return nil
		}
	}
	return fmt.Errorf("unknown view %q (want %s)", name, strings.Join(replViews, "|"))
}

// eval parses one chunk, reports its diagnostics and renders the current view.
func (s *replSession) eval(src string) error {
	s.chunks++
	name := fmt.Sprintf("<repl:%d>", s.chunks)
	pretty := diagfmt.PrettyOpts{Color: s.color, Context: 1, ShowNotes: true}

	if s.view == "tokens" {
		fs := source.NewFileSet()
		res := driver.TokenizeFile(fs, fs.AddVirtual(name, []byte(src)), s.opts)
		diagfmt.Pretty(s.errOut, res.Bag, res.FileSet, pretty)
		return diagfmt.FormatTokensPretty(s.out, res.Tokens, true)
	}

	res := driver.ParseSource(name, []byte(src), s.opts)
	diagfmt.Pretty(s.errOut, res.Bag, res.FileSet, pretty)
	switch s.view {
	case "tree":
		return diagfmt.FormatASTTree(s.out, res.Tree, s.astOpts)
	case "pretty":
		return diagfmt.FormatASTPretty(s.out, res.Tree, s.astOpts)
	case "print":
		_, err := io.WriteString(s.out, printed(res))
		return err
	}
	return nil
}

func printed(res *driver.ParseResult) string {
	text := ast.Print(res.Tree)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
