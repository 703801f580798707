package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"

	"github.com/iZarrios/monkey-front/config"
	"github.com/iZarrios/monkey-front/lexer"
	"github.com/iZarrios/monkey-front/parser"
	"github.com/iZarrios/monkey-front/token"
)

const (
	PROMPT   = ">> "
	FAREWELL = "Goodbye."
)

type REPL struct {
	prompt      string
	mode        config.Mode
	historyFile string
	styles      Styles
	logger      *log.Logger
	trace       bool
}

type Option func(*REPL)

// WithLogger sets the logger used for REPL events. When trace is true the
// same logger receives the parser's BEGIN/END tracing.
func WithLogger(logger *log.Logger, trace bool) Option {
	return func(r *REPL) {
		r.logger = logger
		r.trace = trace
	}
}

func WithStyles(styles Styles) Option {
	return func(r *REPL) {
		r.styles = styles
	}
}

func New(cfg *config.Config, opts ...Option) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &REPL{
		prompt:      cfg.REPL.Prompt,
		mode:        cfg.REPL.Mode,
		historyFile: cfg.REPL.HistoryFile,
		styles:      PlainStyles(),
	}
	if cfg.REPL.Color {
		r.styles = DefaultStyles()
	}
	if r.prompt == "" {
		r.prompt = PROMPT
	}
	if r.mode == "" {
		r.mode = config.ModeParse
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start runs the read loop over any reader, one line at a time.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, r.prompt)
		scanned := scanner.Scan()
		if !scanned {
			break
		}
		line := scanner.Text()

		if quit := r.handleLine(out, line); quit {
			break
		}
	}

	r.farewell(out)
}

// RunInteractive is Start for a terminal: line editing and a persistent
// history file.
func (r *REPL) RunInteractive(out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	r.readHistory(ln)
	defer r.writeHistory(ln)

	fmt.Fprintln(out, r.styles.render(r.styles.Muted, "Monkey front end. Type :quit to exit, :mode lex|parse to switch modes."))

	for {
		line, err := ln.Prompt(r.prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		if quit := r.handleLine(out, line); quit {
			break
		}
	}

	r.farewell(out)
	return nil
}

func (r *REPL) farewell(out io.Writer) {
	io.WriteString(out, "\n"+FAREWELL+"\n")
}

// handleLine reports whether the user asked to quit.
func (r *REPL) handleLine(out io.Writer, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, ":") {
		return r.command(out, trimmed)
	}

	switch r.mode {
	case config.ModeLex:
		r.printTokens(out, line)
	default:
		r.printProgram(out, line)
	}
	return false
}

func (r *REPL) command(out io.Writer, cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":mode":
		if len(fields) != 2 || (fields[1] != string(config.ModeLex) && fields[1] != string(config.ModeParse)) {
			io.WriteString(out, r.styles.render(r.styles.Error, "usage: :mode lex|parse")+"\n")
			return false
		}
		r.mode = config.Mode(fields[1])
		if r.logger != nil {
			r.logger.Debug("mode switched", "mode", r.mode)
		}
		io.WriteString(out, r.styles.render(r.styles.Muted, "mode: "+fields[1])+"\n")
	default:
		io.WriteString(out, r.styles.render(r.styles.Error, "unknown command. Type :quit to exit.")+"\n")
	}
	return false
}

func (r *REPL) printTokens(out io.Writer, line string) {
	l := lexer.NewLexer(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		style := r.styles.Token
		if tok.Type == token.ILLEGAL {
			style = r.styles.Error
		}
		io.WriteString(out, r.styles.render(style, tok.String())+"\n")
	}
}

func (r *REPL) printProgram(out io.Writer, line string) {
	var opts []parser.Option
	if r.trace && r.logger != nil {
		opts = append(opts, parser.WithTracer(r.logger))
	}

	p, err := parser.NewParser(lexer.NewLexer(line), opts...)
	if err != nil {
		io.WriteString(out, r.styles.render(r.styles.Error, err.Error())+"\n")
		return
	}

	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		r.printParserErrors(out, p.Errors())
		return
	}

	io.WriteString(out, r.styles.render(r.styles.Output, program.String())+"\n")
}

func (r *REPL) printParserErrors(out io.Writer, errors []string) {
	io.WriteString(out, r.styles.render(r.styles.Error, " parser errors:")+"\n")
	for _, msg := range errors {
		io.WriteString(out, "\t"+r.styles.render(r.styles.Error, msg)+"\n")
	}
}

func (r *REPL) readHistory(ln *liner.State) {
	if r.historyFile == "" {
		return
	}
	f, err := os.Open(r.historyFile)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil && r.logger != nil {
		r.logger.Warn("could not read history", "file", r.historyFile, "err", err)
	}
}

func (r *REPL) writeHistory(ln *liner.State) {
	if r.historyFile == "" {
		return
	}
	f, err := os.Create(r.historyFile)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("could not write history", "file", r.historyFile, "err", err)
		}
		return
	}
	defer f.Close()
	_, _ = ln.WriteHistory(f)
}
