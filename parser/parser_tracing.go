package parser

import (
	"strings"

	"github.com/charmbracelet/log"
)

const traceIdentPlaceholder string = "\t"

// WithTracer makes the parser log BEGIN/END lines for every grammar rule it
// enters, at debug level. The logger's level decides whether they show up.
func WithTracer(logger *log.Logger) Option {
	return func(p *Parser) {
		p.tracer = logger
	}
}

func (p *Parser) identLevel() string {
	if p.traceLevel <= 1 {
		return ""
	}
	return strings.Repeat(traceIdentPlaceholder, p.traceLevel-1)
}

func (p *Parser) tracePrint(fs string) {
	p.tracer.Debug(p.identLevel()+fs, "cur", p.curToken.Literal)
}

func (p *Parser) trace(msg string) string {
	if p.tracer == nil {
		return msg
	}
	p.traceLevel = p.traceLevel + 1
	p.tracePrint("BEGIN " + msg)
	return msg
}

func (p *Parser) untrace(msg string) {
	if p.tracer == nil {
		return
	}
	p.tracePrint("END " + msg)
	p.traceLevel = p.traceLevel - 1
}
