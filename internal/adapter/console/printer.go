package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/domain/ports"
)

// Printer writes human-readable output for an operator watching a terminal.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

var _ ports.Reporter = (*Printer)(nil)

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Result prints the title followed by the payload as indented JSON.
func (p *Printer) Result(_ context.Context, title string, payload model.Payload) {
	p.write(fmt.Sprintf("%s: %s\n", title, prettyJSON(payload)))
}

// Failure prints a one-line diagnostic for a failed operation.
func (p *Printer) Failure(_ context.Context, name string, err error) {
	p.write(fmt.Sprintf("❌ %s Failed: %v\n", name, err))
}

// Heading prints a section heading.
func (p *Printer) Heading(_ context.Context, text string) {
	p.write(text + "\n")
}

// Line prints a single line of text.
func (p *Printer) Line(_ context.Context, text string) {
	p.write(text + "\n")
}

// Blank prints an empty line.
func (p *Printer) Blank(_ context.Context) {
	p.write("\n")
}

func (p *Printer) write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, s)
}

// prettyJSON keeps non-ASCII text and HTML characters as they are.
func prettyJSON(payload model.Payload) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Sprintf("%v", map[string]any(payload))
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
