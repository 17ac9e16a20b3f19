package report

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/indigo-web/reqparse/internal/split"
)

var _ Reporter = new(Text)

// Text renders results in a human-readable form. All the request text is escaped, so
// control characters never reach the terminal
type Text struct {
	mu       sync.Mutex
	w        io.Writer
	remote   *color.Color
	line     *color.Color
	extended *color.Color
	name     *color.Color
	dim      *color.Color
	failure  *color.Color
}

func NewText(w io.Writer, colored bool) *Text {
	t := &Text{
		w:        w,
		remote:   color.New(color.FgHiBlack),
		line:     color.New(color.Bold, color.FgGreen),
		extended: color.New(color.Bold, color.FgYellow),
		name:     color.New(color.FgCyan),
		dim:      color.New(color.FgHiBlack),
		failure:  color.New(color.Bold, color.FgRed),
	}

	for _, c := range []*color.Color{t.remote, t.line, t.extended, t.name, t.dim, t.failure} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

func (t *Text) Report(result Result) error {
	var buff bytes.Buffer

	if len(result.Remote) > 0 {
		t.remote.Fprintf(&buff, "[%s] ", result.Remote)
	}

	if result.Err != nil {
		t.failure.Fprint(&buff, "malformed request: ")
		buff.WriteString(Escape(strings.Join(Chain(result.Err), " > ")))
		buff.WriteByte('\n')
	} else {
		t.render(&buff, result)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.w.Write(buff.Bytes())
	return err
}

func (t *Text) render(buff *bytes.Buffer, result Result) {
	request := result.Request

	methodColor := t.line
	if request.Line.Method.IsExtension() {
		methodColor = t.extended
	}

	methodColor.Fprint(buff, Escape(request.Line.Method.String()))
	buff.WriteByte(' ')
	t.line.Fprint(buff, Escape(request.Line.Path.Path))
	buff.WriteByte(' ')
	t.line.Fprintln(buff, request.Line.Version.String())

	for _, q := range request.Line.Path.Query {
		t.dim.Fprint(buff, "  ?")
		t.name.Fprint(buff, Escape(q.Name))
		buff.WriteString(" = " + Escape(q.Value) + "\n")
	}

	for _, h := range request.Headers {
		buff.WriteString("  ")
		t.name.Fprint(buff, Escape(h.Name))
		buff.WriteString(": " + Escape(h.Value) + "\n")
	}

	if len(request.Body) == 0 {
		return
	}

	t.dim.Fprintln(buff, "  --")
	lines := split.Lines(request.Body)
	for {
		line, err := lines()
		if err != nil {
			break
		}

		buff.WriteString("  " + Escape(line) + "\n")
	}
}
