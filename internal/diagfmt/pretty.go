package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"implfan/internal/diag"
	"implfan/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		printContext(w, fs, d.Primary, d.Severity, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				printNote(w, fs, note, opts)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, span source.Span, msg string, opts PrettyOpts) {
	start, _ := fs.Resolve(span)
	path := formatPath(fs, span.File, opts.PathMode)

	sevText := paint(sevColor(sev), opts.Color, sev.String())
	codeText := paint(color.New(color.Bold), opts.Color, code.ID())

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, codeText, msg)
}

// printContext печатает строки исходника вокруг span с подчёркиванием.
// Подчёркивание строится только для первой строки span — многострочные
// диапазоны показывают стрелку на первой строке.
func printContext(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil {
		return
	}

	start, end := fs.Resolve(span)

	totalLines := uint32(len(f.LineIdx)) + 1
	firstLine := start.Line
	lastLine := start.Line
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}
	if firstLine > ctx {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	if lastLine+ctx <= totalLines {
		lastLine += ctx
	} else {
		lastLine = totalLines
	}

	gutter := len(fmt.Sprintf("%d", lastLine))

	for line := firstLine; line <= lastLine; line++ {
		text := f.GetLine(line)
		display := truncate(expandTabs(text), opts.Width)
		fmt.Fprintf(w, "%*d | %s\n", gutter, line, display)

		if line == start.Line {
			printUnderline(w, text, start, end, gutter, sev, opts)
		}
	}
}

// printUnderline печатает строку вида "   | ^~~~" под строкой исходника.
func printUnderline(w io.Writer, lineText string, start, end source.LineCol, gutter int, sev diag.Severity, opts PrettyOpts) {
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol < startCol {
		// многострочный span: подчёркиваем до конца строки
		endCol = len(lineText) + 1
	}

	// Колонки байтовые (1-based); ширину считаем по отображению,
	// чтобы табы и широкие руны не ломали позицию стрелки.
	prefix := sliceBytes(lineText, 0, startCol-1)
	covered := sliceBytes(lineText, startCol-1, endCol-1)

	pad := runewidth.StringWidth(expandTabs(prefix))
	width := runewidth.StringWidth(expandTabs(covered))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	marker = paint(sevColor(sev), opts.Color, marker)

	fmt.Fprintf(w, "%*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), marker)
}

func printNote(w io.Writer, fs *source.FileSet, note diag.Note, opts PrettyOpts) {
	start, _ := fs.Resolve(note.Span)
	path := formatPath(fs, note.Span.File, opts.PathMode)
	label := paint(color.New(color.FgCyan), opts.Color, "note")
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, label, note.Msg)
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// paint раскрашивает текст независимо от автодетекта терминала,
// чтобы вывод был детерминированным.
func paint(c *color.Color, enabled bool, text string) string {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func truncate(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

func sliceBytes(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return s[from:to]
}
