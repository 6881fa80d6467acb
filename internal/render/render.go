package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/muesli/termenv"
)

// Renderer draws boards and results on a terminal, colors degrade to
// plain text when the output does not support them
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) cell(c ttt.Cell, highlighted bool) string {
	var style termenv.Style
	switch c {
	case ttt.CellCross:
		style = r.out.String("X").Foreground(r.out.Color("#E06C75")).Bold()
	case ttt.CellNought:
		style = r.out.String("O").Foreground(r.out.Color("#61AFEF")).Bold()
	default:
		style = r.out.String(".").Faint()
	}
	if highlighted {
		style = style.Underline()
	}
	return style.String()
}

// Board with row and column indices, cells in 'highlight' are underlined
func (r *Renderer) Board(p *ttt.Position, highlight []ttt.Move) string {
	marked := make(map[ttt.Move]bool, len(highlight))
	for _, mv := range highlight {
		marked[mv] = true
	}

	width := len(fmt.Sprint(p.Size() - 1))
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for col := range p.Size() {
		fmt.Fprintf(&sb, " %*d", width, col)
	}
	sb.WriteByte('\n')

	for row := range p.Size() {
		fmt.Fprintf(&sb, "%*d ", width, row)
		for col := range p.Size() {
			c, _ := p.Cell(row, col)
			sb.WriteString(strings.Repeat(" ", width))
			sb.WriteString(r.cell(c, marked[ttt.NewMove(row, col)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) Outcome(o ttt.Outcome) string {
	switch {
	case o.IsWin():
		return r.out.String(fmt.Sprintf("%v wins", o.Winner)).Bold().String()
	case o.IsDraw():
		return r.out.String("Draw").Italic().String()
	}
	return "Undecided"
}

func (r *Renderer) Result(p *ttt.Position, res search.Result[ttt.Move]) string {
	move := r.out.String(res.Move.String()).Bold().String()
	return fmt.Sprintf("%v to move: best %s, value %d, nodes %d, time %v",
		p.Turn(), move, res.Value, res.Nodes, res.Elapsed)
}

// Write 's' followed by a newline
func (r *Renderer) Println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}
