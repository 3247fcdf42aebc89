package slots

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-slots/internal/core"
)

const (
	cellWidth  = 8 // Terminal columns per cell
	cellHeight = 4 // Terminal rows per cell
	hudHeight  = 2
)

// minSize returns the smallest screen that fits the HUD, frame and footer.
func (g *Game) minSize() (int, int) {
	return g.cfg.Grid.Columns*cellWidth + 2, g.cfg.Grid.Rows*cellHeight + hudHeight + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.machine.Layout()
	boardW := l.Columns * cellWidth
	boardH := l.Rows * cellHeight
	frame := core.NewRect((g.screenW-boardW-2)/2, hudHeight, boardW+2, boardH+2)
	board := core.NewRect(frame.X+1, frame.Y+1, boardW, boardH)

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderCells(dst, board, l)
	g.renderFooter(dst, frame)

	if g.paused {
		cx, cy := board.Center()
		msg := " PAUSED "
		dst.DrawTextColor(cx-len(msg)/2, cy, msg, core.ColorBrightWhite)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws credits on the left and the outcome on the right.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	credits := fmt.Sprintf("Score: %d ⭑", g.machine.Credits())
	color := core.ColorBrightWhite
	if g.machine.CreditsScale() > 1 {
		color = core.ColorGold
		credits = strings.ToUpper(credits)
	}
	dst.DrawTextColor(frame.X, 0, credits, color)

	if out, ok := g.machine.Outcome(); ok {
		if c, visible := outcomeColor(out, g.machine.OutcomeAlpha()); visible {
			text := out.Summary()
			x := core.Clamp(frame.Right()-utf8.RuneCountInString(text), frame.X, frame.Right())
			dst.DrawTextColor(x, 1, text, c)
		}
	}
}

// outcomeColor maps the label opacity onto a terminal color ramp.
func outcomeColor(out SpinOutcome, alpha float64) (core.Color, bool) {
	switch {
	case alpha <= 0:
		return core.ColorDefault, false
	case alpha < 0.5:
		return core.ColorGray, true
	case alpha < 1:
		return core.ColorWhite, true
	case out.Label == VoidLabel:
		return core.ColorOrange, true
	case out.Won():
		return core.ColorBrightGreen, true
	default:
		return core.ColorBrightRed, true
	}
}

// renderCells draws every cell at its current fall offset, clipped to the board.
func (g *Game) renderCells(dst *core.Screen, board core.Rect, l Layout) {
	for _, c := range g.machine.Cells() {
		if c.Symbol == "" {
			continue
		}
		rowPos := (c.Offset - l.TopPadding) / l.SymbolSize
		top := board.Y + int(math.Round(rowPos*cellHeight))
		left := board.X + c.Column*cellWidth
		g.drawCell(dst, board, left, top, c)
	}
}

// drawCell draws one symbol tile line by line, skipping lines outside the board.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, left, top int, c Cell) {
	color := core.ColorDefault
	if s, err := g.machine.Catalog().Lookup(c.Symbol); err == nil {
		color = s.Color
	}

	border := [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	label := string(c.Symbol)
	borderColor := core.ColorGray
	if c.Variant == VariantConnected {
		border = [6]rune{'╔', '╗', '╚', '╝', '═', '║'}
		label = "*" + label + "*"
		borderColor = core.ColorGold
	}

	inner := cellWidth - 2
	for j := range cellHeight {
		y := top + j
		if y < board.Y || y >= board.Bottom() {
			continue
		}
		switch j {
		case 0:
			dst.SetColor(left, y, border[0], borderColor)
			dst.DrawHLine(left+1, y, inner, border[4], borderColor)
			dst.SetColor(left+cellWidth-1, y, border[1], borderColor)
		case cellHeight - 1:
			dst.SetColor(left, y, border[2], borderColor)
			dst.DrawHLine(left+1, y, inner, border[4], borderColor)
			dst.SetColor(left+cellWidth-1, y, border[3], borderColor)
		default:
			dst.SetColor(left, y, border[5], borderColor)
			dst.SetColor(left+cellWidth-1, y, border[5], borderColor)
			if j == cellHeight/2-1 {
				pad := (inner - len(label)) / 2
				dst.DrawTextColor(left+1+pad, y, label, color)
			}
		}
	}
}

// renderFooter draws the spin prompt or the last error below the frame.
func (g *Game) renderFooter(dst *core.Screen, frame core.Rect) {
	y := frame.Bottom()
	switch {
	case g.lastErr != nil:
		dst.DrawTextColor(frame.X, y, "Spin void: "+g.lastErr.Error(), core.ColorOrange)
	case g.machine.Phase() == PhaseFalling:
		dst.DrawTextColor(frame.X, y, "Spinning...", core.ColorGray)
	default:
		dst.DrawTextColor(frame.X, y, "Spin ↻", core.ColorBrightWhite)
	}
}
