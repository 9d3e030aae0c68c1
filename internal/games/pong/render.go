package pong

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps arena units onto the playfield rows of a screen.
type viewport struct {
	sx, sy float64
	cols   int
	rows   int
}

func newViewport(s Snapshot, dst *core.Screen) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:   float64(dst.Width()) / s.ArenaW,
		sy:   float64(rows) / s.ArenaH,
		cols: dst.Width(),
		rows: rows,
	}
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(math.Floor(x*v.sx)), 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	return hudRows + core.Clamp(int(math.Floor(y*v.sy)), 0, v.rows-1)
}

// span returns the first cell and cell count covered by [from, from+size).
func (v viewport) span(from, size, scale float64, limit int) (int, int) {
	start := core.Clamp(int(math.Floor(from*scale)), 0, limit-1)
	end := core.Clamp(int(math.Ceil((from+size)*scale)), start+1, limit)
	return start, end - start
}

// ArenaY maps a screen row to the arena y at the middle of that row, for a
// screen of the given height. It inverts the row mapping used by Render.
func ArenaY(row, screenH int, arenaH float64) float64 {
	rows := max(screenH-hudRows, 1)
	row = core.Clamp(row-hudRows, 0, rows-1)
	return (float64(row) + 0.5) * arenaH / float64(rows)
}

// Render draws the match onto dst. The screen is cleared first.
func (m *Match) Render(dst *core.Screen) {
	Render(m.Snapshot(), dst)
}

// Render draws a snapshot onto dst: net, paddles, ball, score line and any
// menu or game-over overlay.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.ArenaW <= 0 || s.ArenaH <= 0 {
		return
	}
	v := newViewport(s, dst)

	// Net
	netX := v.col(s.ArenaW / 2)
	for y := hudRows; y < dst.Height(); y += 2 {
		dst.SetColored(netX, y, NetChar, core.ColorGray)
	}

	drawPaddle(dst, v, s.Player, core.ColorCyan)
	drawPaddle(dst, v, s.AI, core.ColorMagenta)

	if s.State != StateMenu {
		cx, cy := s.Ball.Center()
		dst.SetColored(v.col(cx), v.row(cy), BallChar, core.ColorYellow)
	}

	drawHUD(dst, s)

	switch s.State {
	case StateMenu:
		drawMenu(dst, s)
	case StateGameOver:
		drawGameOver(dst, s)
	}
}

func drawPaddle(dst *core.Screen, v viewport, r core.Rect, c core.Color) {
	x, w := v.span(r.X, r.W, v.sx, v.cols)
	y, h := v.span(r.Y, r.H, v.sy, v.rows)
	dst.FillBox(x, hudRows+y, w, h, PaddleChar, c)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	w := dst.Width()
	left := fmt.Sprintf("YOU %d", s.PlayerScore)
	right := fmt.Sprintf("%d CPU", s.AIScore)

	dst.DrawText(1, 0, left, core.ColorCyan)
	dst.DrawText(w-1-len(right), 0, right, core.ColorMagenta)
	dst.DrawTextCentered(0, fmt.Sprintf("first to %d · %s", s.WinningScore, s.Tier), core.ColorGray)
}

func drawMenu(dst *core.Screen, s Snapshot) {
	lines := []string{"P O N G", ""}
	if s.InProgress {
		lines = append(lines,
			fmt.Sprintf("paused  %d - %d", s.PlayerScore, s.AIScore),
			"Enter: resume",
		)
	} else {
		if s.PlayerScore > 0 || s.AIScore > 0 {
			lines = append(lines, fmt.Sprintf("last match  %d - %d", s.PlayerScore, s.AIScore))
		}
		lines = append(lines, "Enter: start")
	}
	lines = append(lines, "W/S or ↑/↓ or drag: move", "Q: quit")
	drawCenteredMessage(dst, core.ColorWhite, lines...)
}

func drawGameOver(dst *core.Screen, s Snapshot) {
	title, color := "CPU WINS!", core.ColorRed
	if s.Winner == SideLeft {
		title, color = "YOU WIN!", core.ColorGreen
	}
	drawCenteredMessage(dst, color,
		title,
		fmt.Sprintf("%d - %d", s.PlayerScore, s.AIScore),
		"",
		"R: play again  B: menu",
	)
}

// drawCenteredMessage draws lines inside a box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}

	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillBox(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	for i, l := range lines {
		pad := (inner - utf8.RuneCountInString(l)) / 2
		dst.DrawText(boxX+2+pad, boxY+1+i, strings.TrimRight(l, " "), c)
	}
}
