package match3

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

const (
	cellWidth   = 3 // Symbol plus a bracket slot on each side
	hudHeight   = 3
	minHUDWidth = 30
)

// boardSize returns the board box size including its border.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		dst.DrawTextCentered(g.screenH/2, "Board could not be created", core.ColorBrightRed)
		return
	}

	boardW, boardH := g.boardSize()
	box := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight).CenterIn(boardW, boardH)
	box.Y = hudHeight

	g.renderHUD(dst, box)
	dst.DrawBox(box, core.ColorGray)
	g.renderTokens(dst, box)
	g.renderMarkers(dst, box)
	g.renderOverlays(dst, box)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws score, budget and combo above the board.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	hud := core.NewRect(0, 0, g.screenW, hudHeight).CenterIn(max(box.W, minHUDWidth), hudHeight)
	left := hud.X
	right := hud.Right()

	scoreStr := fmt.Sprintf("Score: %d", g.scorer.Score())
	dst.DrawText(left, 1, scoreStr)

	var infoStr string
	if g.mode == ModeClassic {
		infoStr = fmt.Sprintf("Moves: %d", g.movesLeft)
	} else {
		infoStr = fmt.Sprintf("Best chain: %d", g.scorer.MaxChain())
	}
	dst.DrawText(max(left, right-utf8.RuneCountInString(infoStr)), 1, infoStr)

	switch {
	case g.messageTicks > 0:
		dst.DrawTextColored(left, 2, g.message, core.ColorBrightYellow)
	case g.scorer.Combo() > 1:
		comboStr := fmt.Sprintf("Combo x%d  %.1fs", g.scorer.Combo(), g.scorer.ComboLeft())
		dst.DrawTextColored(left, 2, comboStr, core.ColorBrightCyan)
	}
}

// cellOrigin returns the screen column and row of the symbol for a board
// position. Board Y grows upwards, screen rows grow downwards.
func (g *Game) cellOrigin(box core.Rect, x, y float32) (col, row int) {
	col = box.X + 1 + int(math.Round(float64(x)*cellWidth)) + 1
	row = box.Y + 1 + g.cfg.Board.Height - 1 - int(math.Round(float64(y)))
	return col, row
}

// renderTokens draws the tokens on the board at their animated position.
// Tokens still above the board while spawning are hidden.
func (g *Game) renderTokens(dst *core.Screen, box core.Rect) {
	symbols := g.cfg.Symbols()
	colors := g.cfg.Colors()

	draw := func(t *match3.Token, clip bool) {
		x, y := float32(t.Pos().X), float32(t.Pos().Y)
		if g.animator != nil {
			if ax, ay, ok := g.animator.Position(t); ok {
				x, y = ax, ay
			}
		}
		col, row := g.cellOrigin(box, x, y)
		if clip && (row <= box.Y || row >= box.Bottom()-1) {
			return
		}
		typ := int(t.Type())
		if typ < 0 || typ >= len(symbols) {
			dst.Set(col, row, '?')
			return
		}
		dst.SetColored(col, row, symbols[typ], colors[typ])
	}

	g.session.Grid().Each(func(_ match3.Coord, t *match3.Token) {
		if t != nil {
			draw(t, true)
		}
	})
	if g.animator != nil {
		for _, t := range g.animator.Exiting() {
			draw(t, false)
		}
	}
}

// renderMarkers draws the hint and the cursor brackets.
func (g *Game) renderMarkers(dst *core.Screen, box core.Rect) {
	bracket := func(c match3.Coord, open, closing rune, color core.Color) {
		col, row := g.cellOrigin(box, float32(c.X), float32(c.Y))
		dst.SetColored(col-1, row, open, color)
		dst.SetColored(col+1, row, closing, color)
	}

	if g.hintTicks > 0 {
		bracket(g.hintAt, '(', ')', core.ColorCyan)
		bracket(g.hintAt.Add(g.hintDir.Delta()), '(', ')', core.ColorCyan)
	}
	if g.selected {
		bracket(g.cursor, '<', '>', core.ColorBrightYellow)
		return
	}
	bracket(g.cursor, '[', ']', core.ColorBrightWhite)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	centerX := box.X + box.W/2
	centerY := box.Y + box.H/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.scorer.Score())
		chainStr := fmt.Sprintf("Best chain: %d  Best combo: %d", g.scorer.MaxChain(), g.scorer.MaxCombo())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, chainStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// chainMessage returns the banner shown after a cascade.
func chainMessage(chains int) string {
	return fmt.Sprintf("Chain x%d!", chains)
}
