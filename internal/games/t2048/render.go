package t2048

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/tween"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardExtent returns the board size in screen cells, borders included.
func boardExtent(n int) (w, h int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// tileColors is indexed by log2(score).
var tileColors = []core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorBrightRed,     // 32
	core.ColorRed,           // 64
	core.ColorBrightYellow,  // 128
	core.ColorBrightGreen,   // 256
	core.ColorGreen,         // 512
	core.ColorBrightCyan,    // 1024
	core.ColorBrightMagenta, // 2048
}

// TileColor returns the display color for a tile score.
func TileColor(score uint64) core.Color {
	if score == 0 {
		return core.ColorDefault
	}
	i := bits.Len64(score) - 1
	if i >= len(tileColors) {
		return core.ColorMagenta
	}
	return tileColors[i]
}

// drawable is a tile ready to draw at its animated transform.
type drawable struct {
	id    tween.EntityID
	score uint64
	tr    tween.Transform
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.session.Grid().Size()
	boardW, boardH := boardExtent(n)
	board := core.NewRect((g.runtime.ScreenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderTiles(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the chased score, best tile and slide rule.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightYellow)

	score := g.anim.displayScore(g.session.Score())
	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", score))

	info := fmt.Sprintf("Best: %d", g.session.Grid().MaxScore())
	dst.DrawText(max(board.X, board.Right()-len(info)), 1, info)

	rule := fmt.Sprintf("%s · moves %d", g.session.Rules().Slide, g.session.Moves())
	dst.DrawTextColored(board.X+(board.W-len([]rune(rule)))/2, 2, rule, core.ColorGray)
}

// renderBoard draws the grid lines and the bump feedback of empty cells.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	n := g.session.Grid().Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// A bumping background cell shows a shrinking dot.
	for y := range n {
		for x := range n {
			c := Coord{X: x, Y: y}
			tr, ok := g.anim.engine.Transform(cellEntity(n, c))
			if !ok || tr.Scale >= 1 {
				continue
			}
			cx := board.X + x*cellWidth + cellWidth/2
			cy := board.Y + y*cellHeight + cellHeight/2
			dst.SetColored(cx, cy, '·', core.ColorGray)
		}
	}
}

// renderTiles draws dying tiles below live ones, each at its transform.
func (g *Game) renderTiles(dst *core.Screen, board core.Rect) {
	var items []drawable
	for id, t := range g.anim.dying {
		if tr, ok := g.anim.engine.Transform(id); ok {
			items = append(items, drawable{id: id, score: t.Score, tr: tr})
		}
	}
	for _, pt := range g.session.Grid().Tiles() {
		id := tileEntity(pt.Tile.ID)
		tr, ok := g.anim.engine.Transform(id)
		if !ok {
			tr = tween.Transform{Position: cellPos(pt.At), Depth: depthTile, Scale: 1}
		}
		items = append(items, drawable{id: id, score: pt.Tile.Score, tr: tr})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].tr.Depth != items[j].tr.Depth {
			return items[i].tr.Depth < items[j].tr.Depth
		}
		return items[i].id < items[j].id
	})

	inner := core.NewRect(board.X+1, board.Y+1, board.W-2, board.H-2)
	for _, it := range items {
		drawTile(dst, inner, board, it)
	}
}

// drawTile fills the tile's scaled cell interior and centers its label,
// clipped to the board interior.
func drawTile(dst *core.Screen, clip, board core.Rect, it drawable) {
	scale := core.ClampF(it.tr.Scale, 0, 1.25)
	if scale <= 0.05 {
		return
	}

	w := max(1, core.Round(float64(cellWidth-1)*scale))
	h := max(1, core.Round(float64(cellHeight-1)*scale))
	cx := board.X + 1 + core.Round(it.tr.Position.X*cellWidth) + (cellWidth-1)/2
	cy := board.Y + 1 + core.Round(it.tr.Position.Y*cellHeight) + (cellHeight-1)/2

	box := core.NewRect(cx-(w-1)/2, cy-(h-1)/2, w, h).Intersect(clip)
	if box.Empty() {
		return
	}

	color := TileColor(it.score)
	dst.DrawRect(box, '░', color)

	label := strconv.FormatUint(it.score, 10)
	if scale < 0.6 || len(label) > box.W {
		if box.Contains(cx, cy) {
			dst.SetColored(cx, cy, '•', color)
		}
		return
	}
	lx := cx - (len(label)-1)/2
	if box.Contains(lx, cy) && box.Contains(lx+len(label)-1, cy) {
		dst.DrawTextColored(lx, cy, label, color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	if g.paused {
		drawOverlay(dst, cx, cy, core.ColorBrightWhite, "PAUSED", "Press P to resume")
		return
	}

	if g.session.State() == StateGameOver {
		color := core.ColorYellow
		if tr, ok := g.anim.engine.Transform(bannerEntity); ok && tr.Scale > (1+pulseScale)/2 {
			color = core.ColorBrightYellow
		}
		maxStr := fmt.Sprintf("Max tile: %d", g.session.Grid().MaxScore())
		drawOverlay(dst, cx, cy, color, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
