package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorTan:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorSky:          lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world coordinates to screen cells.
type viewport struct {
	camX, camY float64
	sx, sy     float64 // Cells per world unit
	top        int     // First playfield row
	w, h       int     // Playfield size in cells
}

// newViewport fits the world's view height to the playfield. Terminal cells
// are about twice as tall as wide, so the horizontal scale is doubled, but the
// visible width stays between one and two view widths.
func newViewport(f jumper.Frame, screenW, screenH int) viewport {
	h := max(1, screenH-hudRows)
	sy := float64(h) / f.ViewH
	visibleW := core.ClampF(float64(screenW)/(2*sy), f.ViewW, 2*f.ViewW)
	return viewport{
		camX: f.CameraX,
		camY: f.CameraY,
		sx:   float64(screenW) / visibleW,
		sy:   sy,
		top:  hudRows,
		w:    screenW,
		h:    h,
	}
}

// project returns the clipped cell rectangle covering r, and false when
// nothing of it is visible.
func (v viewport) project(r core.Rect) (x, y, w, h int, ok bool) {
	x0 := int(math.Floor((r.X - v.camX) * v.sx))
	x1 := int(math.Ceil((r.Right() - v.camX) * v.sx))
	y0 := int(math.Floor((r.Y - v.camY) * v.sy))
	y1 := int(math.Ceil((r.Bottom() - v.camY) * v.sy))

	x0, x1 = max(x0, 0), min(x1, v.w)
	y0, y1 = max(y0, 0), min(y1, v.h)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0 + v.top, x1 - x0, y1 - y0, true
}

// point returns the cell of a world point.
func (v viewport) point(px, py float64) (int, int) {
	return int(math.Floor((px - v.camX) * v.sx)), int(math.Floor((py-v.camY)*v.sy)) + v.top
}

// DrawGame rasterizes a frame and its HUD onto the screen.
func DrawGame(s *core.Screen, f jumper.Frame, hud jumper.HUD) {
	s.Clear()
	v := newViewport(f, s.Width(), s.Height())

	for _, t := range f.Tiles {
		drawTile(s, v, t)
	}
	for _, p := range f.Trail {
		r := core.NewRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
		if x, y, w, h, ok := v.project(r); ok {
			s.FillRect(x, y, w, h, '░', core.ColorCyan)
		}
	}
	if f.Ghost != nil {
		if x, y, w, h, ok := v.project(*f.Ghost); ok {
			s.FillRect(x, y, w, h, '▒', core.ColorGray)
		}
	}
	if x, y, w, h, ok := v.project(f.Player); ok {
		s.FillRect(x, y, w, h, '█', core.ColorBrightYellow)
	}
	for _, p := range f.Landing {
		px, py := v.point(p.X, p.Y)
		c := core.ColorTan
		if p.Alt {
			c = core.ColorWhite
		}
		s.SetColored(px, py, '.', c)
	}

	if f.ShowMomentum {
		drawMomentumBar(s, v, f)
	}
	if f.Fade > 0 {
		drawFade(s, f.Fade)
	}
	drawHUD(s, hud)

	switch {
	case f.Phase == jumper.PhaseMenu:
		drawBanner(s, "MOMENTUM JUMPER", fmt.Sprintf("best %d  -  press enter", hud.Best))
	case f.GameOver:
		drawBanner(s, "GAME OVER", fmt.Sprintf("score %d  best %d", hud.Score, hud.Best))
	case f.Phase == jumper.PhasePaused:
		drawBanner(s, "PAUSED", "p to resume, b for lobby")
	}
}

func drawTile(s *core.Screen, v viewport, t jumper.TileView) {
	x, y, w, h, ok := v.project(t.Rect)
	if !ok {
		return
	}
	switch t.Kind {
	case world.TileCheckpoint:
		c := core.ColorYellow
		if t.Reached {
			c = core.ColorBrightGreen
		}
		s.FillRect(x, y, max(1, w), h, '▌', c)
	case world.TileWall:
		s.FillRect(x, y, w, h, '▓', core.ColorGray)
	case world.TileMoving:
		s.FillRect(x, y, w, h, '=', core.ColorTan)
	default:
		if t.Ceiling {
			s.FillRect(x, y, w, h, '▀', core.ColorOrange)
			return
		}
		s.FillRect(x, y, w, h, '█', core.ColorBrown)
		// Grass line only when the tile's top edge is on screen.
		if t.Rect.Y >= v.camY {
			s.DrawHLine(x, y, w, '▄', core.ColorGreen)
		}
	}
}

// drawMomentumBar draws the charge meter just above the player.
func drawMomentumBar(s *core.Screen, v viewport, f jumper.Frame) {
	const width = 12
	px, py := v.point(f.Player.X, f.Player.Y)
	y := max(py-1, hudRows)
	fill := int(math.Round(f.Momentum * width))

	c := core.ColorGreen
	if f.Oscillating {
		c = core.ColorOrange
	}
	s.SetColored(px-1, y, '[', core.ColorWhite)
	s.DrawHLine(px, y, fill, '■', c)
	s.DrawHLine(px+fill, y, width-fill, '·', core.ColorGray)
	s.SetColored(px+width, y, ']', core.ColorWhite)
}

// drawFade shades the playfield for the respawn transition.
func drawFade(s *core.Screen, fade float64) {
	r := '░'
	switch {
	case fade > 0.75:
		r = '█'
	case fade > 0.5:
		r = '▓'
	case fade > 0.25:
		r = '▒'
	}
	s.FillRect(0, hudRows, s.Width(), s.Height()-hudRows, r, core.ColorSky)
}

func drawHUD(s *core.Screen, hud jumper.HUD) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)

	hearts := strings.Repeat("♥", hud.Hearts) + strings.Repeat("♡", max(0, hud.MaxHearts-hud.Hearts))
	s.DrawTextColored(1, 0, hearts, core.ColorBrightRed)

	left := fmt.Sprintf("score %d  best %d  lvl %d", hud.Score, hud.Best, hud.Level)
	s.DrawTextColored(hud.MaxHearts+3, 0, left, core.ColorBrightWhite)

	const barW = 10
	fill := int(math.Round(hud.Progress * barW))
	bar := strings.Repeat("━", fill) + strings.Repeat("─", barW-fill)
	x := s.Width() - barW - 2
	s.DrawTextColored(x, 0, bar, core.ColorYellow)
	s.SetColored(x+barW, 0, '⚑', core.ColorBrightGreen)
}

func drawBanner(s *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 6
	h := 4
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)
	s.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightYellow)
	s.DrawTextColored(x+(w-len(subtitle))/2, y+2, subtitle, core.ColorWhite)
}
