package rainmaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// Visual characters for rendering
const (
	PondChar       = '~'
	HelipadChar    = '.'
	HelipadMark    = 'H'
	CloudChar      = '░'
	RainCloudChar  = '▒'
	HeavyCloudChar = '▓'
	BlimpChar      = '='
	HeliChar       = '@'
)

const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 1 // top status row
	footerRows = 1 // bottom message row
)

// bladeGlyphs cycle with the rotor angle.
var bladeGlyphs = []rune{'|', '/', '-', '\\'}

// viewport maps world coordinates onto the playfield rows of the screen.
// World y grows upwards, screen rows grow downwards.
type viewport struct {
	world      core.Bounds
	cols, rows int
	top        int
}

func (v viewport) toCell(p core.Vector) (int, int) {
	col := int(math.Floor((p.X() - v.world.MinX) / v.world.Width() * float64(v.cols)))
	row := int(math.Floor((v.world.MaxY - p.Y()) / v.world.Height() * float64(v.rows)))
	return col, v.top + row
}

func (v viewport) cellCenter(col, row int) core.Vector {
	x := v.world.MinX + (float64(col)+0.5)/float64(v.cols)*v.world.Width()
	y := v.world.MaxY - (float64(row-v.top)+0.5)/float64(v.rows)*v.world.Height()
	return core.NewVector(x, y)
}

// fill paints every cell whose center lies inside one of the outlines.
func (v viewport) fill(dst *core.Screen, outlines []shape.Placed, r rune, c core.Color) {
	for _, o := range outlines {
		b := o.Bounds()
		c0, r0 := v.toCell(core.NewVector(b.MinX, b.MaxY))
		c1, r1 := v.toCell(core.NewVector(b.MaxX, b.MinY))
		for row := core.Max(r0, v.top); row <= core.Min(r1, v.top+v.rows-1); row++ {
			for col := core.Max(c0, 0); col <= core.Min(c1, v.cols-1); col++ {
				if o.ContainsPoint(v.cellCenter(col, row)) {
					dst.SetColored(col, row, r, c)
				}
			}
		}
	}
}

// label writes text centered on a world position.
func (v viewport) label(dst *core.Screen, p core.Vector, text string, c core.Color) {
	col, row := v.toCell(p)
	dst.DrawTextColored(col-len(text)/2, row, text, c)
}

// Render draws the round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "CANNOT START ROUND", g.err.Error())
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	w := g.world
	v := viewport{
		world: w.Bounds(),
		cols:  dst.Width(),
		rows:  dst.Height() - hudRows - footerRows,
		top:   hudRows,
	}

	// Ground layer first, then everything that flies over it
	for _, p := range w.Ponds().Items() {
		v.fill(dst, p.Outlines(), PondChar, core.ColorBlue)
		v.label(dst, p.Position(), fmt.Sprintf("%d", int(p.WaterLevel())), core.ColorBrightWhite)
	}
	g.drawHelipad(dst, v)

	for _, b := range w.Blimps().Items() {
		v.fill(dst, b.Outlines(), BlimpChar, core.ColorYellow)
		fuelColor := core.ColorOrange
		if b.Refueling() {
			fuelColor = core.ColorGreen
		}
		v.label(dst, b.Position(), fmt.Sprintf("%d", int(b.Fuel())), fuelColor)
	}

	g.drawHelicopter(dst, v)

	for _, c := range w.Clouds().Items() {
		glyph, color := cloudStyle(c)
		v.fill(dst, c.Outlines(), glyph, color)
		v.label(dst, c.Position(), fmt.Sprintf("%d%%", c.Saturation()), core.ColorBrightBlue)
	}

	g.drawHUD(dst)

	if g.state.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.GameOver {
		switch g.outcome {
		case OutcomeWon:
			g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.state.Score))
		default:
			g.drawCenteredMessage(dst, "CRASHED - OUT OF FUEL", "Press R to restart  |  Q to quit")
		}
	}
}

// cloudStyle darkens clouds as they saturate.
func cloudStyle(c *Cloud) (rune, core.Color) {
	switch {
	case c.Saturation() >= 60:
		return HeavyCloudChar, core.ColorGray
	case c.IsRaining():
		return RainCloudChar, core.ColorWhite
	default:
		return CloudChar, core.ColorBrightWhite
	}
}

func (g *Game) drawHelipad(dst *core.Screen, v viewport) {
	pad := g.world.Helipad()
	b := pad.Bounds()
	c0, r0 := v.toCell(core.NewVector(b.MinX, b.MaxY))
	c1, r1 := v.toCell(core.NewVector(b.MaxX, b.MinY))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if row < v.top || row >= v.top+v.rows {
				continue
			}
			dst.SetColored(col, row, HelipadChar, core.ColorGray)
		}
	}
	col, row := v.toCell(pad.Position())
	dst.SetColored(col, row, HelipadMark, core.ColorBrightWhite)
}

func (g *Game) drawHelicopter(dst *core.Screen, v viewport) {
	h := g.world.Helicopter()
	col, row := v.toCell(h.Position())

	dst.SetColored(col, row, HeliChar, core.ColorRed)

	// Nose marker one cell ahead in the direction of travel
	rad := core.Radians(h.CartesianHeading())
	dx := int(math.Round(math.Cos(rad)))
	dy := -int(math.Round(math.Sin(rad)))
	dst.SetColored(col+dx, row+dy, '*', core.ColorOrange)

	if h.Blade().Speed() > 0 {
		idx := int(h.Blade().Angle()/45) % len(bladeGlyphs)
		dst.SetColored(col-dx, row-dy, bladeGlyphs[idx], core.ColorCyan)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	h := w.Helicopter()
	hud := fmt.Sprintf(" Fuel %d | %s | Speed %.1f | Hdg %03d | Water %.1f/%.0f | Wind %.1f",
		int(h.Fuel()), h.State(), h.Speed(), int(h.Heading()),
		w.Ponds().AverageWaterLevel(), w.Config().Scoring.WinWaterLevel, w.Wind().Speed())
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	if g.message != "" {
		dst.DrawText(1, dst.Height()-1, g.message)
	}
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
