package gatecloud

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

// Visual characters for rendering
const (
	DeflectorChar = '░'
	WallChar      = '│'
	SparkChar     = '✦'
	MissChar      = '×'
	SeparatorChar = '─'
)

var gateColors = map[sim.Gate]core.Color{
	sim.GateX:    core.ColorRed,
	sim.GateH:    core.ColorCyan,
	sim.GateZ:    core.ColorMagenta,
	sim.GateY:    core.ColorYellow,
	sim.GateP:    core.ColorBlue,
	sim.GateCNOT: core.ColorOrange,
	sim.GateM:    core.ColorGreen,
}

var blockColors = map[sim.BlockKind]core.Color{
	sim.KindPlain: core.ColorGray,
	sim.KindH:     core.ColorCyan,
	sim.KindX:     core.ColorRed,
	sim.KindZ:     core.ColorMagenta,
	sim.KindP:     core.ColorBlue,
	sim.KindCNOT:  core.ColorOrange,
	sim.KindM:     core.ColorGreen,
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)
	if g.variant == sim.VariantPinball {
		g.renderWalls(dst)
	}
	g.renderObstacles(dst)
	g.renderSources(dst)
	g.renderZones(dst)
	g.renderTokens(dst)
	g.renderEffects(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderHUD draws title, score, target and the gate queue.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf("%s  L%d %s", g.Title(), g.levelIndex+1, g.level.Name)
	dst.DrawText(1, 0, title)

	var right string
	if g.variant == sim.VariantPinball {
		right = fmt.Sprintf("Score: %d  Combo: %d x%d", g.engine.Score(), g.engine.Combo(), sim.Multiplier(g.engine.Combo()))
	} else {
		right = fmt.Sprintf("Bin: %d", len(g.engine.Dustbin()))
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)

	spawned, _ := g.engine.Progress()
	x := 1
	dst.DrawText(x, 1, "Queue:")
	x += 7
	for i, gate := range g.engine.Queue() {
		c := gateColors[gate]
		if i < spawned {
			c = core.ColorGray
		}
		dst.DrawTextColored(x, 1, string(gate), c)
		x += len(gate) + 1
	}

	target := "Target: " + g.engine.Target()
	dst.DrawTextColored(dst.Width()-len([]rune(target))-1, 1, target, core.ColorGreen)
}

// renderWalls draws the pinball side walls.
func (g *Game) renderWalls(dst *core.Screen) {
	f := newField(dst.Width(), dst.Height(), g.level.Qubits)
	length := f.zoneTop - hudRows
	dst.DrawVLine(0, hudRows, length, WallChar, core.ColorGray)
	dst.DrawVLine(dst.Width()-1, hudRows, length, WallChar, core.ColorGray)
}

// renderObstacles draws the deflector disc or the quantum blocks.
func (g *Game) renderObstacles(dst *core.Screen) {
	for _, o := range g.engine.Obstacles() {
		c := blockColors[o.Kind]
		if g.effects.obstacleFlash(o.ID) {
			c = core.ColorYellow
		}

		if o.Kind == sim.KindPlain {
			g.renderDisc(dst, o, c)
			continue
		}

		cx, cy := toCell(o.Center)
		label := "[" + string(o.Kind) + "]"
		dst.DrawTextColored(cx-len(label)/2, cy, label, c)
	}
}

// renderDisc fills every cell whose centre lies inside the obstacle.
func (g *Game) renderDisc(dst *core.Screen, o sim.Obstacle, c core.Color) {
	x0, y0 := toCell(core.V(o.Center.X-o.Radius, o.Center.Y-o.Radius))
	x1, y1 := toCell(core.V(o.Center.X+o.Radius, o.Center.Y+o.Radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			centre := core.V((float64(x)+0.5)*CellW, (float64(y)+0.5)*CellH)
			if core.Distance(centre, o.Center) <= o.Radius {
				dst.SetColored(x, y, DeflectorChar, c)
			}
		}
	}
	if o.Hits > 0 {
		cx, cy := toCell(o.Center)
		hits := fmt.Sprintf("%d", o.Hits)
		dst.DrawTextColored(cx-len(hits)/2, cy, hits, c)
	}
}

// renderSources draws each emitter or flipper as an arrow along its angle.
func (g *Game) renderSources(dst *core.Screen) {
	for _, s := range g.engine.Sources() {
		x, y := toCell(s.Pos)
		c := core.ColorGray
		if s.Active {
			c = core.ColorGreen
		}
		dst.SetColored(x, y, arrowFor(s.EffectiveAngle()), c)
		angle := fmt.Sprintf("%+.0f°", s.Angle)
		dst.DrawTextColored(x-len(angle)/2, y+1, angle, c)
	}
}

// arrowFor picks the arrow closest to an angle in degrees, 0 pointing up.
func arrowFor(deg float64) rune {
	arrows := []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	i := int(math.Round(deg/45)) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

// renderZones draws the qubit boxes and the dustbin.
func (g *Game) renderZones(dst *core.Screen) {
	for _, z := range g.engine.Zones() {
		r := zoneRect(z.Span)
		c := core.ColorBlue
		if z.Label == g.engine.Target() {
			c = core.ColorGreen
		}
		if g.effects.zoneFlash(z.ID) {
			c = core.ColorYellow
		}
		dst.DrawBox(r, c)
		dst.DrawTextColored(r.X+(r.W-len([]rune(z.Label)))/2, r.Y+1, z.Label, c)
		if n := len(z.Gates); n > 0 {
			count := fmt.Sprintf("%d", n)
			dst.DrawTextColored(r.Right()-1-len(count), r.Y, count, c)
		}
	}

	bin := g.engine.Layout().Dustbin
	if bin.Empty() {
		return
	}
	r := zoneRect(bin)
	c := core.ColorGray
	if g.effects.binFlash() {
		c = core.ColorOrange
	}
	dst.DrawBox(r, c)
	text := fmt.Sprintf("bin %d", len(g.engine.Dustbin()))
	dst.DrawTextColored(r.X+(r.W-len(text))/2, r.Y+1, text, c)
}

func zoneRect(b core.Box) core.Rect {
	x, y := toCell(core.V(b.X, b.Y))
	return core.NewRect(x, y, int(b.W/CellW), int(b.H/CellH))
}

// renderTokens draws each falling gate as its label.
func (g *Game) renderTokens(dst *core.Screen) {
	for _, t := range g.engine.Tokens() {
		x, y := toCell(t.Pos)
		label := string(t.Gate)
		dst.DrawTextColored(x-len(label)/2, y, label, gateColors[t.Gate])
	}
}

// renderEffects draws the live effect tickets.
func (g *Game) renderEffects(dst *core.Screen) {
	f := newField(dst.Width(), dst.Height(), g.level.Qubits)
	for _, t := range g.effects.Active() {
		switch t.Kind {
		case EffectCollision:
			x, y := toCell(t.Pos)
			dst.SetColored(x, y-1, SparkChar, core.ColorYellow)
			if t.Text != "" {
				dst.DrawTextColored(x+1, y-1, t.Text, core.ColorYellow)
			}
		case EffectWall:
			x, y := toCell(t.Pos)
			dst.SetColored(core.Clamp(x, 1, dst.Width()-2), y, '!', core.ColorOrange)
		case EffectMiss:
			x, _ := toCell(t.Pos)
			dst.SetColored(x, f.zoneTop-1, MissChar, core.ColorRed)
		}
	}
}

// renderFooter draws the help line or the current status message.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	switch {
	case g.err != nil:
		dst.DrawTextColored(1, y, g.err.Error(), core.ColorRed)
	case g.message != "":
		dst.DrawTextColored(1, y, g.message, g.messageColor)
	default:
		help := "Space start/pause  F/J fire  A/D left aim  ←/→ right aim  C check  R reset  Q quit"
		dst.DrawTextColored(1, y, help, core.ColorGray)
	}
}

// renderOverlay draws state banners over the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	mid := hudRows + (dst.Height()-hudRows-zoneRows-footerRows)/2
	switch {
	case g.engine.Ended():
		labels := make([]string, 0)
		for _, z := range g.engine.Zones() {
			labels = append(labels, z.Label)
		}
		dst.DrawTextCentered(mid-1, "R U N   C O M P L E T E")
		dst.DrawTextCentered(mid+1, "Qubits: "+strings.Join(labels, " "))
	case g.engine.Status() == sim.StatusPaused:
		dst.DrawTextCentered(mid, "P A U S E D")
	case g.engine.Status() == sim.StatusStopped:
		dst.DrawTextCentered(mid, "Press Space to drop the gates")
	}
}
