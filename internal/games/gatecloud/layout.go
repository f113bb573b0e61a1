package gatecloud

import (
	"math"

	"github.com/vovakirdan/gatecloud/internal/config"
	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

// One terminal cell covers CellW x CellH field pixels.
const (
	CellW = 10.0
	CellH = 20.0
)

// Screen rows reserved outside the field.
const (
	hudRows    = 2
	zoneRows   = 3
	footerRows = 1
)

const (
	zoneGap     = 4  // Columns between qubit boxes
	zoneWidth   = 12 // Preferred qubit box width in columns
	binWidth    = 12
	binMargin   = 2
	minZoneCols = 5
	maxQubits   = 4
)

// Minimum playable terminal size.
const (
	MinScreenW = 60
	MinScreenH = 20
)

// cellRange is a column span [X, X+W).
type cellRange struct {
	X, W int
}

func (r cellRange) box(top, height float64) core.Box {
	return core.Box{X: float64(r.X) * CellW, Y: top, W: float64(r.W) * CellW, H: height}
}

// field holds the cell geometry of a screen.
type field struct {
	cols, rows int
	zoneTop    int // First row of the zone strip
	qubits     []cellRange
	dustbin    cellRange
}

func newField(cols, rows, qubits int) field {
	f := field{cols: cols, rows: rows}
	f.zoneTop = rows - footerRows - zoneRows

	f.dustbin = cellRange{X: cols - binWidth - binMargin, W: binWidth}

	qubits = core.Clamp(qubits, 1, maxQubits)
	// Qubits are centred on the spawn column and must clear the dustbin.
	room := 2 * (f.dustbin.X - binMargin - cols/2)
	w := zoneWidth
	if total := qubits*w + (qubits-1)*zoneGap; total > room {
		w = max((room-(qubits-1)*zoneGap)/qubits, minZoneCols)
	}
	total := qubits*w + (qubits-1)*zoneGap
	x := cols/2 - total/2
	for i := 0; i < qubits; i++ {
		f.qubits = append(f.qubits, cellRange{X: x, W: w})
		x += w + zoneGap
	}
	return f
}

func (f field) widthPx() float64   { return float64(f.cols) * CellW }
func (f field) topPx() float64     { return hudRows * CellH }
func (f field) landingPx() float64 { return float64(f.zoneTop) * CellH }

// buildLayout projects the screen geometry and config into a layout snapshot.
func buildLayout(cfg config.GateCloudConfig, v sim.Variant, qubits, cols, rows int) sim.Layout {
	f := newField(cols, rows, qubits)
	width := f.widthPx()
	top := f.topPx()
	landing := f.landingPx()
	zoneTop := landing
	zoneH := zoneRows * CellH

	l := sim.Layout{
		Width:    width,
		Height:   float64(rows) * CellH,
		SpawnX:   width / 2,
		SpawnY:   top + CellH,
		LandingY: landing,
		Dustbin:  f.dustbin.box(zoneTop, zoneH),
	}
	for i, q := range f.qubits {
		l.Zones = append(l.Zones, sim.ZoneSpec{ID: qubitID(i), Box: q.box(zoneTop, zoneH)})
	}

	switch v {
	case sim.VariantPinball:
		l.Walls = sim.Walls{MinX: CellW, MaxX: width - CellW}
		for i, b := range cfg.Pinball.Blocks {
			kind, _ := sim.ParseBlockKind(b.Type)
			c := core.V(b.X*width, top+b.Y*(landing-top))
			l.Obstacles = append(l.Obstacles, sim.ObstacleSpec{
				ID:   sim.ObstacleID(i + 1),
				Box:  core.Box{X: c.X - b.Size/2, Y: c.Y - b.Size/2, W: b.Size, H: b.Size},
				Kind: kind,
			})
		}
		y := landing - CellH
		base := cfg.Pinball.Flippers.BaseAngle
		l.Sources = []sim.SourceSpec{
			{ID: SourceLeft, Pos: core.V(width*0.25, y), BaseAngle: base},
			{ID: SourceRight, Pos: core.V(width*0.75, y), BaseAngle: -base},
		}
	default:
		r := cfg.Deflector.Radius
		c := core.V(width/2, top+(landing-top)/2)
		l.Obstacles = []sim.ObstacleSpec{{
			ID:     1,
			Box:    core.Box{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r},
			Radius: r,
		}}
		y := landing - cfg.Emitters.OffsetY
		l.Sources = []sim.SourceSpec{
			{ID: SourceLeft, Pos: core.V(cfg.Emitters.InsetX, y)},
			{ID: SourceRight, Pos: core.V(width-cfg.Emitters.InsetX, y)},
		}
	}
	return l
}

func qubitID(i int) string {
	return "q" + string(rune('0'+i))
}

// toCell maps a field position to a screen cell.
func toCell(p core.Vec) (int, int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}
