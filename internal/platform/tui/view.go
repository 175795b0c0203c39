package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

// hudRows is the number of status lines above the arena box.
const hudRows = 1

// Projection maps world units (y up) onto the terminal cells inside the
// arena border (y down).
type Projection struct {
	Area   core.Rect
	worldW float64
	worldH float64
}

// NewProjection fits a worldW x worldH arena into a screen, leaving room
// for the HUD and the border.
func NewProjection(worldW, worldH float64, screenW, screenH int) Projection {
	w := core.Max(screenW-2, 1)
	h := core.Max(screenH-hudRows-2, 1)
	return Projection{
		Area:   core.NewRect(1, hudRows+1, w, h),
		worldW: worldW,
		worldH: worldH,
	}
}

func (p Projection) cellW() float64 { return p.worldW / float64(p.Area.W) }
func (p Projection) cellH() float64 { return p.worldH / float64(p.Area.H) }

// ToCell returns the cell containing a world point. The result may lie
// outside Area.
func (p Projection) ToCell(v core.Vec2) (int, int) {
	x := p.Area.X + int(math.Floor(v.X/p.cellW()))
	y := p.Area.Y + int(math.Floor((p.worldH-v.Y)/p.cellH()))
	return x, y
}

// ToWorld returns the world point at the center of a cell.
func (p Projection) ToWorld(x, y int) core.Vec2 {
	wx := (float64(x-p.Area.X) + 0.5) * p.cellW()
	wy := p.worldH - (float64(y-p.Area.Y)+0.5)*p.cellH()
	return core.V(wx, wy)
}

func (p Projection) set(s *core.Screen, x, y int, r rune, c core.Color) {
	if p.Area.Contains(x, y) {
		s.SetColored(x, y, r, c)
	}
}

// fillCircle paints every cell whose center lies in the disc. Discs
// smaller than a cell still get their center cell.
func (p Projection) fillCircle(s *core.Screen, c core.Vec2, r float64, glyph rune, col core.Color) {
	x0, y0 := p.ToCell(c.Add(core.V(-r, r)))
	x1, y1 := p.ToCell(c.Add(core.V(r, -r)))
	drew := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if p.ToWorld(x, y).Dist(c) <= r {
				p.set(s, x, y, glyph, col)
				drew = true
			}
		}
	}
	if !drew {
		x, y := p.ToCell(c)
		p.set(s, x, y, glyph, col)
	}
}

func (p Projection) fillBox(s *core.Screen, b core.Box, glyph rune, col core.Color) {
	lo, hi := b.Min(), b.Max()
	x0, y0 := p.ToCell(core.V(lo.X, hi.Y))
	x1, y1 := p.ToCell(core.V(hi.X, lo.Y))
	drew := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w := p.ToWorld(x, y)
			if w.X >= lo.X && w.X <= hi.X && w.Y >= lo.Y && w.Y <= hi.Y {
				p.set(s, x, y, glyph, col)
				drew = true
			}
		}
	}
	if !drew {
		x, y := p.ToCell(b.Center)
		p.set(s, x, y, glyph, col)
	}
}

// line plots dots from a to b in world space.
func (p Projection) line(s *core.Screen, a, b core.Vec2, glyph rune, col core.Color) {
	ax, ay := p.ToCell(a)
	bx, by := p.ToCell(b)
	steps := core.Max(abs(bx-ax), abs(by-ay))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := ax + int(math.Round(t*float64(bx-ax)))
		y := ay + int(math.Round(t*float64(by-ay)))
		p.set(s, x, y, glyph, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Aim is an in-progress drag, in world units.
type Aim struct {
	From core.Vec2
	To   core.Vec2
}

var spinner = []rune{'|', '/', '-', '\\'}

// spinRune picks a glyph showing an angle in degrees.
func spinRune(deg float64) rune {
	i := int(math.Floor(math.Mod(deg, 180)/45+0.5)) % len(spinner)
	if i < 0 {
		i += len(spinner)
	}
	return spinner[i]
}

var obstacleStyle = map[sim.ObstacleKind]struct {
	glyph rune
	color core.Color
}{
	sim.ObstaclePillar:   {'█', core.ColorWhite},
	sim.ObstacleBouncy:   {'▓', core.ColorBrightGreen},
	sim.ObstacleSlowZone: {'░', core.ColorBrightCyan},
}

var bulletStyle = map[sim.ShootPattern]struct {
	glyph rune
	color core.Color
}{
	sim.ShootCircle: {'•', core.ColorBrightYellow},
	sim.ShootAimed:  {'*', core.ColorBrightMagenta},
	sim.ShootRandom: {'•', core.ColorOrange},
}

// Draw renders a snapshot into s: HUD, arena, entities and the state
// overlay. aim may be nil.
func Draw(s *core.Screen, snap sim.Snapshot, aim *Aim) Projection {
	proj := NewProjection(snap.Width, snap.Height, s.Width(), s.Height())
	a := proj.Area
	s.DrawBox(core.NewRect(a.X-1, a.Y-1, a.W+2, a.H+2), core.ColorGray)

	// slow zones first so everything else draws over them
	for _, pass := range []bool{true, false} {
		for _, o := range snap.Obstacles {
			if (o.Kind == sim.ObstacleSlowZone) != pass {
				continue
			}
			st := obstacleStyle[o.Kind]
			col := st.color.Fade(o.Alpha)
			if o.Kind.Rectangular() {
				proj.fillBox(s, core.BoxFromSize(o.Pos, o.Width, o.Height), st.glyph, col)
			} else {
				proj.fillCircle(s, o.Pos, o.Radius, st.glyph, col)
			}
		}
	}

	for _, e := range snap.Enemies {
		proj.fillCircle(s, e.Pos, e.Radius*e.Scale, '#', core.ColorBrightRed)
		x, y := proj.ToCell(e.Pos)
		proj.set(s, x, y, spinRune(e.Spin), core.ColorBrightWhite)
	}

	for _, b := range snap.Bullets {
		st := bulletStyle[b.Pattern]
		x, y := proj.ToCell(b.Pos)
		proj.set(s, x, y, st.glyph, st.color)
	}

	if aim != nil {
		proj.line(s, aim.From, aim.To, '·', core.ColorGray)
	}

	pl := snap.Player
	proj.fillCircle(s, pl.Pos, pl.Radius, 'o', core.ColorBrightBlue)
	px, py := proj.ToCell(pl.Pos)
	proj.set(s, px, py, spinRune(pl.Rotation), core.ColorBrightWhite)

	drawHUD(s, snap)
	drawOverlay(s, snap, a)
	return proj
}

// HUDText returns the status line shown above the arena.
func HUDText(snap sim.Snapshot) string {
	cooldown := "Cooldown: READY"
	if !snap.CooldownReady {
		cooldown = fmt.Sprintf("Cooldown: %.1fs", snap.CooldownRemaining)
	}
	return fmt.Sprintf("Level %d / %d  %s   Time: %d   %s",
		snap.Level, snap.Levels, snap.LevelName, int(snap.TimeRemaining), cooldown)
}

func drawHUD(s *core.Screen, snap sim.Snapshot) {
	col := core.ColorBrightWhite
	if !snap.CooldownReady {
		col = core.ColorYellow
	}
	s.DrawTextColored(0, 0, HUDText(snap), col)
}

// overlayText returns the banner and hint for non-running states.
func overlayText(st sim.State) (title, hint string, col core.Color) {
	switch st {
	case sim.StatePaused:
		return "PAUSED", "p to resume", core.ColorBrightYellow
	case sim.StateGameOver:
		return "GAME OVER", "r to retry", core.ColorBrightRed
	case sim.StateLevelComplete:
		return "LEVEL CLEAR", "r for the next level", core.ColorBrightGreen
	case sim.StateGameComplete:
		return "ALL LEVELS CLEARED", "r to play again", core.ColorBrightGreen
	default:
		return "", "", core.ColorDefault
	}
}

func drawOverlay(s *core.Screen, snap sim.Snapshot, area core.Rect) {
	title, hint, col := overlayText(snap.State)
	if title == "" {
		return
	}
	mid := area.Y + area.H/2
	s.DrawTextCentered(mid-1, " "+title+" ", col)
	s.DrawTextCentered(mid+1, " "+hint+" ", core.ColorWhite)
}
