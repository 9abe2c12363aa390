package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	EnemyChar       = '▼'
	BulletChar      = '│'
	EnemyBulletChar = '¦'
	ExplosionChar   = '*'
	FlashChar       = '✶'
	HUDRows         = 1 // Rows reserved above the field
)

// viewport maps field coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := dst.Height() - HUDRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / snap.FieldW,
		sy:  float64(rows) / snap.FieldH,
		top: HUDRows,
	}
}

// cell converts a field point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// fill draws a field rectangle, always covering at least one cell.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right(), r.Bottom())
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	dst.FillRect(x0, y0, w, h, ch, c)
}

// Draw renders a snapshot to the screen.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	v := newViewport(dst, snap)

	for _, e := range snap.Enemies {
		v.fill(dst, e, EnemyChar, snap.Tint)
	}
	for _, b := range snap.Bullets {
		v.fill(dst, b, BulletChar, core.ColorBrightYellow)
	}
	for _, b := range snap.EnemyBullets {
		v.fill(dst, b, EnemyBulletChar, core.ColorBrightMagenta)
	}
	for _, e := range snap.Explosions {
		drawExplosion(dst, v, e)
	}

	if snap.Phase == PhaseExplosion {
		drawPlayerFlash(dst, v, snap)
	} else {
		v.fill(dst, snap.Player, PlayerChar, core.ColorBrightWhite)
	}

	drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, "SPACE INVADERS", "Arrow keys to move, Space to shoot", "Press Enter to start")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", snap.Score), "Press R to play again")
	}
}

// drawExplosion draws an enemy explosion that shrinks as it ages.
func drawExplosion(dst *core.Screen, v viewport, e Explosion) {
	x, y := v.cell(e.X, e.Y)
	color := core.ColorOrange
	if e.Frame > 7 {
		color = core.ColorYellow
	}
	dst.SetColored(x, y, ExplosionChar, color)
	if e.Frame < 5 {
		dst.SetColored(x-1, y, ExplosionChar, color)
		dst.SetColored(x+1, y, ExplosionChar, color)
	}
}

// drawPlayerFlash draws the growing fireball shown while the game is frozen.
func drawPlayerFlash(dst *core.Screen, v viewport, snap Snapshot) {
	cx, cy := snap.Player.Center()
	frame := core.Min(snap.ExplosionFrame, 30)
	radius := float64(20 + frame*2)

	rings := []struct {
		scale float64
		color core.Color
	}{
		{1.0, core.ColorOrange},
		{0.6, core.ColorBrightYellow},
		{0.3, core.ColorBrightRed},
	}
	for _, ring := range rings {
		r := radius * ring.scale
		box := core.NewRect(cx-r, cy-r, 2*r, 2*r)
		v.fill(dst, box, FlashChar, ring.color)
	}
}

// drawHUD draws score and lives on the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBlue)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
