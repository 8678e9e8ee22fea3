// Package terminal draws the game on a tcell screen and exposes the on-screen
// touch bar. The top row is the HUD, the bottom row is the button bar, and
// everything between is the play field.
package terminal

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/starshooter/internal/game"
	"github.com/ugaemi/starshooter/internal/input"
)

const (
	hudRows = 1
	barRows = 1
)

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	buttonLabels = [...]string{"[ < ]", "[ FIRE ]", "[ > ]"}
	buttonsInBar = [...]input.Button{input.ButtonLeft, input.ButtonFire, input.ButtonRight}
)

// ViewportFor converts a terminal size into world units. Each cell spans
// cellW by cellH units; the HUD and button rows are not part of the field.
func ViewportFor(cols, rows int, cellW, cellH float64) (game.Viewport, error) {
	return game.NewViewport(float64(cols)*cellW, float64(rows-hudRows-barRows)*cellH)
}

// Display renders frames and implements the session's UI surface.
type Display struct {
	// ParticleLife is the lifetime particles fade out over.
	ParticleLife int

	screen tcell.Screen
	cellW  float64
	cellH  float64

	mu       sync.Mutex
	score    int
	lives    int
	gameOver bool
}

// NewDisplay wraps an initialised screen.
func NewDisplay(screen tcell.Screen, cellW, cellH float64) *Display {
	return &Display{ParticleLife: game.ParticleLife, screen: screen, cellW: cellW, cellH: cellH}
}

// Viewport returns the play field for the current screen size.
func (d *Display) Viewport() (game.Viewport, error) {
	cols, rows := d.screen.Size()
	return ViewportFor(cols, rows, d.cellW, d.cellH)
}

// Sync forces a full redraw, used after a resize.
func (d *Display) Sync() {
	d.screen.Sync()
}

func (d *Display) SetScore(score int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.score = score
}

func (d *Display) SetLives(lives int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lives = lives
}

func (d *Display) SetGameOverVisible(visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gameOver = visible
}

// ButtonAt maps a screen cell to the touch button drawn there.
func (d *Display) ButtonAt(x, y int) input.Button {
	cols, rows := d.screen.Size()
	if cols <= 0 || y != rows-1 || x < 0 || x >= cols {
		return input.ButtonNone
	}
	return buttonsInBar[x*len(buttonsInBar)/cols]
}

// Render draws one frame and shows it.
func (d *Display) Render(s *game.State) {
	d.mu.Lock()
	score, lives, gameOver := d.score, d.lives, d.gameOver
	d.mu.Unlock()

	d.screen.Clear()
	cols, rows := d.screen.Size()
	f := field{screen: d.screen, cols: cols, top: hudRows, bottom: rows - barRows, cellW: d.cellW, cellH: d.cellH}

	for _, st := range s.Stars {
		r := '.'
		if st.Size > 1 {
			r = '+'
		}
		f.point(st.X, st.Y, r, tcell.StyleDefault.Foreground(hexColor(game.ColorStar)).Dim(true))
	}
	for _, p := range s.Particles {
		f.point(p.X, p.Y, '*', tcell.StyleDefault.Foreground(fade(p.Color, p.Alpha(d.ParticleLife))))
	}
	for _, e := range s.Enemies {
		f.fill(e.Bounds(), 'V', tcell.StyleDefault.Foreground(hexColor(e.Color)))
	}
	for _, b := range s.Bullets {
		f.fill(b.Bounds(), '|', tcell.StyleDefault.Foreground(hexColor(game.ColorBullet)))
	}
	f.fill(s.Player.Bounds(), 'A', tcell.StyleDefault.Foreground(hexColor(s.Player.Color)).Bold(true))

	d.drawHUD(cols, score, lives)
	d.drawBar(cols, rows)
	if gameOver {
		d.drawPanel(cols, rows, score)
	}
	d.screen.Show()
}

func (d *Display) drawHUD(cols, score, lives int) {
	putStr(d.screen, 1, 0, fmt.Sprintf("SCORE %d", score), styleHUD)
	right := fmt.Sprintf("LIVES %d", lives)
	putStr(d.screen, cols-len(right)-1, 0, right, styleHUD)
}

func (d *Display) drawBar(cols, rows int) {
	y := rows - 1
	if y < hudRows {
		return
	}
	for x := range cols {
		d.screen.SetContent(x, y, ' ', nil, styleBar)
	}
	n := len(buttonLabels)
	for i, label := range buttonLabels {
		start, end := i*cols/n, (i+1)*cols/n
		putStr(d.screen, start+(end-start-len(label))/2, y, label, styleBar)
	}
}

func (d *Display) drawPanel(cols, rows, score int) {
	lines := []string{
		"",
		"  GAME OVER  ",
		fmt.Sprintf("  Score: %d  ", score),
		"  Press R to restart  ",
		"",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	x0 := (cols - width) / 2
	y0 := (rows - len(lines)) / 2
	for i, l := range lines {
		for x := range width {
			d.screen.SetContent(x0+x, y0+i, ' ', nil, stylePanel)
		}
		putStr(d.screen, x0+(width-len(l))/2, y0+i, l, stylePanel)
	}
}

// field maps world units onto the play rows.
type field struct {
	screen      tcell.Screen
	cols        int
	top, bottom int // bottom is exclusive
	cellW       float64
	cellH       float64
}

func (f field) point(x, y float64, r rune, style tcell.Style) {
	col := int(math.Floor(x / f.cellW))
	row := f.top + int(math.Floor(y/f.cellH))
	f.set(col, row, r, style)
}

// fill covers every cell the box touches, and at least one.
func (f field) fill(box game.Rect, r rune, style tcell.Style) {
	c0 := int(math.Floor(box.X / f.cellW))
	r0 := int(math.Floor(box.Y / f.cellH))
	c1 := max(c0, int(math.Ceil((box.X+box.W)/f.cellW))-1)
	r1 := max(r0, int(math.Ceil((box.Y+box.H)/f.cellH))-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			f.set(col, f.top+row, r, style)
		}
	}
}

func (f field) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= f.cols || row < f.top || row >= f.bottom {
		return
	}
	f.screen.SetContent(col, row, r, nil, style)
}

func putStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func hexColor(c game.Color) tcell.Color {
	return tcell.GetColor(c.Hex())
}

// fade scales a color toward black by alpha.
func fade(c game.Color, alpha float64) tcell.Color {
	r, g, b := c.RGB()
	scale := func(v uint8) int32 { return int32(math.Round(float64(v) * alpha)) }
	return tcell.NewRGBColor(scale(r), scale(g), scale(b))
}
