// Package gui is the windowed host for the ruler picker, drawn with raylib.
package gui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/rulerpick/internal/geometry"
	"github.com/san-kum/rulerpick/internal/slider"
	"github.com/san-kum/rulerpick/internal/viz"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	margin     = 40
	headerH    = 70
	footerH    = 60
	valueSize  = 32
	fontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	segments   = 4
	fontLoadPx = 32
)

type App struct {
	Slider *slider.Slider
	Title  string
	Font   rl.Font

	Width, Height float64
	MarkColor     rl.Color
	Journal       *viz.Journal

	lastX float32
	quit  bool
}

func initWindow(w, h int32, title string) {
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont uses Liberation Mono when installed and the raylib default otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, fontLoadPx, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// WindowSize is the window needed for a strip of width x height.
func WindowSize(width, height, padding float64) (int32, int32) {
	return int32(width) + 2*margin, int32(height+padding) + headerH + footerH + valueSize
}

// NewApp prepares the picker for a strip of the given size. The window
// must already be open. j may be nil.
func NewApp(s *slider.Slider, j *viz.Journal, title string, width, height float64) *App {
	if j == nil {
		j = &viz.Journal{}
	}
	s.Resize(width, height)
	return &App{
		Slider:    s,
		Journal:   j,
		Title:     title,
		Font:      loadFont(),
		Width:     width,
		Height:    height,
		MarkColor: toRaylib(s.MarkColor()),
	}
}

// Run opens a window and blocks until it is closed. It returns the final value.
func Run(s *slider.Slider, j *viz.Journal, title string, width, height float64, fps int) float64 {
	w, h := WindowSize(width, height, s.Padding())
	initWindow(w, h, title)
	if fps > 0 {
		rl.SetTargetFPS(int32(fps))
	}
	defer rl.CloseWindow()

	app := NewApp(s, j, title, width, height)
	app.RunLoop()
	return s.Value()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) origin() rl.Vector2 {
	return rl.NewVector2(margin, float32(headerH+valueSize)+float32(a.Slider.Padding()))
}

func (a *App) nudge(ticks int) {
	c := a.Width / 2
	if !a.Slider.DragStart(c) {
		return
	}
	x := c - float64(ticks)*a.Slider.Spacing()
	a.Slider.DragMove(x)
	a.Slider.DragEnd(x)
}

// Update maps mouse and keys onto the picker and steps the settle animation.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}

	o := a.origin()
	mouse := rl.GetMousePosition()
	x := mouse.X - o.X

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		band := rl.NewRectangle(0, o.Y-margin/2, float32(a.Width)+2*margin, float32(a.Height)+margin)
		if rl.CheckCollisionPointRec(mouse, band) {
			a.Slider.DragStart(float64(x))
			a.lastX = x
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		if a.Slider.Tracking() {
			a.Slider.DragEnd(float64(x))
		}
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		// only real motion counts as a move, so feedback fires per movement
		if a.Slider.Tracking() && x != a.lastX {
			a.Slider.DragMove(float64(x))
			a.lastX = x
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH):
		a.nudge(-1)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL):
		a.nudge(1)
	case rl.IsKeyPressed(rl.KeyHome):
		lo, _ := a.Slider.Bounds()
		a.Slider.Animate(lo)
	case rl.IsKeyPressed(rl.KeyEnd):
		_, hi := a.Slider.Bounds()
		a.Slider.Animate(hi)
	}

	a.Slider.Step()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawHeader()
	a.drawValue()
	a.drawMarks()
	a.drawFooter()

	rl.EndDrawing()
	a.Slider.MarkDrawn()
}

func (a *App) drawText(text string, x, y float32, size float32, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(x, y), size, 1, color)
}

func (a *App) drawCentred(text string, cx, y, size float32, color rl.Color) {
	m := rl.MeasureTextEx(a.Font, text, size, 1)
	a.drawText(text, cx-m.X/2, y, size, color)
}

func (a *App) drawHeader() {
	a.drawText("rulerpick", margin, 24, 20, ColSelect)
	a.drawText(":: "+a.Title, margin+110, 28, 14, ColText)

	status, col := "IDLE", ColTextDim
	switch {
	case a.Slider.Tick() == 0:
		status, col = "DISABLED", rl.Red
	case a.Slider.Tracking():
		status, col = "TRACKING", ColSelect
	case a.Slider.Settling():
		status, col = "SETTLING", ColAccent
	}
	m := rl.MeasureTextEx(a.Font, status, 14, 1)
	a.drawText(status, float32(a.Width)+margin-m.X, 28, 14, col)
}

func (a *App) drawValue() {
	text := viz.FormatValue(a.Slider.Value(), a.Slider.Tick())
	a.drawCentred(text, margin+float32(a.Width)/2, headerH, valueSize, ColSelect)
}

func (a *App) drawMarks() {
	o := a.origin()
	for _, m := range a.Slider.Layout() {
		if m.Hidden() {
			continue
		}
		rect := MarkRect(m, o)
		rl.DrawRectangleRounded(rect, Roundness(m), segments, rl.ColorAlpha(a.MarkColor, float32(m.Opacity)))
	}
	// centre pointer
	cx := o.X + float32(a.Width)/2
	y := o.Y + float32(a.Height) + 6
	rl.DrawTriangle(rl.NewVector2(cx, y), rl.NewVector2(cx-5, y+8), rl.NewVector2(cx+5, y+8), ColAccent)
}

func (a *App) drawFooter() {
	lo, hi := a.Slider.Bounds()
	tick := a.Slider.Tick()
	o := a.origin()
	y := o.Y + float32(a.Height) + 20

	a.drawText(viz.FormatValue(lo, tick), margin, y, 14, ColTextDim)
	hiText := viz.FormatValue(hi, tick)
	m := rl.MeasureTextEx(a.Font, hiText, 14, 1)
	a.drawText(hiText, margin+float32(a.Width)-m.X, y, 14, ColTextDim)

	a.drawTelemetry(y + 20)
	a.drawText("DRAG: PICK  ARROWS: NUDGE  HOME/END: LIMITS  Q: QUIT", margin, y+24, 12, ColTextDim)
}

// drawTelemetry plots notified values as a faint line behind the footer.
func (a *App) drawTelemetry(y float32) {
	values := a.Journal.Values
	if len(values) < 2 {
		return
	}
	lo, hi := a.Slider.Bounds()
	if hi == lo {
		hi = lo + 1
	}
	const h = 12
	points := make([]rl.Vector2, len(values))
	for i, v := range values {
		px := margin + float32(i)/float32(len(values)-1)*float32(a.Width)
		py := y - float32((v-lo)/(hi-lo))*h
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColTextDim)
}

// MarkRect places a mark relative to the strip origin.
func MarkRect(m geometry.Mark, origin rl.Vector2) rl.Rectangle {
	return rl.NewRectangle(origin.X+float32(m.X), origin.Y+float32(m.Y), float32(m.Width), float32(m.Height))
}

// Roundness converts a corner radius into raylib's 0..1 roundness.
func Roundness(m geometry.Mark) float32 {
	short := min(m.Width, m.Height)
	if short <= 0 || m.Radius <= 0 {
		return 0
	}
	return float32(min(m.Radius/(short/2), 1))
}

func toRaylib(hex string) rl.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColSelect
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
