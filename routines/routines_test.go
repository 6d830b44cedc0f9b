package routines

import (
	"errors"
	"testing"

	"graphics/canvas"
	"graphics/hal"
)

// closedWindow exits on the first tick without presenting.
type closedWindow struct{ runs int }

type closedInput struct{}

func (closedInput) Closed() bool             { return true }
func (closedInput) KeyDown(hal.KeyCode) bool { return false }

func (w *closedWindow) Run(tick func(hal.Input) bool, _ func() []uint32) error {
	w.runs++
	for tick(closedInput{}) {
	}
	return nil
}

func (w *closedWindow) Close() error { return nil }

func newCanvas(t *testing.T, width, height int) (*canvas.Canvas, *closedWindow) {
	t.Helper()
	win := &closedWindow{}
	c, err := canvas.New(hal.BackendFunc(func(hal.WindowConfig) (hal.Window, error) { return win, nil }), "test", width, height)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return c, win
}

func TestRedScreenDefaultSize(t *testing.T) {
	c, win := newCanvas(t, 800, 800)
	if err := (RedScreen{Color: canvas.Red}).Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if win.runs != 1 {
		t.Fatalf("display loop ran %d times, want 1", win.runs)
	}

	red := canvas.Red.Pack()
	var painted int
	for x := -400; x < 400; x++ {
		for y := -400; y < 400; y++ {
			p, ok := c.Pixel(x, y)
			if !ok {
				t.Fatalf("(%d,%d) out of range", x, y)
			}
			// |x| and |y| reach at most 399, so the leftmost column and
			// bottom row stay black.
			want := red
			if x == -400 || y == -400 {
				want = 0
			}
			if p != want {
				t.Fatalf("Pixel(%d,%d) = %#x, want %#x", x, y, p, want)
			}
			if p == red {
				painted++
			}
		}
	}
	if painted != 799*799 {
		t.Fatalf("painted %d pixels, want %d", painted, 799*799)
	}
}

func TestRedScreenSmall(t *testing.T) {
	c, _ := newCanvas(t, 4, 4)
	RedScreen{Color: canvas.Red}.Draw(c)
	red := canvas.Red.Pack()
	want := []uint32{
		0, red, red, red,
		0, red, red, red,
		0, red, red, red,
		0, 0, 0, 0,
	}
	got := c.Buffer()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("buf[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestFill(t *testing.T) {
	c, _ := newCanvas(t, 3, 2)
	col := canvas.Rgb{Red: 1, Green: 2, Blue: 3}
	if err := (Fill{Color: col}).Run(c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, p := range c.Buffer() {
		if p != col.Pack() {
			t.Fatalf("buf[%d] = %#x", i, p)
		}
	}
}

func TestQuadrants(t *testing.T) {
	c, _ := newCanvas(t, 4, 4)
	q := Quadrants{TopRight: canvas.Red, TopLeft: canvas.Green, BottomLeft: canvas.Blue, BottomRight: canvas.White}
	q.Draw(c)
	tests := []struct {
		x, y int
		want canvas.Rgb
	}{
		{1, 1, canvas.Red},
		{0, 0, canvas.Red},
		{-1, 0, canvas.Green},
		{-2, -2, canvas.Blue},
		{0, -1, canvas.White},
	}
	for _, tt := range tests {
		if p, _ := c.Pixel(tt.x, tt.y); p != tt.want.Pack() {
			t.Fatalf("Pixel(%d,%d) = %#x, want %#x", tt.x, tt.y, p, tt.want.Pack())
		}
	}
	for i, p := range c.Buffer() {
		if p == 0 {
			t.Fatalf("buf[%d] left unpainted", i)
		}
	}
}

func TestBannerDrawsText(t *testing.T) {
	c, _ := newCanvas(t, 120, 40)
	bg := canvas.Rgb{Red: 0x20, Green: 0x20, Blue: 0x40}
	Banner{Text: "Hi", Foreground: canvas.White, Background: bg}.Draw(c)

	var fg, other int
	for _, p := range c.Buffer() {
		switch p {
		case canvas.White.Pack():
			fg++
		case bg.Pack():
		default:
			other++
		}
	}
	if fg == 0 {
		t.Fatal("no text pixels drawn")
	}
	if other != 0 {
		t.Fatalf("%d pixels neither foreground nor background", other)
	}
}

func TestBannerEmptyTextOnlyClears(t *testing.T) {
	c, _ := newCanvas(t, 8, 8)
	Banner{Background: canvas.Blue}.Draw(c)
	for i, p := range c.Buffer() {
		if p != canvas.Blue.Pack() {
			t.Fatalf("buf[%d] = %#x", i, p)
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	called := false
	r := RoutineFunc(func(*canvas.Canvas) error { called = true; return nil })
	if err := reg.Register("dot", r); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("dot", r); !errors.Is(err, ErrDuplicateRoutine) {
		t.Fatalf("expected ErrDuplicateRoutine, got %v", err)
	}
	if err := reg.Register("", r); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatal("expected error for nil routine")
	}

	got, err := reg.Lookup("dot")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if err := got.Run(nil); err != nil || !called {
		t.Fatalf("Run: err=%v called=%v", err, called)
	}

	if _, err := reg.Lookup("Dot"); !errors.Is(err, ErrUnknownRoutine) {
		t.Fatalf("lookup is not exact: %v", err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	names := Default().Names()
	want := []string{"banner", "clear", "quadrants", "red_screen"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names = %v, want %v", names, want)
		}
	}
}
