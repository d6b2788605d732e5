package occupancy

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"arena_client/model"
)

var healthGreen = color.RGBA{0, 255, 18, 255}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{40, 40, 40, 255})
		}
	}
	return img
}

func paintRun(img *image.RGBA, x, y, n int, c color.RGBA) {
	for i := 0; i < n; i++ {
		img.Set(x+i, y, c)
	}
}

func TestMatches(t *testing.T) {
	d := NewDetector(nil, healthGreen, 2, 5)

	tests := []struct {
		name  string
		paint func(*image.RGBA)
		want  bool
	}{
		{"no reference pixels", func(*image.RGBA) {}, false},
		{"single isolated pixel", func(img *image.RGBA) { img.Set(10, 3, healthGreen) }, false},
		{"run of four", func(img *image.RGBA) { paintRun(img, 2, 1, 4, healthGreen) }, false},
		{"run of five", func(img *image.RGBA) { paintRun(img, 2, 1, 5, healthGreen) }, true},
		{"long bar", func(img *image.RGBA) { paintRun(img, 0, 4, 30, healthGreen) }, true},
		{"within tolerance", func(img *image.RGBA) { paintRun(img, 5, 2, 5, color.RGBA{2, 253, 20, 255}) }, true},
		{"outside tolerance", func(img *image.RGBA) { paintRun(img, 5, 2, 5, color.RGBA{3, 255, 18, 255}) }, false},
		{"scattered pixels", func(img *image.RGBA) {
			for x := 0; x < 30; x += 2 {
				img.Set(x, 2, healthGreen)
			}
		}, false},
		{"run split across rows", func(img *image.RGBA) {
			paintRun(img, 27, 1, 3, healthGreen)
			paintRun(img, 0, 2, 2, healthGreen)
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(30, 6)
			tt.paint(img)
			if got := d.Matches(img); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

// benchScreen 每个备战区槽位返回一张图，empty 中的槽位没有血条
type benchScreen struct {
	empty map[string]bool
	fail  map[string]bool
}

func (s benchScreen) Capture(r model.ScreenRegion) (image.Image, error) {
	if s.fail[r.Label] {
		return nil, errors.New("capture failed")
	}
	img := blank(r.Width(), r.Height())
	if !s.empty[r.Label] {
		paintRun(img, 3, 4, 20, healthGreen)
	}
	return img, nil
}

func benchRegions() []model.ScreenRegion {
	var regions []model.ScreenRegion
	for i := 0; i < 9; i++ {
		left := 369 + i*116
		regions = append(regions, model.NewRegion(fmt.Sprintf("bench slot %d", i), left, 777, left+50, 789))
	}
	return regions
}

func TestEmptySlotScenario(t *testing.T) {
	regions := benchRegions()
	d := NewDetector(benchScreen{empty: map[string]bool{"bench slot 3": true}}, healthGreen, 2, 5)

	occupied := make([]bool, len(regions))
	for i, r := range regions {
		occupied[i] = d.Occupied(r)
	}
	for i, ok := range occupied {
		if ok == (i == 3) {
			t.Errorf("slot %d occupied = %v", i, ok)
		}
	}
	if got := FirstEmpty(occupied); got != 3 {
		t.Errorf("FirstEmpty = %d, want 3", got)
	}
}

func TestOccupiedCaptureFailure(t *testing.T) {
	r := benchRegions()[0]
	d := NewDetector(benchScreen{fail: map[string]bool{r.Label: true}}, healthGreen, 2, 5)
	if d.Occupied(r) {
		t.Error("Occupied = true after capture failure")
	}
}

func TestFirstEmpty(t *testing.T) {
	if got := FirstEmpty([]bool{true, true, true}); got != -1 {
		t.Errorf("all occupied: %d", got)
	}
	if got := FirstEmpty(nil); got != -1 {
		t.Errorf("no slots: %d", got)
	}
	if got := FirstEmpty([]bool{false, true}); got != 0 {
		t.Errorf("first empty: %d", got)
	}
}
