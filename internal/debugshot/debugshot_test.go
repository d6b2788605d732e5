package debugshot

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"arena_client/model"
)

var gray = color.NRGBA{90, 90, 90, 255}

type fakeScreen struct {
	mu    sync.Mutex
	asked []model.ScreenRegion
	err   error
	fill  func(x, y int) color.NRGBA
}

func (s *fakeScreen) Capture(r model.ScreenRegion) (image.Image, error) {
	s.mu.Lock()
	s.asked = append(s.asked, r)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	img := imaging.New(r.Width(), r.Height(), gray)
	if s.fill != nil {
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				img.SetNRGBA(x, y, s.fill(x, y))
			}
		}
	}
	return img, nil
}

func fixedRecorder(screen Screen, dir string, dedupe int) *Recorder {
	r := NewRecorder(screen, dir, 50, dedupe)
	r.now = func() time.Time { return time.Unix(1700000000, 0) }
	return r
}

func TestRecordWritesMarkedArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")
	screen := &fakeScreen{}
	r := fixedRecorder(screen, dir, -1)

	region := model.NewRegion("gold", 870, 883, 920, 909)
	a, err := r.Record("gold", region, "4O")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if got, want := screen.asked[0], region.Expand(50); got != want {
		t.Errorf("captured %v, want %v", got, want)
	}
	base := filepath.Base(a.Path)
	if !strings.HasPrefix(base, "gold_1700000000_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("artifact name = %q", base)
	}
	if a.Text != "4O" || a.Region != region || a.Label != "gold" {
		t.Errorf("artifact = %+v", a)
	}

	img, err := imaging.Open(a.Path)
	if err != nil {
		t.Fatalf("open artifact: %v", err)
	}
	if img.Bounds().Dx() != region.Width()+100 || img.Bounds().Dy() != region.Height()+100 {
		t.Errorf("artifact size = %v", img.Bounds())
	}
	red := color.NRGBA{255, 0, 0, 255}
	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{50, 50, red},                   // 左上角
		{51, 60, red},                   // 左边第二列
		{50 + 49, 50 + 25, red},         // 右下角
		{49, 49, gray},                  // 框外
		{52 + 10, 52 + 10, gray},        // 框内
		{50 + region.Width(), 60, gray}, // 右边外侧
	}
	for _, c := range checks {
		if got := color.NRGBAModel.Convert(img.At(c.x, c.y)).(color.NRGBA); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRecordClampsAtScreenOrigin(t *testing.T) {
	screen := &fakeScreen{}
	r := fixedRecorder(screen, t.TempDir(), -1)

	region := model.NewRegion("corner", 10, 20, 40, 30)
	a, err := r.Record("corner", region, "")
	if err != nil {
		t.Fatal(err)
	}
	asked := screen.asked[0]
	if asked.Left != 0 || asked.Top != 0 || asked.Right != 90 || asked.Bottom != 80 {
		t.Errorf("captured %v", asked)
	}
	img, err := imaging.Open(a.Path)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(10, 20)).(color.NRGBA); got.R != 255 || got.G != 0 {
		t.Errorf("marker not at region origin: %v", got)
	}
}

func TestRecordNamesAreUnique(t *testing.T) {
	r := fixedRecorder(&fakeScreen{}, t.TempDir(), -1)
	region := model.NewRegion("shop slot 1", 100, 100, 120, 110)

	seen := map[string]bool{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := r.Record("shop slot 1", region, "")
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			seen[a.Path] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(seen) != 10 {
		t.Errorf("%d distinct artifact paths for 10 records", len(seen))
	}
	for p := range seen {
		if strings.Contains(filepath.Base(p), " ") {
			t.Errorf("unsanitised name %q", p)
		}
	}
}

func TestRecordDedupe(t *testing.T) {
	dir := t.TempDir()
	screen := &fakeScreen{fill: func(x, y int) color.NRGBA {
		return color.NRGBA{uint8(x * 3), uint8(y * 5), 0, 255}
	}}
	r := fixedRecorder(screen, dir, 0)
	region := model.NewRegion("round_time", 100, 100, 130, 120)

	if _, err := r.Record("round_time", region, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Record("round_time", region, ""); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second identical record err = %v, want ErrDuplicate", err)
	}
	// 其他标签不受影响
	if _, err := r.Record("gold", region, ""); err != nil {
		t.Fatalf("other label: %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("%d files written, want 2", len(entries))
	}
}

func TestCaptureSwallowsFailures(t *testing.T) {
	region := model.NewRegion("gold", 870, 883, 920, 909)

	// 截图失败
	r := fixedRecorder(&fakeScreen{err: errors.New("no display")}, t.TempDir(), -1)
	r.Capture("gold", region, "")

	// 目录不可写：用一个普通文件占住目录路径
	blocker := filepath.Join(t.TempDir(), "debug")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	r = fixedRecorder(&fakeScreen{}, blocker, -1)
	if _, err := r.Record("gold", region, ""); err == nil {
		t.Error("Record into a file path should fail")
	}
	r.Capture("gold", region, "")

	// nil 记录器
	var disabled *Recorder
	disabled.Capture("gold", region, "")
}
