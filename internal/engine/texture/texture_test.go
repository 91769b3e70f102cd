package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwhitten/stillscene/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitWithRotation("error", logger.Rotation{}, false)
	os.Exit(m.Run())
}

// fakeDevice hands out sequential handles and records bind calls.
type fakeDevice struct {
	nextHandle uint32
	binds      []bindCall
}

type bindCall struct {
	slot   int
	handle uint32
}

func (d *fakeDevice) Upload(img *image.RGBA) (uint32, error) {
	d.nextHandle++
	return d.nextHandle, nil
}

func (d *fakeDevice) Bind(slot int, handle uint32) {
	d.binds = append(d.binds, bindCall{slot: slot, handle: handle})
}

// writePNG writes a small RGBA test image to dir and returns its path.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

// writeGrayPNG writes a 1-channel test image.
func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func newTestRegistry(t *testing.T) (*Registry, *fakeDevice) {
	t.Helper()
	dev := &fakeDevice{}
	r, err := NewRegistry(dev)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r, dev
}

func TestNewRegistryRejectsNilDevice(t *testing.T) {
	if _, err := NewRegistry(nil); err == nil {
		t.Error("expected error for nil device")
	}
}

func TestSlotsFollowRegistrationOrder(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(t)

	if err := r.Load(writePNG(t, dir, "a.png"), "a"); err != nil {
		t.Fatalf("load a: %v", err)
	}
	if err := r.Load(writePNG(t, dir, "b.png"), "b"); err != nil {
		t.Fatalf("load b: %v", err)
	}

	if slot, ok := r.SlotOf("a"); !ok || slot != 0 {
		t.Errorf("SlotOf(a): got (%d, %v), want (0, true)", slot, ok)
	}
	if slot, ok := r.SlotOf("b"); !ok || slot != 1 {
		t.Errorf("SlotOf(b): got (%d, %v), want (1, true)", slot, ok)
	}
}

func TestSlotsAreInjective(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(t)

	tags := []string{"one", "two", "three", "four", "five"}
	for i, tag := range tags {
		if err := r.Load(writePNG(t, dir, tag+".png"), tag); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}

	seen := make(map[int]string)
	for i, tag := range tags {
		slot, ok := r.SlotOf(tag)
		if !ok {
			t.Fatalf("SlotOf(%s) missed", tag)
		}
		if slot != i {
			t.Errorf("SlotOf(%s): got %d, want %d", tag, slot, i)
		}
		if prev, dup := seen[slot]; dup {
			t.Errorf("slot %d shared by %s and %s", slot, prev, tag)
		}
		seen[slot] = tag
	}
}

func TestBindAllOrderAndIdempotence(t *testing.T) {
	dir := t.TempDir()
	r, dev := newTestRegistry(t)

	if err := r.Load(writePNG(t, dir, "a.png"), "a"); err != nil {
		t.Fatalf("load a: %v", err)
	}
	if err := r.Load(writePNG(t, dir, "b.png"), "b"); err != nil {
		t.Fatalf("load b: %v", err)
	}

	handleA, _ := r.HandleOf("a")
	handleB, _ := r.HandleOf("b")

	r.BindAll()
	want := []bindCall{{slot: 0, handle: handleA}, {slot: 1, handle: handleB}}
	if len(dev.binds) != 2 || dev.binds[0] != want[0] || dev.binds[1] != want[1] {
		t.Errorf("first BindAll: got %v, want %v", dev.binds, want)
	}

	// A second pass repeats the identical assignment: no registry mutation.
	r.BindAll()
	if len(dev.binds) != 4 || dev.binds[2] != want[0] || dev.binds[3] != want[1] {
		t.Errorf("second BindAll: got %v, want repeat of %v", dev.binds[2:], want)
	}
	if r.Count() != 2 {
		t.Errorf("registry mutated by BindAll: count %d", r.Count())
	}
}

func TestDuplicateTagFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(t)

	if err := r.Load(writePNG(t, dir, "first.png"), "metal"); err != nil {
		t.Fatalf("load first: %v", err)
	}
	firstHandle, _ := r.HandleOf("metal")

	if err := r.Load(writePNG(t, dir, "second.png"), "metal"); err != nil {
		t.Fatalf("load second: %v", err)
	}

	if handle, _ := r.HandleOf("metal"); handle != firstHandle {
		t.Errorf("HandleOf(metal): got %d, want first-registered %d", handle, firstHandle)
	}
	if slot, _ := r.SlotOf("metal"); slot != 0 {
		t.Errorf("SlotOf(metal): got %d, want 0", slot)
	}
}

func TestLookupMissSentinel(t *testing.T) {
	r, _ := newTestRegistry(t)

	if slot, ok := r.SlotOf("nope"); ok || slot != -1 {
		t.Errorf("SlotOf miss: got (%d, %v), want (-1, false)", slot, ok)
	}
	if handle, ok := r.HandleOf("nope"); ok || handle != 0 {
		t.Errorf("HandleOf miss: got (%d, %v), want (0, false)", handle, ok)
	}
}

func TestLoadRejectsUnsupportedChannels(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(t)

	err := r.Load(writeGrayPNG(t, dir, "gray.png"), "gray")
	if err == nil {
		t.Fatal("expected error for grayscale image")
	}
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("expected ErrUnsupportedChannels, got %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("failed load must not register, count %d", r.Count())
	}
}

func TestLoadMissingFile(t *testing.T) {
	r, _ := newTestRegistry(t)

	if err := r.Load(filepath.Join(t.TempDir(), "absent.png"), "absent"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, ok := r.SlotOf("absent"); ok {
		t.Error("failed load must leave the tag unresolvable")
	}
}

func TestLoadSlotExhaustion(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRegistry(t)

	path := writePNG(t, dir, "tile.png")
	for i := 0; i < MaxSlots; i++ {
		if err := r.Load(path, "tile"); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}

	err := r.Load(path, "overflow")
	if !errors.Is(err, ErrSlotsExhausted) {
		t.Errorf("expected ErrSlotsExhausted, got %v", err)
	}
	if r.Count() != MaxSlots {
		t.Errorf("count after exhaustion: got %d, want %d", r.Count(), MaxSlots)
	}
}

func TestDecodeFlipsVertically(t *testing.T) {
	dir := t.TempDir()

	// Top row red, bottom row blue.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(dir, "flip.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	decoded, channels, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if channels != 4 {
		t.Errorf("channels: got %d, want 4", channels)
	}

	// After the flip, row 0 holds the blue pixels.
	if c := decoded.RGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Errorf("row 0 should be blue after flip, got %+v", c)
	}
	if c := decoded.RGBAAt(0, 1); c.R != 255 || c.B != 0 {
		t.Errorf("row 1 should be red after flip, got %+v", c)
	}
}
