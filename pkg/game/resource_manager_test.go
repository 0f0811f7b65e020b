package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/fluffy/pkg/render"
)

// encodePNG 生成指定尺寸的 PNG 数据
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

// newTestResourceManager 使用内存文件系统，且不创建 GPU 图片
func newTestResourceManager(t *testing.T, files fstest.MapFS, yamlContent string) *ResourceManager {
	t.Helper()
	cfg, err := ParseResourceConfig([]byte(yamlContent))
	if err != nil {
		t.Fatalf("ParseResourceConfig() error: %v", err)
	}
	rm := NewResourceManager(files, cfg)
	rm.toImage = func(img image.Image) render.Image { return img }
	return rm
}

const testResourcesYAML = `
groups:
  idle:
    images:
      - id: IMAGE_IDLE_0
        path: idle/tile000.png
      - id: IMAGE_IDLE_1
        path: idle/tile001.png
  walk:
    images:
      - id: IMAGE_WALK
        path: Walk.png
        cols: 4
  arrow:
    images:
      - id: IMAGE_ARROW
        path: arrow.png
    placeholder:
      width: 24
      height: 6
`

func TestLoadImageCaches(t *testing.T) {
	files := fstest.MapFS{"arrow.png": {Data: encodePNG(t, 24, 6)}}
	rm := newTestResourceManager(t, files, testResourcesYAML)

	first, err := rm.LoadImage("arrow.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if first.Bounds().Dx() != 24 || first.Bounds().Dy() != 6 {
		t.Errorf("expected 24x6, got %v", first.Bounds())
	}

	// 删除文件后仍能从缓存取到
	delete(files, "arrow.png")
	second, err := rm.LoadImage("/arrow.png")
	if err != nil {
		t.Fatalf("cached LoadImage() error: %v", err)
	}
	if first != second {
		t.Error("expected cached image instance")
	}
}

func TestLoadImageErrors(t *testing.T) {
	files := fstest.MapFS{"broken.png": {Data: []byte("not a png")}}
	rm := newTestResourceManager(t, files, testResourcesYAML)

	if _, err := rm.LoadImage("missing.png"); err == nil || !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("expected open error, got %v", err)
	}
	if _, err := rm.LoadImage("broken.png"); err == nil || !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestLoadGroupFramesAndSheet(t *testing.T) {
	files := fstest.MapFS{
		"idle/tile000.png": {Data: encodePNG(t, 32, 40)},
		"idle/tile001.png": {Data: encodePNG(t, 30, 40)},
		"Walk.png":         {Data: encodePNG(t, 128, 40)},
	}
	rm := newTestResourceManager(t, files, testResourcesYAML)

	idle, err := rm.LoadGroup("idle")
	if err != nil {
		t.Fatalf("LoadGroup(idle) error: %v", err)
	}
	if len(idle) != 2 || idle[1].Bounds().Dx() != 30 {
		t.Errorf("expected 2 idle frames in file order, got %d", len(idle))
	}

	walk, err := rm.LoadGroup("walk")
	if err != nil {
		t.Fatalf("LoadGroup(walk) error: %v", err)
	}
	if len(walk) != 4 {
		t.Fatalf("expected 4 sheet frames, got %d", len(walk))
	}
	if got := walk[2].Bounds(); got != image.Rect(64, 0, 96, 40) {
		t.Errorf("expected frame 2 at (64,0)-(96,40), got %v", got)
	}

	if _, err := rm.LoadGroup("unknown"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestLoadGroupPlaceholderFallback(t *testing.T) {
	rm := newTestResourceManager(t, fstest.MapFS{}, testResourcesYAML)

	if _, err := rm.LoadGroup("arrow"); err == nil {
		t.Fatal("missing file should fail without placeholders")
	}

	rm.SetPlaceholders(true)
	frames, err := rm.LoadGroup("arrow")
	if err != nil {
		t.Fatalf("LoadGroup() with placeholders error: %v", err)
	}
	if len(frames) != 1 || frames[0].Bounds().Dx() != 24 || frames[0].Bounds().Dy() != 6 {
		t.Errorf("expected one 24x6 placeholder, got %d frames", len(frames))
	}

	// 没有 placeholder 描述的分组仍然报错
	if _, err := rm.LoadGroup("idle"); err == nil {
		t.Error("group without placeholder should still fail")
	}
}

func TestLoadAll(t *testing.T) {
	files := fstest.MapFS{
		"idle/tile000.png": {Data: encodePNG(t, 32, 40)},
		"idle/tile001.png": {Data: encodePNG(t, 32, 40)},
		"arrow.png":        {Data: encodePNG(t, 24, 6)},
	}
	rm := newTestResourceManager(t, files, testResourcesYAML)

	// walk 缺失：所有错误一起返回
	if _, err := rm.LoadAll(); err == nil || !strings.Contains(err.Error(), `"walk"`) {
		t.Fatalf("expected error mentioning walk, got %v", err)
	}

	files["Walk.png"] = &fstest.MapFile{Data: encodePNG(t, 64, 40)}
	table, err := rm.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("expected 3 groups, got %d", table.Len())
	}
	if table.Image("IMAGE_ARROW") == nil {
		t.Error("single-image group should be reachable by id")
	}
	if err := RequireGroups(table, "idle", "walk", "arrow"); err != nil {
		t.Errorf("RequireGroups() error: %v", err)
	}
	if err := RequireGroups(table, "idle", "bow"); err == nil || !strings.Contains(err.Error(), "bow") {
		t.Errorf("expected missing bow, got %v", err)
	}
}

func TestSliceSheetErrors(t *testing.T) {
	if _, err := sliceSheet(image.NewRGBA(image.Rect(0, 0, 3, 4)), 4); err == nil {
		t.Error("expected error when sheet is narrower than cols")
	}
	if _, err := sliceSheet(image.NewUniform(color.White), 2); err == nil {
		t.Error("expected error for image without SubImage")
	}
}
