package systems

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/entities"
	"github.com/decker502/fluffy/pkg/input"
	"github.com/decker502/fluffy/pkg/render"
)

// 测试用贴图尺寸
const (
	testCharFrameW = 32
	testCharFrameH = 40
	testArrowW     = 20
	testArrowH     = 6
	testEnemyW     = 40
	testEnemyH     = 30
)

func newTestImage(w, h int) render.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func newTestFrames(n, w, h int) []render.Image {
	frames := make([]render.Image, n)
	for i := range frames {
		frames[i] = newTestImage(w, h)
	}
	return frames
}

// fakeAssets 内存中的资源表
type fakeAssets map[string][]render.Image

func (a fakeAssets) Frames(group string) []render.Image { return a[group] }

func (a fakeAssets) Image(id string) render.Image {
	if frames := a[id]; len(frames) > 0 {
		return frames[0]
	}
	return nil
}

func newFakeAssets() fakeAssets {
	return fakeAssets{
		entities.AssetCharacterIdle:   newTestFrames(4, testCharFrameW, testCharFrameH),
		entities.AssetCharacterWalk:   newTestFrames(6, testCharFrameW, testCharFrameH),
		entities.AssetCharacterJump:   newTestFrames(8, testCharFrameW, testCharFrameH),
		entities.AssetCharacterAttack: newTestFrames(6, testCharFrameW, testCharFrameH),
		entities.AssetBow:             newTestFrames(6, 16, 16),
		entities.AssetArrow:           newTestFrames(1, testArrowW, testArrowH),
		entities.AssetEnemyFly:        newTestFrames(8, testEnemyW, testEnemyH),
		entities.AssetEnemyHit:        newTestFrames(4, testEnemyW, testEnemyH),
		entities.AssetEnemyDie:        newTestFrames(15, testEnemyW, testEnemyH),
		entities.AssetTileGrass:       newTestFrames(1, 32, 32),
	}
}

// fakeInput 可编程的输入来源
type fakeInput struct {
	down    map[input.Key]bool
	pressed map[input.Key]bool
	clicked map[input.MouseButton]bool
	mouseX  float64
	mouseY  float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		down:    map[input.Key]bool{},
		pressed: map[input.Key]bool{},
		clicked: map[input.MouseButton]bool{},
	}
}

func (f *fakeInput) IsKeyDown(k input.Key) bool                    { return f.down[k] }
func (f *fakeInput) IsKeyPressed(k input.Key) bool                 { return f.pressed[k] }
func (f *fakeInput) IsMouseButtonPressed(b input.MouseButton) bool { return f.clicked[b] }
func (f *fakeInput) MousePosition() (float64, float64)             { return f.mouseX, f.mouseY }

// reset 清除边沿触发的输入，模拟进入下一帧
func (f *fakeInput) reset() {
	f.pressed = map[input.Key]bool{}
	f.clicked = map[input.MouseButton]bool{}
}

type drawCall struct {
	img  render.Image
	opts render.DrawOptions
}

type outlineCall struct {
	x, y, w, h float64
	clr        color.Color
}

// recordingRenderer 记录所有绘制调用
type recordingRenderer struct {
	draws    []drawCall
	outlines []outlineCall
}

func (r *recordingRenderer) DrawImage(img render.Image, opts render.DrawOptions) {
	r.draws = append(r.draws, drawCall{img: img, opts: opts})
}

func (r *recordingRenderer) DrawRectOutline(x, y, w, h, thickness float64, clr color.Color) {
	r.outlines = append(r.outlines, outlineCall{x: x, y: y, w: w, h: h, clr: clr})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestCharacter 创建角色并返回角色系统
func newTestCharacter(t *testing.T, src input.Source) (*ecs.EntityManager, *CharacterSystem, ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	assets := newFakeAssets()

	id, err := entities.NewCharacterEntity(em, assets, cfg, 100, 560)
	if err != nil {
		t.Fatalf("NewCharacterEntity() error: %v", err)
	}

	cs := NewCharacterSystem(em, src, cfg.Player, assets.Image(entities.AssetArrow), 1600, 600)
	return em, cs, id
}
