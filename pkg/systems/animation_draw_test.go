package systems

import (
	"image"
	"math"
	"testing"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/render"
	"github.com/decker502/fluffy/pkg/utils"
)

func TestDrawAnimationFlip(t *testing.T) {
	tests := []struct {
		name      string
		dir       components.Direction
		wantX     float64
		wantWidth float64
	}{
		{"right", components.DirectionRight, 10, 30},
		{"left mirrors horizontally", components.DirectionLeft, 40, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRenderer{}
			anim := components.NewAnimation(newTestFrames(1, 30, 20), 0.1)

			DrawAnimation(r, anim, 10, 5, tt.dir)

			if len(r.draws) != 1 {
				t.Fatalf("expected 1 draw, got %d", len(r.draws))
			}
			opts := r.draws[0].opts
			if opts.X != tt.wantX || opts.DestWidth != tt.wantWidth {
				t.Errorf("got X=%f DestWidth=%f, want X=%f DestWidth=%f", opts.X, opts.DestWidth, tt.wantX, tt.wantWidth)
			}
			if opts.Y != 5 || opts.DestHeight != 20 {
				t.Errorf("vertical placement changed: Y=%f DestHeight=%f", opts.Y, opts.DestHeight)
			}
		})
	}
}

func TestDrawAnimationAppliesOffsetAndDebug(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewAnimation(newTestFrames(1, 30, 20), 0.1)
	anim.Offsets = []components.FrameOffset{{X: 3, Y: -2}}
	anim.Debug = true

	DrawAnimation(r, anim, 10, 5, components.DirectionRight)

	opts := r.draws[0].opts
	if opts.X != 13 || opts.Y != 3 {
		t.Errorf("expected offset position (13, 3), got (%f, %f)", opts.X, opts.Y)
	}
	if len(r.outlines) != 1 {
		t.Fatalf("expected 1 debug outline, got %d", len(r.outlines))
	}
	o := r.outlines[0]
	if o.x != 13 || o.y != 3 || o.w != 30 || o.h != 20 || o.clr != debugFrameColor {
		t.Errorf("unexpected outline %+v", o)
	}
}

func TestDrawAnimationSheetSource(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewSheetAnimation(newTestImage(40, 12), 4, 0.1)
	anim.CurrentFrame = 2

	DrawAnimation(r, anim, 0, 0, components.DirectionRight)

	src := r.draws[0].opts.Source
	if src == nil || *src != image.Rect(20, 0, 30, 12) {
		t.Errorf("expected sheet source (20,0)-(30,12), got %v", src)
	}
	if r.draws[0].opts.DestWidth != 10 {
		t.Errorf("expected dest width 10, got %f", r.draws[0].opts.DestWidth)
	}
}

func TestDrawBottomAligned(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewAnimation([]render.Image{
		newTestImage(40, 30),
		newTestImage(30, 20),
	}, 0.1)
	anim.CurrentFrame = 1
	box := utils.NewRect(100, 50, 30, 30)

	DrawBottomAligned(r, anim, box, components.DirectionRight)

	opts := r.draws[0].opts
	// 中心 115，最大宽 40：115-20+5 = 100；底边 80-20 = 60
	if opts.X != 100 || opts.Y != 60 {
		t.Errorf("expected (100, 60), got (%f, %f)", opts.X, opts.Y)
	}
	if opts.Y+opts.DestHeight != box.Bottom() {
		t.Errorf("frame bottom %f should sit on box bottom %f", opts.Y+opts.DestHeight, box.Bottom())
	}
}

func TestDrawCentered(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewAnimation(newTestFrames(1, 32, 40), 0.1)
	box := utils.NewRect(0, 0, 22, 40)

	DrawCentered(r, anim, box, components.DirectionRight)

	opts := r.draws[0].opts
	if opts.X != -5 || opts.Y != 0 {
		t.Errorf("expected (-5, 0), got (%f, %f)", opts.X, opts.Y)
	}
}

func TestDrawAnchored(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewAnimation(newTestFrames(1, 20, 10), 0.1)

	DrawAnchored(r, anim, 50, 50, 0.5, 1, components.DirectionRight)

	opts := r.draws[0].opts
	if opts.X != 40 || opts.Y != 40 {
		t.Errorf("expected (40, 40), got (%f, %f)", opts.X, opts.Y)
	}
}

func TestDrawRotatedLeftFlipsVertically(t *testing.T) {
	r := &recordingRenderer{}
	anim := components.NewAnimation(newTestFrames(1, 16, 8), 0.1)

	DrawRotated(r, anim, 100, 100, math.Pi, components.DirectionLeft)

	opts := r.draws[0].opts
	if opts.Rotation != math.Pi {
		t.Errorf("expected rotation pi, got %f", opts.Rotation)
	}
	if opts.X != 92 || opts.DestWidth != 16 {
		t.Errorf("horizontal placement should not flip: X=%f DestWidth=%f", opts.X, opts.DestWidth)
	}
	// 左上角 y = 96，垂直镜像后锚点下移一个帧高
	if opts.Y != 104 || opts.DestHeight != -8 {
		t.Errorf("expected Y=104 DestHeight=-8, got Y=%f DestHeight=%f", opts.Y, opts.DestHeight)
	}
}

func TestDrawHelpersIgnoreEmpty(t *testing.T) {
	r := &recordingRenderer{}
	empty := components.NewAnimation(nil, 0.1)
	box := utils.NewRect(0, 0, 10, 10)

	DrawAnimation(r, nil, 0, 0, components.DirectionRight)
	DrawAnimation(r, empty, 0, 0, components.DirectionRight)
	DrawCentered(r, nil, box, components.DirectionRight)
	DrawBottomAligned(r, empty, box, components.DirectionLeft)
	DrawRotated(r, nil, 0, 0, 0, components.DirectionLeft)
	DrawAnchored(r, empty, 0, 0, 0.5, 0.5, components.DirectionRight)

	if len(r.draws) != 0 || len(r.outlines) != 0 {
		t.Errorf("expected no draw calls, got %d draws and %d outlines", len(r.draws), len(r.outlines))
	}
}
