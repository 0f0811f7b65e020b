package entities

import (
	"image"

	"github.com/decker502/fluffy/pkg/render"
)

// testAssets 内存中的资源表
type testAssets map[string][]render.Image

func (a testAssets) Frames(group string) []render.Image { return a[group] }

func (a testAssets) Image(id string) render.Image {
	if frames := a[id]; len(frames) > 0 {
		return frames[0]
	}
	return nil
}

func newFrames(n, w, h int) []render.Image {
	frames := make([]render.Image, n)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return frames
}

func newTestAssets() testAssets {
	return testAssets{
		AssetCharacterIdle:   newFrames(4, 32, 40),
		AssetCharacterWalk:   newFrames(6, 32, 40),
		AssetCharacterJump:   newFrames(8, 32, 40),
		AssetCharacterAttack: newFrames(6, 32, 40),
		AssetBow:             newFrames(6, 16, 16),
		AssetArrow:           newFrames(1, 20, 6),
		AssetEnemyFly:        newFrames(8, 40, 30),
		AssetEnemyHit:        newFrames(4, 40, 30),
		AssetEnemyDie:        newFrames(15, 40, 30),
		AssetTileGrass:       newFrames(1, 32, 32),
	}
}
