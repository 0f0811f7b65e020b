package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fluffy/pkg/render"
)

// ResourceManager is responsible for loading the sprite groups listed in
// data/resources.yaml and caching the decoded images.
//
// Images are read from an fs.FS rooted at the asset directory, so the same
// code serves os.DirFS in the game and fstest.MapFS in tests.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine before the first frame.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets"), cfg)
//	table, err := rm.LoadAll()
type ResourceManager struct {
	fsys   fs.FS
	config *ResourceConfig

	// placeholders 为 true 时缺失的分组用占位帧代替
	placeholders bool

	imageCache map[string]image.Image // Cache for decoded images: path -> Image

	// toImage 把解码后的图片转换为绘制句柄（默认转换为 *ebiten.Image）
	toImage func(image.Image) render.Image
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: 以贴图根目录为根的文件系统
//   - cfg: 已验证的资源清单
func NewResourceManager(fsys fs.FS, cfg *ResourceConfig) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		config:     cfg,
		imageCache: make(map[string]image.Image),
		toImage:    toEbitenImage,
	}
}

// toEbitenImage 转换为 GPU 图片
func toEbitenImage(img image.Image) render.Image {
	return ebiten.NewImageFromImage(img)
}

// SetPlaceholders 开关占位帧回退
func (rm *ResourceManager) SetPlaceholders(enabled bool) {
	rm.placeholders = enabled
}

// Config 返回资源清单
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// LoadImage decodes an image file from the asset FS and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns:
//   - The decoded image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(p string) (image.Image, error) {
	p = path.Clean(strings.TrimLeft(p, "/"))

	if cached, exists := rm.imageCache[p]; exists {
		return cached, nil
	}

	if rm.fsys == nil {
		return nil, fmt.Errorf("failed to open image file %s: no asset directory", p)
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	rm.imageCache[p] = img
	return img, nil
}

// subImager 标准库中支持 SubImage 的图片类型（*image.RGBA、*image.NRGBA 等）
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// sliceSheet 把横向 spritesheet 等宽切分为 cols 帧
func sliceSheet(img image.Image, cols int) ([]image.Image, error) {
	if cols <= 1 {
		return []image.Image{img}, nil
	}

	sub, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("image type %T cannot be sliced", img)
	}

	b := img.Bounds()
	frameW := b.Dx() / cols
	if frameW == 0 {
		return nil, fmt.Errorf("sheet width %d is smaller than %d columns", b.Dx(), cols)
	}

	frames := make([]image.Image, cols)
	for i := range frames {
		frames[i] = sub.SubImage(image.Rect(b.Min.X+i*frameW, b.Min.Y, b.Min.X+(i+1)*frameW, b.Max.Y))
	}
	return frames, nil
}

// LoadGroup 加载一个分组的全部帧
//
// 任何一张图片加载失败时：开启占位帧且分组有 placeholder 描述则返回占位帧，
// 否则返回错误。
func (rm *ResourceManager) LoadGroup(name string) ([]render.Image, error) {
	group, ok := rm.config.Groups[name]
	if !ok {
		return nil, fmt.Errorf("resource group %q not found", name)
	}

	frames, err := rm.loadGroupImages(group)
	if err == nil && len(frames) > 0 {
		return frames, nil
	}
	if err == nil {
		err = fmt.Errorf("group has no images")
	}

	if rm.placeholders && group.Placeholder != nil {
		log.Warn("[ResourceManager] using placeholder frames", "group", name, "reason", err)
		var out []render.Image
		for _, img := range GeneratePlaceholderFrames(*group.Placeholder) {
			out = append(out, rm.toImage(img))
		}
		return out, nil
	}

	return nil, fmt.Errorf("failed to load resource group %q: %w", name, err)
}

// loadGroupImages 按清单顺序解码并切分分组内的图片
func (rm *ResourceManager) loadGroupImages(group ResourceGroup) ([]render.Image, error) {
	frames := make([]render.Image, 0, group.FrameCount())
	for _, res := range group.Images {
		img, err := rm.LoadImage(res.Path)
		if err != nil {
			return nil, err
		}

		parts, err := sliceSheet(img, res.Cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", res.Path, err)
		}
		for _, p := range parts {
			frames = append(frames, rm.toImage(p))
		}
	}
	return frames, nil
}

// LoadAll 加载清单中的所有分组，生成贴图表
//
// 所有失败的分组合并为一个错误返回，便于一次看到全部缺失的文件。
func (rm *ResourceManager) LoadAll() (*AssetTable, error) {
	table := NewAssetTable()

	var errs []error
	for _, name := range rm.config.GroupNames() {
		frames, err := rm.LoadGroup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		table.Set(name, frames)

		group := rm.config.Groups[name]
		if len(group.Images) == 1 && group.Images[0].ID != "" && len(frames) > 0 {
			table.SetImage(group.Images[0].ID, frames[0])
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	log.Info("[ResourceManager] assets loaded", "groups", table.Len())
	return table, nil
}

// RequireGroups 检查贴图表包含所有指定分组且每组至少一帧
func RequireGroups(table *AssetTable, groups ...string) error {
	var missing []string
	for _, g := range groups {
		if len(table.Frames(g)) == 0 {
			missing = append(missing, g)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing asset groups: %s", strings.Join(missing, ", "))
	}
	return nil
}
