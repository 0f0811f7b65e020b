package game

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    placeholder: {...}
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // 贴图根目录（未通过 --assets 或 assets.dir 指定时使用）
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup 一段动画（或一张单图）的全部帧来源
//
// Example from resources.yaml:
//
//	bow:
//	  images:
//	    - id: IMAGE_BOW_0
//	      path: bow/tile000.png
//	  placeholder:
//	    width: 24
//	    height: 24
//	    frames: 6
//	    color: "#8b5a3c"
type ResourceGroup struct {
	Images      []ImageResource  `yaml:"images"`      // 按帧顺序排列的图片
	Placeholder *PlaceholderSpec `yaml:"placeholder"` // 贴图缺失时的占位帧描述（可选）
}

// ImageResource represents a single image resource definition.
// It can be a simple image or a horizontal sprite sheet with cols frames.
//
// Examples:
//
//	Simple image:
//	  - id: IMAGE_ARROW
//	    path: arrow.png
//
//	Sprite sheet:
//	  - id: IMAGE_CHARACTER_WALK
//	    path: character/Walk.png
//	    cols: 6
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns (0 if not a sprite sheet)
}

// FrameCount 该图片贡献的帧数
func (r ImageResource) FrameCount() int {
	if r.Cols > 1 {
		return r.Cols
	}
	return 1
}

// PlaceholderSpec 占位帧的尺寸、帧数与颜色
type PlaceholderSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`
	Color  string `yaml:"color"` // "#rrggbb"
}

// FrameCount 返回分组的总帧数
func (g ResourceGroup) FrameCount() int {
	n := 0
	for _, img := range g.Images {
		n += img.FrameCount()
	}
	return n
}

// ParseResourceConfig 解析并验证 YAML 格式的资源清单
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证资源清单
//
// 每个分组至少要有一张图片或一个占位帧描述；图片 ID 全局唯一。
func (c *ResourceConfig) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("no resource groups defined")
	}

	seen := make(map[string]string)
	for _, name := range c.GroupNames() {
		group := c.Groups[name]
		if len(group.Images) == 0 && group.Placeholder == nil {
			return fmt.Errorf("group %q has neither images nor placeholder", name)
		}

		for i, img := range group.Images {
			if img.Path == "" {
				return fmt.Errorf("group %q image %d has empty path", name, i)
			}
			if img.Cols < 0 {
				return fmt.Errorf("group %q image %q has negative cols", name, img.Path)
			}
			if img.ID == "" {
				continue
			}
			if other, dup := seen[img.ID]; dup {
				return fmt.Errorf("duplicate image id %q in groups %q and %q", img.ID, other, name)
			}
			seen[img.ID] = name
		}

		if p := group.Placeholder; p != nil {
			if p.Width <= 0 || p.Height <= 0 {
				return fmt.Errorf("group %q placeholder size must be positive, got %dx%d", name, p.Width, p.Height)
			}
			if p.Color != "" {
				if _, err := parseHexColor(p.Color); err != nil {
					return fmt.Errorf("group %q placeholder: %w", name, err)
				}
			}
		}
	}

	return nil
}

// GroupNames 返回按名称排序的分组列表
func (c *ResourceConfig) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseHexColor 解析 "#rrggbb" 形式的颜色
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
