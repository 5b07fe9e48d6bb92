package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/arcademenu/pkg/input"
)

var (
	// ErrConfigIncomplete 缺少必需字段（或配置文件不存在）
	ErrConfigIncomplete = errors.New("menu config incomplete")
	// ErrConfigParse 配置文件格式错误或字段值非法
	ErrConfigParse = errors.New("menu config parse error")
)

// MenuConfig is the fully populated menu configuration.
//
// The top-level keys match the legacy ArcadeMenuConfig.xml element names so the
// same document can be expressed in either format.
//
// Example:
//
//	background_image: media/background.bmp
//	background_musics:
//	  - media/music1.ogg
//	activate_keys: ["x", "z"]
//	select_sound: media/select.wav
//	volume_up_image: media/volume_up.bmp
//	volume_down_image: media/volume_down.bmp
//	items:
//	  - image: media/pacman.bmp
//	    command: mame pacman
type MenuConfig struct {
	BasePath        string       `yaml:"base_path,omitempty"`
	BackgroundImage string       `yaml:"background_image"`
	BackgroundMusic []string     `yaml:"background_musics"`
	ActivateKeys    []string     `yaml:"activate_keys"`
	SelectSound     string       `yaml:"select_sound"`
	VolumeUpImage   string       `yaml:"volume_up_image"`
	VolumeDownImage string       `yaml:"volume_down_image"`
	Items           []ItemConfig `yaml:"items"`

	Display   DisplayConfig   `yaml:"display,omitempty"`
	Animation AnimationConfig `yaml:"animation,omitempty"`
	Volume    VolumeConfig    `yaml:"volume,omitempty"`
	Input     InputConfig     `yaml:"input,omitempty"`
}

// ItemConfig 单个菜单项：图片 + 激活时执行的命令
type ItemConfig struct {
	Name    string `yaml:"name,omitempty"` // 显示名（日志用），为空时使用图片路径
	Image   string `yaml:"image"`
	Command string `yaml:"command"`
}

// DisplayConfig 屏幕参数
type DisplayConfig struct {
	Width             int     `yaml:"width,omitempty"`
	Height            int     `yaml:"height,omitempty"`
	Windowed          bool    `yaml:"windowed,omitempty"`
	ItemHeightPercent float64 `yaml:"item_height_percent,omitempty"` // 菜单项高度占屏幕高度的比例
}

// AnimationConfig 选中动画参数
type AnimationConfig struct {
	BorderSize        int     `yaml:"border_size,omitempty"`
	Speed             float64 `yaml:"speed,omitempty"`
	ScrollEaseSeconds float64 `yaml:"scroll_ease_seconds,omitempty"` // 0 表示立即跳转
}

// VolumeConfig 主音量与音量提示图标参数
type VolumeConfig struct {
	Initial        int     `yaml:"initial,omitempty"`
	Delta          int     `yaml:"delta,omitempty"`
	Min            int     `yaml:"min,omitempty"`
	Max            int     `yaml:"max,omitempty"`
	OverlaySeconds float64 `yaml:"overlay_seconds,omitempty"`
	OverlayWidth   int     `yaml:"overlay_width,omitempty"`
	OverlayHeight  int     `yaml:"overlay_height,omitempty"`
	EffectVolume   float64 `yaml:"effect_volume,omitempty"` // 音乐/音效播放音量 (0.0 ~ 1.0)
	Command        string  `yaml:"mixer_command,omitempty"`
	Placeholder    string  `yaml:"mixer_placeholder,omitempty"`
	DisableMixer   bool    `yaml:"disable_mixer,omitempty"`
	UpKey          string  `yaml:"up_key,omitempty"`
	DownKey        string  `yaml:"down_key,omitempty"`
}

// InputConfig 输入参数
type InputConfig struct {
	EdgeMode string `yaml:"edge_mode,omitempty"` // per_key（默认）或 latch
}

// Validate checks required fields and value ranges.
//
// Missing required fields are reported together, wrapped in ErrConfigIncomplete.
// Out-of-range values are wrapped in ErrConfigParse.
func (c *MenuConfig) Validate() error {
	var missing []string
	if c.BackgroundImage == "" {
		missing = append(missing, "background_image")
	}
	if c.SelectSound == "" {
		missing = append(missing, "select_sound")
	}
	if c.VolumeUpImage == "" {
		missing = append(missing, "volume_up_image")
	}
	if c.VolumeDownImage == "" {
		missing = append(missing, "volume_down_image")
	}
	for i, item := range c.Items {
		if item.Image == "" {
			missing = append(missing, fmt.Sprintf("items[%d].image", i))
		}
		if item.Command == "" {
			missing = append(missing, fmt.Sprintf("items[%d].command", i))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfigIncomplete, strings.Join(missing, ", "))
	}

	if c.Volume.Min > c.Volume.Max {
		return fmt.Errorf("%w: volume.min (%d) > volume.max (%d)", ErrConfigParse, c.Volume.Min, c.Volume.Max)
	}
	if c.Display.ItemHeightPercent > 1 {
		return fmt.Errorf("%w: display.item_height_percent %.3f exceeds 1.0", ErrConfigParse, c.Display.ItemHeightPercent)
	}
	if _, err := input.ParseEdgeMode(c.Input.EdgeMode); err != nil {
		return fmt.Errorf("%w: input.edge_mode: %v", ErrConfigParse, err)
	}
	if _, ok := input.ParseKey(c.Volume.UpKey); !ok {
		return fmt.Errorf("%w: volume.up_key %q is not a single ASCII character", ErrConfigParse, c.Volume.UpKey)
	}
	if _, ok := input.ParseKey(c.Volume.DownKey); !ok {
		return fmt.Errorf("%w: volume.down_key %q is not a single ASCII character", ErrConfigParse, c.Volume.DownKey)
	}
	return nil
}

// ResolvePath 将媒体路径拼接到 base_path 下（绝对路径保持不变）
func (c *MenuConfig) ResolvePath(path string) string {
	if c.BasePath == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BasePath, path)
}

// ItemName 返回菜单项的显示名
func (c ItemConfig) ItemName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Image
}

// KeyBindings holds the parsed activation and volume keys.
type KeyBindings struct {
	Activation map[input.KeyCode]struct{}
	VolumeUp   input.KeyCode
	VolumeDown input.KeyCode
}

// KeyBindings parses the configured keys into a hash set.
//
// Activation keys that are not a single ASCII character degrade to KeyNone.
// KeyNone is never put in the set (it would match unmapped platform keys), so
// such entries are effectively disabled; each one is logged.
func (c *MenuConfig) KeyBindings() KeyBindings {
	kb := KeyBindings{
		Activation: make(map[input.KeyCode]struct{}, len(c.ActivateKeys)),
	}
	for _, s := range c.ActivateKeys {
		code, ok := input.ParseKey(s)
		if !ok {
			log.Printf("[Config] Warning: activation key %q is not a single ASCII character, ignored", s)
			continue
		}
		kb.Activation[code] = struct{}{}
	}
	kb.VolumeUp, _ = input.ParseKey(c.Volume.UpKey)
	kb.VolumeDown, _ = input.ParseKey(c.Volume.DownKey)
	return kb
}

// EdgeMode 返回解析后的边沿检测模式（Validate 已保证合法）
func (c *MenuConfig) EdgeMode() input.EdgeMode {
	mode, _ := input.ParseEdgeMode(c.Input.EdgeMode)
	return mode
}
