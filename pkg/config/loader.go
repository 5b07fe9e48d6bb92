package config

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format int

const (
	// FormatYAML YAML 配置（默认）
	FormatYAML Format = iota
	// FormatXML 旧版 ArcadeMenuConfig.xml 格式
	FormatXML
)

// FormatFromPath 根据扩展名判断格式：.xml 为旧版 XML，其余按 YAML 处理
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return FormatXML
	}
	return FormatYAML
}

// Load reads, parses, defaults and validates the menu configuration at path.
//
// A missing file is reported as ErrConfigIncomplete, a malformed document as
// ErrConfigParse. The returned config is fully populated.
func Load(path string) (*MenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrConfigIncomplete, err)
		}
		return nil, fmt.Errorf("failed to read menu config %s: %w", path, err)
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("[Config] Loaded %s: %d items, %d music tracks, %d activation keys",
		path, len(cfg.Items), len(cfg.BackgroundMusic), len(cfg.ActivateKeys))
	return cfg, nil
}

// Parse decodes a configuration document, applies defaults and validates it.
func Parse(data []byte, format Format) (*MenuConfig, error) {
	var cfg *MenuConfig
	var err error

	switch format {
	case FormatXML:
		cfg, err = parseXML(data)
	default:
		cfg = &MenuConfig{}
		if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
			err = fmt.Errorf("%w: %v", ErrConfigParse, uerr)
		}
	}
	if err != nil {
		return nil, err
	}

	cfg.trimSpace()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *MenuConfig) trimSpace() {
	c.BackgroundImage = strings.TrimSpace(c.BackgroundImage)
	c.SelectSound = strings.TrimSpace(c.SelectSound)
	c.VolumeUpImage = strings.TrimSpace(c.VolumeUpImage)
	c.VolumeDownImage = strings.TrimSpace(c.VolumeDownImage)

	music := c.BackgroundMusic[:0]
	for _, m := range c.BackgroundMusic {
		if m = strings.TrimSpace(m); m != "" {
			music = append(music, m)
		}
	}
	c.BackgroundMusic = music

	for i := range c.Items {
		c.Items[i].Image = strings.TrimSpace(c.Items[i].Image)
		c.Items[i].Command = strings.TrimSpace(c.Items[i].Command)
	}
}

// legacyItem 对应旧版 XML 中的 <item><image/><command/></item>
type legacyItem struct {
	Image   string `xml:"image"`
	Command string `xml:"command"`
}

// parseXML decodes the legacy layout, in which every setting is a top-level
// element (no single document root is required):
//
//	<background_image>bg.bmp</background_image>
//	<background_musics><file>a.ogg</file></background_musics>
//	<activate_keys><key>x</key></activate_keys>
//	<select_sound>select.wav</select_sound>
//	<volume_up_image>up.bmp</volume_up_image>
//	<volume_down_image>down.bmp</volume_down_image>
//	<items><item><image>a.bmp</image><command>a</command></item></items>
//
// Unknown elements are descended into, so a wrapping root element also works.
func parseXML(data []byte) (*MenuConfig, error) {
	cfg := &MenuConfig{}
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var derr error
		switch start.Name.Local {
		case "background_image":
			derr = dec.DecodeElement(&cfg.BackgroundImage, &start)
		case "select_sound":
			derr = dec.DecodeElement(&cfg.SelectSound, &start)
		case "volume_up_image":
			derr = dec.DecodeElement(&cfg.VolumeUpImage, &start)
		case "volume_down_image":
			derr = dec.DecodeElement(&cfg.VolumeDownImage, &start)
		case "background_musics":
			var v struct {
				Files []string `xml:"file"`
			}
			derr = dec.DecodeElement(&v, &start)
			cfg.BackgroundMusic = append(cfg.BackgroundMusic, v.Files...)
		case "activate_keys":
			var v struct {
				Keys []string `xml:"key"`
			}
			derr = dec.DecodeElement(&v, &start)
			// 旧版只取每个 key 的首字符，这里保留原字符串交给 KeyBindings 统一处理
			for _, k := range v.Keys {
				cfg.ActivateKeys = append(cfg.ActivateKeys, strings.TrimSpace(k))
			}
		case "items":
			var v struct {
				Items []legacyItem `xml:"item"`
			}
			derr = dec.DecodeElement(&v, &start)
			for _, it := range v.Items {
				cfg.Items = append(cfg.Items, ItemConfig{Image: it.Image, Command: it.Command})
			}
		}
		if derr != nil {
			return nil, fmt.Errorf("%w: <%s>: %v", ErrConfigParse, start.Name.Local, derr)
		}
	}

	return cfg, nil
}
