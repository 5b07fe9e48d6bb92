// menucheck 检查菜单配置：媒体文件是否存在、格式是否受支持、按键是否有效
//
// 用法：
//
//	go run ./cmd/menucheck -config arcademenu.yaml
//
// 发现问题时以状态码 1 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/arcademenu/pkg/config"
	"github.com/decker502/arcademenu/pkg/input"
)

var (
	imageExts = map[string]bool{".bmp": true, ".png": true, ".jpg": true, ".jpeg": true}
	audioExts = map[string]bool{".wav": true, ".ogg": true, ".mp3": true}
)

// problem 一条检查结果
type problem struct {
	field   string
	message string
}

func (p problem) String() string {
	return fmt.Sprintf("%s: %s", p.field, p.message)
}

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "菜单配置文件路径")
	verbose := flag.Bool("verbose", false, "输出加载日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	problems := checkConfig(cfg, fileExists)
	fmt.Printf("配置: %s\n", *configPath)
	fmt.Printf("菜单项: %d, 背景音乐: %d, 激活键: %d\n",
		len(cfg.Items), len(cfg.BackgroundMusic), len(cfg.ActivateKeys))

	if len(problems) == 0 {
		fmt.Println("✅ 未发现问题")
		return
	}
	fmt.Printf("❌ 发现 %d 个问题:\n", len(problems))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(1)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// checkConfig 返回配置中所有可发现的问题
func checkConfig(cfg *config.MenuConfig, exists func(string) bool) []problem {
	var problems []problem

	checkFile := func(field, path string, exts map[string]bool) {
		resolved := cfg.ResolvePath(path)
		if !exts[strings.ToLower(filepath.Ext(path))] {
			problems = append(problems, problem{field, fmt.Sprintf("unsupported format %q", path)})
		}
		if !exists(resolved) {
			problems = append(problems, problem{field, fmt.Sprintf("file not found: %s", resolved)})
		}
	}

	checkFile("background_image", cfg.BackgroundImage, imageExts)
	checkFile("volume_up_image", cfg.VolumeUpImage, imageExts)
	checkFile("volume_down_image", cfg.VolumeDownImage, imageExts)
	checkFile("select_sound", cfg.SelectSound, audioExts)
	for i, music := range cfg.BackgroundMusic {
		checkFile(fmt.Sprintf("background_musics[%d]", i), music, audioExts)
	}
	for i, item := range cfg.Items {
		checkFile(fmt.Sprintf("items[%d] (%s)", i, item.ItemName()), item.Image, imageExts)
	}

	upKey, _ := input.ParseKey(cfg.Volume.UpKey)
	downKey, _ := input.ParseKey(cfg.Volume.DownKey)
	for i, key := range cfg.ActivateKeys {
		field := fmt.Sprintf("activate_keys[%d]", i)
		code, ok := input.ParseKey(key)
		switch {
		case !ok:
			problems = append(problems, problem{field, fmt.Sprintf("%q is not a single ASCII character and is ignored", key)})
		case code == upKey || code == downKey:
			problems = append(problems, problem{field, fmt.Sprintf("%q is also a volume key; volume wins", key)})
		}
	}
	if len(cfg.Items) == 0 {
		problems = append(problems, problem{"items", "menu has no items"})
	}
	return problems
}
