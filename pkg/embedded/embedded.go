// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源（默认配置等）。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultConfigPath 嵌入的默认菜单配置
const DefaultConfigPath = "assets/config/arcademenu.yaml"

var (
	assetsFS    fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置嵌入的资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一为 embed.FS 使用的正斜杠路径，并检查 "assets/" 前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "assets/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return path, nil
}

// Open 打开嵌入资源，路径必须以 "assets/" 开头
func Open(path string) (fs.File, error) {
	name, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(name)
}

// ReadFile 读取嵌入资源的全部内容，路径必须以 "assets/" 开头
func ReadFile(path string) ([]byte, error) {
	name, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, name)
}

// Exists 检查文件是否存在于嵌入资源中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// DefaultConfig 返回嵌入的默认菜单配置（YAML）
func DefaultConfig() ([]byte, error) {
	return ReadFile(DefaultConfigPath)
}
