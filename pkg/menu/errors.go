package menu

import "errors"

var (
	// ErrInit 子系统初始化失败（启动阶段致命）
	ErrInit = errors.New("menu init failed")
	// ErrImageNotFound 图片资源缺失；加载时记录日志并以占位图替代
	ErrImageNotFound = errors.New("image not found")
	// ErrChildNonZero 外部命令返回非零退出码；仅记录日志，菜单照常恢复
	ErrChildNonZero = errors.New("launched command exited with non-zero status")
)
