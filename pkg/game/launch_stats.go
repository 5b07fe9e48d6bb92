package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/arcademenu/pkg/menu"
)

// ItemStats 单个菜单项的启动统计
type ItemStats struct {
	Launches     int           `yaml:"launches"`     // 启动次数
	Failures     int           `yaml:"failures"`     // 启动失败或非零退出次数
	LastExitCode int           `yaml:"lastExitCode"` // 最近一次退出码
	LastLaunchID string        `yaml:"lastLaunchId"` // 最近一次启动 ID
	LastStarted  time.Time     `yaml:"lastStarted"`  // 最近一次启动时间
	TotalRuntime time.Duration `yaml:"totalRuntime"` // 累计运行时长
}

// LaunchStatsData 持久化的统计数据
type LaunchStatsData struct {
	Items map[string]*ItemStats `yaml:"items"` // 菜单项名称 -> 统计
}

// LaunchStats 启动统计管理器
// 负责记录每个菜单项的启动次数和退出码，并通过 gdata 持久化。
// 这是运行记录，不是用户设置：菜单的所有行为参数都来自配置文件。
type LaunchStats struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	data         *LaunchStatsData
}

// 存储路径常量
const (
	statsObject   = "launches"
	statsProperty = "stats"
)

// OpenLaunchStats 使用 gdata 打开统计存储
//
// gdata 不可用时返回仅内存的统计管理器，不视为错误
func OpenLaunchStats(appName string) *LaunchStats {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Stats] Warning: gdata unavailable: %v (launch stats kept in memory only)", err)
		manager = nil
	}
	return NewLaunchStats(manager)
}

// NewLaunchStats 创建统计管理器并加载已保存的数据
//
// 参数：
//   - gdataManager: 可为 nil（降级模式）
func NewLaunchStats(gdataManager *gdata.Manager) *LaunchStats {
	ls := &LaunchStats{
		gdataManager: gdataManager,
		data:         newLaunchStatsData(),
	}
	if err := ls.Load(); err != nil {
		// 统计损坏不影响菜单运行
		log.Printf("[Stats] Warning: Failed to load launch stats: %v (starting fresh)", err)
	}
	return ls
}

func newLaunchStatsData() *LaunchStatsData {
	return &LaunchStatsData{Items: make(map[string]*ItemStats)}
}

// Load 从 gdata 加载统计
func (ls *LaunchStats) Load() error {
	ls.data = newLaunchStatsData()
	if ls.gdataManager == nil {
		return nil
	}
	if !ls.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	raw, err := ls.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load launch stats: %w", err)
	}

	var loaded LaunchStatsData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal launch stats: %w", err)
	}
	if loaded.Items == nil {
		loaded.Items = make(map[string]*ItemStats)
	}
	ls.data = &loaded
	log.Printf("[Stats] Loaded launch stats for %d items", len(loaded.Items))
	return nil
}

// Save 保存统计到 gdata；降级模式下直接返回 nil
func (ls *LaunchStats) Save() error {
	if ls.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(ls.data)
	if err != nil {
		return fmt.Errorf("failed to marshal launch stats: %w", err)
	}
	if err := ls.gdataManager.SaveObjectProp(statsObject, statsProperty, raw); err != nil {
		return fmt.Errorf("failed to save launch stats: %w", err)
	}
	return nil
}

// RecordLaunch implements menu.LaunchRecorder. Save failures are logged only.
func (ls *LaunchStats) RecordLaunch(result menu.LaunchResult) {
	key := result.Item
	if key == "" {
		key = result.Command
	}

	stats, ok := ls.data.Items[key]
	if !ok {
		stats = &ItemStats{}
		ls.data.Items[key] = stats
	}
	stats.Launches++
	if result.Err != nil || result.ExitCode != 0 {
		stats.Failures++
	}
	stats.LastExitCode = result.ExitCode
	stats.LastLaunchID = result.ID
	stats.LastStarted = result.Started
	stats.TotalRuntime += result.Duration

	if err := ls.Save(); err != nil {
		log.Printf("[Stats] Warning: %v", err)
	}
}

// Item 返回某个菜单项的统计（副本），未启动过时返回 false
func (ls *LaunchStats) Item(name string) (ItemStats, bool) {
	stats, ok := ls.data.Items[name]
	if !ok {
		return ItemStats{}, false
	}
	return *stats, true
}

// Persistent 返回统计是否会写入磁盘
func (ls *LaunchStats) Persistent() bool {
	return ls.gdataManager != nil
}
