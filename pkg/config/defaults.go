package config

// 默认值沿用街机菜单原有的硬编码参数
const (
	DefaultScreenWidth       = 1920
	DefaultScreenHeight      = 1080
	DefaultItemHeightPercent = 0.666

	DefaultBorderSize     = 64
	DefaultAnimationSpeed = 5.0

	DefaultMasterVolume   = 50
	DefaultVolumeDelta    = 10
	DefaultVolumeMin      = DefaultVolumeDelta
	DefaultVolumeMax      = 100
	DefaultOverlaySeconds = 1.0
	DefaultOverlayWidth   = 128
	DefaultOverlayHeight  = 64
	DefaultEffectVolume   = 0.5

	// DefaultMixerCommand 调整系统主音量的外部命令，<vol> 会被替换为当前音量
	DefaultMixerCommand     = "amixer -D pulse sset Master <vol>%"
	DefaultMixerPlaceholder = "<vol>"

	DefaultVolumeUpKey   = "r"
	DefaultVolumeDownKey = "f"

	// DefaultConfigFile 默认配置文件路径
	DefaultConfigFile = "arcademenu.yaml"
)

// ApplyDefaults fills every unset tuning value with its default.
// Zero means "unset" for all numeric fields.
func (c *MenuConfig) ApplyDefaults() {
	d := &c.Display
	if d.Width <= 0 {
		d.Width = DefaultScreenWidth
	}
	if d.Height <= 0 {
		d.Height = DefaultScreenHeight
	}
	if d.ItemHeightPercent <= 0 {
		d.ItemHeightPercent = DefaultItemHeightPercent
	}

	a := &c.Animation
	if a.BorderSize <= 0 {
		a.BorderSize = DefaultBorderSize
	}
	if a.Speed <= 0 {
		a.Speed = DefaultAnimationSpeed
	}

	v := &c.Volume
	if v.Initial <= 0 {
		v.Initial = DefaultMasterVolume
	}
	if v.Delta <= 0 {
		v.Delta = DefaultVolumeDelta
	}
	if v.Min <= 0 {
		v.Min = v.Delta
	}
	if v.Max <= 0 {
		v.Max = DefaultVolumeMax
	}
	if v.OverlaySeconds <= 0 {
		v.OverlaySeconds = DefaultOverlaySeconds
	}
	if v.OverlayWidth <= 0 {
		v.OverlayWidth = DefaultOverlayWidth
	}
	if v.OverlayHeight <= 0 {
		v.OverlayHeight = DefaultOverlayHeight
	}
	if v.EffectVolume <= 0 {
		v.EffectVolume = DefaultEffectVolume
	}
	if v.Command == "" {
		v.Command = DefaultMixerCommand
	}
	if v.Placeholder == "" {
		v.Placeholder = DefaultMixerPlaceholder
	}
	if v.UpKey == "" {
		v.UpKey = DefaultVolumeUpKey
	}
	if v.DownKey == "" {
		v.DownKey = DefaultVolumeDownKey
	}
}
