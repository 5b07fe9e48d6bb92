package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioBackend 菜单音频后端
// 职责：
//   - 播放一次性音效（选择音效），按路径缓存播放器
//   - 播放背景音乐曲目（不循环，播完后由播放列表补充下一首）
//   - StopAll 关闭所有播放器，在启动外部程序前释放音频设备
type AudioBackend struct {
	context      *audio.Context
	clips        map[string]*audio.Player // 音效播放器缓存（路径 -> 播放器）
	currentMusic *audio.Player            // 当前播放的背景音乐
	currentPath  string                   // 当前背景音乐路径
}

// NewAudioBackend 创建音频后端
//
// 参数：
//   - ctx: 全局音频上下文（进程内只能创建一个）
func NewAudioBackend(ctx *audio.Context) *AudioBackend {
	return &AudioBackend{
		context: ctx,
		clips:   make(map[string]*audio.Player),
	}
}

// PlayClip 从头播放一次音效
//
// 参数：
//   - path: 音效文件路径（.wav/.ogg/.mp3）
//   - volume: 音量 0.0 ~ 1.0
func (ab *AudioBackend) PlayClip(path string, volume float64) error {
	player, ok := ab.clips[path]
	if !ok {
		var err error
		player, err = ab.newPlayer(path)
		if err != nil {
			return err
		}
		ab.clips[path] = player
	}

	player.SetVolume(clampVolume(volume))
	if err := player.Rewind(); err != nil {
		log.Printf("[Audio] Warning: Failed to rewind sound %s: %v", path, err)
	}
	player.Play()
	return nil
}

// PlayMusic 停止当前曲目并播放新曲目（单次播放）
func (ab *AudioBackend) PlayMusic(path string, volume float64) error {
	ab.stopMusic()

	player, err := ab.newPlayer(path)
	if err != nil {
		return err
	}
	player.SetVolume(clampVolume(volume))
	player.Play()

	ab.currentMusic = player
	ab.currentPath = path
	log.Printf("[Audio] Playing music: %s (volume: %.2f)", path, volume)
	return nil
}

// IsMusicPlaying 返回当前曲目是否仍在播放
func (ab *AudioBackend) IsMusicPlaying() bool {
	return ab.currentMusic != nil && ab.currentMusic.IsPlaying()
}

// CurrentMusic 返回当前曲目路径，没有曲目时为空
func (ab *AudioBackend) CurrentMusic() string {
	return ab.currentPath
}

// StopAll 停止并关闭所有播放器
func (ab *AudioBackend) StopAll() {
	ab.stopMusic()
	for path, player := range ab.clips {
		if err := player.Close(); err != nil {
			log.Printf("[Audio] Warning: Failed to close sound %s: %v", path, err)
		}
	}
	clear(ab.clips)
}

func (ab *AudioBackend) stopMusic() {
	if ab.currentMusic == nil {
		return
	}
	if err := ab.currentMusic.Close(); err != nil {
		log.Printf("[Audio] Warning: Failed to close music %s: %v", ab.currentPath, err)
	}
	ab.currentMusic = nil
	ab.currentPath = ""
}

// newPlayer 读取整个文件，按扩展名解码并重采样到上下文采样率
func (ab *AudioBackend) newPlayer(path string) (*audio.Player, error) {
	if ab.context == nil {
		return nil, fmt.Errorf("audio context not initialized")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	// 读入内存，播放期间不占用文件句柄
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoded, err := wav.DecodeWithSampleRate(ab.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(ab.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(ab.context.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	player, err := ab.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
