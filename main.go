package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/arcademenu/pkg/app"
	"github.com/decker502/arcademenu/pkg/config"
	"github.com/decker502/arcademenu/pkg/embedded"
	"github.com/decker502/arcademenu/pkg/game"
	"github.com/decker502/arcademenu/pkg/launcher"
	"github.com/decker502/arcademenu/pkg/menu"
)

const (
	appName    = "arcademenu"
	sampleRate = 48000
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "菜单配置文件路径（.yaml，或旧版 .xml）")
	logPath := flag.String("log", "Log.txt", "日志文件路径（追加写入），为空则不写文件")
	verbose := flag.Bool("verbose", false, "同时输出日志到标准错误")
	windowed := flag.Bool("windowed", false, "以窗口模式运行（默认全屏）")
	writeDefault := flag.Bool("write-default-config", false, "将内置默认配置写入 -config 路径后退出")
	flag.Parse()

	closeLog, err := setupLogging(*logPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	embedded.Init(assetsFS)

	if *writeDefault {
		if err := writeDefaultConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "写入默认配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("默认配置已写入 %s\n", *configPath)
		return
	}

	if err := run(*configPath, *windowed); err != nil {
		log.Printf("[Main] ERROR: %v", err)
		fmt.Fprintf(os.Stderr, "arcademenu: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(configPath string, windowed bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	audioContext := audio.NewContext(sampleRate)
	media := game.NewMediaLoader()
	sound := game.NewAudioBackend(audioContext)
	presenter := app.NewPresenter(windowed)
	shell := launcher.NewShell()

	loop := menu.NewLoop(menu.Deps{
		LoadConfig: func() (*config.MenuConfig, error) {
			return config.Load(configPath)
		},
		Graphics:  media,
		Audio:     sound,
		Input:     app.NewKeyboard(),
		Presenter: presenter,
		Executor:  shell,
		Stats:     game.OpenLaunchStats(appName),
	})
	if err := loop.Init(); err != nil {
		return fmt.Errorf("menu initialization failed: %w", err)
	}
	defer loop.Close()

	display := loop.Session().Config.Display
	windowed = windowed || display.Windowed
	presenter.SetWindowed(windowed)
	app.Configure("Arcade Menu", loop.Viewport(), windowed)

	log.Printf("[Main] Starting menu (%dx%d, windowed=%v)", display.Width, display.Height, windowed)
	if err := ebiten.RunGame(app.NewApp(ctx, loop, presenter)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Printf("[Main] Exiting")
	return nil
}

// setupLogging 日志以追加方式写入文件；verbose 时同时输出到标准错误
func setupLogging(path string, verbose bool) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var writers []io.Writer
	closer := func() {}
	if path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
		closer = func() { file.Close() }
	}
	if verbose {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	return closer, nil
}

// writeDefaultConfig 写出嵌入的默认配置，不覆盖已有文件
func writeDefaultConfig(path string) error {
	data, err := embedded.DefaultConfig()
	if err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
