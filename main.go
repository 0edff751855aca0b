package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/noguen/landing/pkg/app"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/embedded"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	contentPath = flag.String("content", config.DefaultContentPath, "内容配置 YAML（data/ 前缀读取内嵌文件）")
	fullscreen  = flag.Bool("fullscreen", false, "全屏启动")
	noSave      = flag.Bool("no-save", false, "不读写显示偏好")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	landing, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ContentPath: *contentPath,
		Fullscreen:  *fullscreen,
		NoSave:      *noSave,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	settings := landing.Settings()
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(landing.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)

	runErr := ebiten.RunGame(landing)

	// 窗口关闭（或出错）后保存显示偏好
	landing.SaveOnExit()

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
