// landing-tui 在终端里播放落地页
//
// 与窗口版共用内容配置和动画系统，文本按单元格宽度排版。
//
// 用法：
//
//	go run ./cmd/landing-tui --content data/landing.yaml
//	go run ./cmd/landing-tui --log landing.log   # 调试日志写入文件
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noguen/landing/internal/tui"
	"github.com/noguen/landing/pkg/config"
)

func main() {
	defaultPath := filepath.Join(".", config.DefaultContentPath)
	contentPath := flag.String("content", defaultPath, "path to the landing content YAML file")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	// 终端被界面占用，日志只能写文件
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "landing")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	absPath, err := filepath.Abs(*contentPath)
	if err != nil {
		fmt.Println("failed to resolve content path:", err)
		os.Exit(1)
	}

	content, err := config.LoadContentConfig(absPath)
	if err != nil {
		fmt.Println("failed to load content:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Content: content,
			Loader: func() (*config.ContentConfig, error) {
				return config.LoadContentConfig(absPath)
			},
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
