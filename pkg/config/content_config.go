package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/noguen/landing/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultContentPath 内嵌的默认页面内容
const DefaultContentPath = "data/landing.yaml"

// Direction 跑马灯方向
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// RowKind 行类型
type RowKind string

const (
	// RowKindLoop 无限循环跑马灯
	RowKindLoop RowKind = "loop"
	// RowKindCenterStop 居中停止跑马灯
	RowKindCenterStop RowKind = "centerStop"
)

// RowConfig 单行跑马灯配置
//
// loop 行使用 Text/Speed，centerStop 行使用 FullText/TargetText/Duration，
// Direction 两者共用。
type RowConfig struct {
	Kind       RowKind   `yaml:"kind"`
	Text       string    `yaml:"text,omitempty"`
	Speed      float64   `yaml:"speed,omitempty"` // 像素/秒
	FullText   string    `yaml:"fullText,omitempty"`
	TargetText string    `yaml:"targetText,omitempty"`
	Duration   float64   `yaml:"duration,omitempty"` // 秒
	Direction  Direction `yaml:"direction,omitempty"`
}

// SectionConfig 一屏（一页）内容
type SectionConfig struct {
	Rows       []RowConfig `yaml:"rows"`
	ShowArrows bool        `yaml:"showArrows"` // 是否在本屏底部显示闪烁箭头
}

// ContentConfig 页面内容配置文件结构
type ContentConfig struct {
	Title    string          `yaml:"title"`
	Sections []SectionConfig `yaml:"sections"`
}

// LoadContentConfig 加载页面内容配置
//
// 以 "data/" 开头的路径从内嵌资源读取，其余路径从磁盘读取（--content 参数）。
func LoadContentConfig(path string) (*ContentConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") {
		if embedded.IsInitialized() && !embedded.Exists(path) {
			return nil, fmt.Errorf("content %s is not embedded in this build (pass --content with a file path): %w", path, fs.ErrNotExist)
		}
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	cfg, err := ParseContentConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseContentConfig 解析 YAML 数据，补全默认值并校验
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}

	applyContentDefaults(&cfg)

	if err := validateContent(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyContentDefaults 为未填写的字段补默认值
func applyContentDefaults(cfg *ContentConfig) {
	for si := range cfg.Sections {
		rows := cfg.Sections[si].Rows
		for ri := range rows {
			row := &rows[ri]
			switch row.Kind {
			case RowKindLoop:
				if row.Direction == "" {
					row.Direction = DirectionLeft
				}
				if row.Speed == 0 {
					row.Speed = LoopMarqueeDefaultSpeed
				}
			case RowKindCenterStop:
				if row.Direction == "" {
					row.Direction = DirectionRight
				}
				if row.Duration == 0 {
					row.Duration = CenterStopDefaultDuration
				}
			}
		}
	}
}

// validateContent 验证内容配置的完整性和合法性
func validateContent(cfg *ContentConfig) error {
	if len(cfg.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}

	for si, section := range cfg.Sections {
		for ri, row := range section.Rows {
			where := fmt.Sprintf("section %d row %d", si, ri)

			// 先确认类型：未知类型不会补默认方向
			switch row.Kind {
			case RowKindLoop:
				if row.Speed < 0 {
					return fmt.Errorf("%s: speed cannot be negative, got %v", where, row.Speed)
				}
			case RowKindCenterStop:
				if row.Duration < 0 {
					return fmt.Errorf("%s: duration cannot be negative, got %v", where, row.Duration)
				}
			default:
				return fmt.Errorf("%s: unknown kind %q", where, row.Kind)
			}

			if row.Direction != DirectionLeft && row.Direction != DirectionRight {
				return fmt.Errorf("%s: direction must be %q or %q, got %q", where, DirectionLeft, DirectionRight, row.Direction)
			}
		}
	}

	return nil
}

// SameLayout 判断两份内容的页数和每页行类型是否一致
// 一致时可以原地更新文本（触发各组件自己的重算），否则需要重建实体
func (c *ContentConfig) SameLayout(other *ContentConfig) bool {
	if c == nil || other == nil || len(c.Sections) != len(other.Sections) {
		return false
	}
	for i := range c.Sections {
		a, b := c.Sections[i], other.Sections[i]
		if len(a.Rows) != len(b.Rows) || a.ShowArrows != b.ShowArrows {
			return false
		}
		for j := range a.Rows {
			if a.Rows[j].Kind != b.Rows[j].Kind {
				return false
			}
		}
	}
	return true
}
