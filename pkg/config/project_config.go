package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qiuyin/skyfolio/pkg/timeline"
)

// ProjectEntry 单个作品条目（data/projects.yaml）
//
// 每个条目绑定一个进度可见性窗口：飞行经过该进度区段时，
// 对应的文案卡片淡入、保持、淡出。
type ProjectEntry struct {
	Title  string `yaml:"title"`  // 作品标题
	Blurb  string `yaml:"blurb"`  // 一句话介绍（会自动换行）
	Year   string `yaml:"year"`   // 年份，如 "2024"
	Role   string `yaml:"role"`   // 担任角色，如 "Art Direction"
	Accent string `yaml:"accent"` // 强调色（十六进制，可选，默认取主题强调色）

	// Window 可见性窗口（归一化进度断点）
	Window timeline.Window `yaml:"window"`
}

// ProjectsConfig 作品列表配置
type ProjectsConfig struct {
	// Intro 开场标语（progress≈0 时显示）
	Intro IntroConfig `yaml:"intro"`

	// Projects 按出场顺序排列的作品条目
	Projects []ProjectEntry `yaml:"projects"`

	// Contact 落地层（退场后显示）的联系方式文案
	Contact ContactConfig `yaml:"contact"`
}

// IntroConfig 开场标语配置
type IntroConfig struct {
	Name    string          `yaml:"name"`    // 设计师名字
	Tagline string          `yaml:"tagline"` // 标语
	Window  timeline.Window `yaml:"window"`  // 可见性窗口
}

// ContactConfig 落地层文案配置
type ContactConfig struct {
	Heading string `yaml:"heading"` // 标题，如 "Let's work together"
	Email   string `yaml:"email"`   // 联系邮箱
	Credit  string `yaml:"credit"`  // 页脚署名
}

// Validate 校验作品配置
//
// 规则：
//   - 至少一个作品条目
//   - 所有可见性窗口断点有序且在 [0, 1] 内
//   - 条目按窗口淡入时间有序（保证滚动时按列表顺序出场）
func (c *ProjectsConfig) Validate() error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("projects list is empty")
	}
	if !c.Intro.Window.Valid() {
		return fmt.Errorf("intro: invalid visibility window %+v", c.Intro.Window)
	}
	prevStart := -1.0
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if !p.Window.Valid() {
			return fmt.Errorf("project %q: invalid visibility window %+v", p.Title, p.Window)
		}
		if p.Window.FadeInStart < prevStart {
			return fmt.Errorf("project %q: visibility windows must be ordered by fadeInStart", p.Title)
		}
		prevStart = p.Window.FadeInStart
	}
	return nil
}

// ParseProjectsConfig 从 yaml 字节解析作品配置
func ParseProjectsConfig(data []byte) (*ProjectsConfig, error) {
	var cfg ProjectsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projects config: %w", err)
	}
	return &cfg, nil
}

// LoadProjectsConfig 从文件加载作品配置
func LoadProjectsConfig(path string) (*ProjectsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects config %s: %w", path, err)
	}
	return ParseProjectsConfig(data)
}
