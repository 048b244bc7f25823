package config

import (
	"testing"
)

// TestLoadProjectsConfig 加载仓库内置的作品配置
func TestLoadProjectsConfig(t *testing.T) {
	cfg, err := LoadProjectsConfig("../../data/projects.yaml")
	if err != nil {
		t.Fatalf("LoadProjectsConfig() = %v", err)
	}

	if len(cfg.Projects) != 4 {
		t.Fatalf("len(Projects) = %d, 期望 4", len(cfg.Projects))
	}
	if cfg.Projects[0].Title != "Paper Lanterns" {
		t.Errorf("Projects[0].Title = %q", cfg.Projects[0].Title)
	}
	if cfg.Intro.Name == "" || cfg.Contact.Email == "" {
		t.Error("开场与落地层文案不应为空")
	}

	// 条目窗口按 fadeInStart 有序，且全部合法
	prev := -1.0
	for _, p := range cfg.Projects {
		if !p.Window.Valid() {
			t.Errorf("项目 %q 的窗口非法：%+v", p.Title, p.Window)
		}
		if p.Window.FadeInStart < prev {
			t.Errorf("项目 %q 的窗口乱序", p.Title)
		}
		prev = p.Window.FadeInStart
	}
}

// TestParseProjectsConfigInvalid 非法作品配置必须报错
func TestParseProjectsConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"空作品列表", "projects: []\n"},
		{"缺少标题", "projects:\n  - blurb: \"x\"\n"},
		{"窗口乱序", `
projects:
  - title: "A"
    window: {fadeInStart: 0.5, fadeInEnd: 0.6, fadeOutStart: 0.7, fadeOutEnd: 0.8}
  - title: "B"
    window: {fadeInStart: 0.2, fadeInEnd: 0.3, fadeOutStart: 0.4, fadeOutEnd: 0.5}
`},
		{"窗口断点非法", `
projects:
  - title: "A"
    window: {fadeInStart: 0.6, fadeInEnd: 0.3, fadeOutStart: 0.7, fadeOutEnd: 0.8}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProjectsConfig([]byte(tt.yaml)); err == nil {
				t.Error("期望返回错误，实际为 nil")
			}
		})
	}
}
