package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 观看偏好设置
// 设置是全局的，不绑定特定访客。
type ViewerSettings struct {
	// 滚动输入
	ScrollSensitivity float64 `yaml:"scrollSensitivity"` // 滚动灵敏度倍率 0.25 ~ 3.0
	InvertScroll      bool    `yaml:"invertScroll"`      // 反转滚动方向

	// 动画与显示
	ReducedMotion bool `yaml:"reducedMotion"` // 减少动态效果：滚动偏移不做平滑，直接跳变
	Fullscreen    bool `yaml:"fullscreen"`    // 启动时是否全屏

	// FixedHour 固定主题时刻（0 ~ 23.99）
	// 负值表示跟随系统时钟选择昼夜主题
	FixedHour float64 `yaml:"fixedHour"`
}

// DefaultViewerSettings 返回默认观看设置
func DefaultViewerSettings() *ViewerSettings {
	return &ViewerSettings{
		ScrollSensitivity: 1.0,
		InvertScroll:      false,
		ReducedMotion:     false,
		Fullscreen:        false,
		FixedHour:         -1,
	}
}

// SettingsManager 设置管理器
// 负责观看设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultViewerSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或存储中无记录，使用默认设置。
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultViewerSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultViewerSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ViewerSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultViewerSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）。
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetScrollSensitivity 设置滚动灵敏度
// 取值会被限制在 0.25 ~ 3.0；仅修改内存，需调用 Save() 持久化。
func (sm *SettingsManager) SetScrollSensitivity(v float64) {
	if v < 0.25 {
		v = 0.25
	}
	if v > 3.0 {
		v = 3.0
	}
	sm.settings.ScrollSensitivity = v
}

// SetInvertScroll 设置是否反转滚动方向
// 仅修改内存，需调用 Save() 持久化。
func (sm *SettingsManager) SetInvertScroll(enabled bool) {
	sm.settings.InvertScroll = enabled
}

// SetReducedMotion 设置减少动态效果
// 仅修改内存，需调用 Save() 持久化。
func (sm *SettingsManager) SetReducedMotion(enabled bool) {
	sm.settings.ReducedMotion = enabled
}

// SetFullscreen 设置全屏模式
// 仅修改内存，需调用 Save() 持久化。
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetFixedHour 设置固定主题时刻
// 合法范围 [0, 24)，传入负值恢复为跟随系统时钟。
func (sm *SettingsManager) SetFixedHour(hour float64) {
	if hour < 0 {
		sm.settings.FixedHour = -1
		return
	}
	for hour >= 24 {
		hour -= 24
	}
	sm.settings.FixedHour = hour
}
