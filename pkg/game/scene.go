package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one full-screen stage of the experience
// (loading, flight). Each scene owns its update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Persistable 是一个可选接口，场景退出前持久化状态用
//
// 实现此接口的场景会在窗口关闭时被调用 PersistOnExit()，
// 用于保存观看设置（音量类设置本项目没有，保存的是
// 滚动灵敏度 / 减少动态效果等观看偏好）。
type Persistable interface {
	// PersistOnExit 在退出时保存状态
	// 返回 true 表示保存成功或无需保存
	PersistOnExit() bool
}
