package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active. Only one scene's
// Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a new SceneManager with no active scene.
// Use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
// 后续帧的 Update/Draw 都会转发给新场景。
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switching scene: %T", scene)
	sm.currentScene = scene
}

// CurrentScene 返回当前活动的场景
// 用于程序关闭时检查场景是否需要持久化状态；无活动场景返回 nil。
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
