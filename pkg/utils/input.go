// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScrollInputConfig 滚动输入采样参数
// 数值来自 FlightConfig，由调用方传入（本包不依赖配置包）。
type ScrollInputConfig struct {
	WheelPixelsPerNotch float64 // 每格滚轮的滚动像素数
	KeyScrollPixels     float64 // 方向键每帧滚动像素数
	PagePixels          float64 // PageUp/PageDown/空格的滚动像素数
	DragFactor          float64 // 触摸拖拽放大系数
	Sensitivity         float64 // 用户灵敏度倍率
	Invert              bool    // 反转滚动方向
}

// ScrollInput 跨帧的滚动输入采样器
// 触摸拖拽需要记住上一帧的触摸位置，鼠标拖拽同理。
type ScrollInput struct {
	touchActive bool
	touchPrevY  int

	dragActive bool
	dragPrevY  int
}

// NewScrollInput 创建滚动输入采样器
func NewScrollInput() *ScrollInput {
	return &ScrollInput{}
}

// ScrollCommand 一帧的滚动指令
type ScrollCommand struct {
	// DeltaPx 本帧滚动增量（像素，正值向下）
	DeltaPx float64

	// JumpToTop / JumpToEnd Home/End 键直接跳转
	JumpToTop bool
	JumpToEnd bool
}

// Poll 读取本帧的所有滚动输入
//
// 输入来源（同帧可叠加）：
//   - 鼠标滚轮：向下滚动（负 wheel Y）产生正增量
//   - 触摸拖拽：手指上划产生正增量（内容跟随手指）
//   - 鼠标左键拖拽：与触摸一致
//   - 键盘：↓/j/s 向下，↑/k/w 向上，PageDown/空格 翻页，Home/End 跳转
func (si *ScrollInput) Poll(cfg ScrollInputConfig) ScrollCommand {
	var cmd ScrollCommand

	// 鼠标滚轮
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		cmd.DeltaPx -= wheelY * cfg.WheelPixelsPerNotch
	}

	// 键盘
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyS) {
		cmd.DeltaPx += cfg.KeyScrollPixels
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsKeyPressed(ebiten.KeyW) {
		cmd.DeltaPx -= cfg.KeyScrollPixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmd.DeltaPx += cfg.PagePixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		cmd.DeltaPx -= cfg.PagePixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		cmd.JumpToTop = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		cmd.JumpToEnd = true
	}

	// 触摸拖拽（移动设备）：优先于鼠标拖拽
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		_, y := ebiten.TouchPosition(touchIDs[0])
		if si.touchActive {
			// 手指上划（y 减小）→ 内容向下滚动（正增量）
			cmd.DeltaPx += float64(si.touchPrevY-y) * cfg.DragFactor
		}
		si.touchActive = true
		si.touchPrevY = y
	} else {
		si.touchActive = false

		// 鼠标左键拖拽（桌面设备）
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			_, y := ebiten.CursorPosition()
			if si.dragActive {
				cmd.DeltaPx += float64(si.dragPrevY-y) * cfg.DragFactor
			}
			si.dragActive = true
			si.dragPrevY = y
		} else {
			si.dragActive = false
		}
	}

	cmd.DeltaPx = applyScrollModifiers(cmd.DeltaPx, cfg)
	return cmd
}

// applyScrollModifiers 应用用户灵敏度倍率与反转方向
func applyScrollModifiers(delta float64, cfg ScrollInputConfig) float64 {
	delta *= cfg.Sensitivity
	if cfg.Invert {
		delta = -delta
	}
	return delta
}
