package config

// 窗口与覆盖层布局常量
//
// 逻辑屏幕尺寸固定，Ebitengine 负责缩放到实际窗口；
// 时间轴阈值按视口高度百分比派生，不依赖这里的具体数值。

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Skyfolio — a flight through the work"
)

// 覆盖层（文案卡片）布局
const (
	// OverlayCardMarginX 卡片距屏幕左缘的距离
	OverlayCardMarginX float64 = 96

	// OverlayCardMaxWidth 卡片文案最大宽度（超出自动换行）
	OverlayCardMaxWidth float64 = 460

	// OverlayTitleSize 作品标题字号
	OverlayTitleSize float64 = 44

	// OverlayBlurbSize 介绍文案字号
	OverlayBlurbSize float64 = 19

	// OverlayMetaSize 年份/角色小字字号
	OverlayMetaSize float64 = 15

	// OverlayCardLift 卡片淡入时的上浮距离（像素）
	// 透明度从 0 → 1 的同时卡片从下方 Lift 像素处浮到目标位置
	OverlayCardLift float64 = 26
)

// 滚动提示与高度计
const (
	// ScrollHintFadeOutProgress 滚动提示完全消失的进度
	ScrollHintFadeOutProgress float64 = 0.06

	// AltimeterMarginRight 高度计距屏幕右缘的距离
	AltimeterMarginRight float64 = 48

	// AltimeterHeight 高度计轨道高度（像素）
	AltimeterHeight float64 = 220
)

// 云层渲染参数
const (
	// CloudLayerCount 视差云层数量
	CloudLayerCount = 3

	// CloudTileSize 每张云纹理的边长（像素）
	CloudTileSize = 256

	// StarCount 星星数量
	StarCount = 140
)
