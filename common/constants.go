package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit converts physics world units to screen pixels.
	PixelsPerUnit = 24.0

	// FrameTime is the fixed simulation step used by the update loop.
	FrameTime = 1.0 / 60.0

	// MaxHearts is the number of hearts the HUD can show.
	MaxHearts = 10
)
