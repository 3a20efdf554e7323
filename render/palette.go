package render

import "image/color"

var (
	colorSky        = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	colorParallax   = color.RGBA{0x16, 0x21, 0x3e, 0xff}
	colorPlatform   = color.RGBA{0x34, 0x49, 0x5e, 0xff}
	colorPlatformHi = color.RGBA{0x5d, 0x6d, 0x7e, 0xff}
	colorPickup     = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	colorCheckpoint = color.RGBA{0x7f, 0x8c, 0x8d, 0xff}
	colorActive     = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	colorDoor       = color.RGBA{0x8e, 0x44, 0xad, 0xff}
	colorPlayer     = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	colorPlayerDark = color.RGBA{0x29, 0x80, 0xb9, 0xff}
	colorFlash      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorFace       = color.RGBA{0xec, 0xf0, 0xf1, 0xff}
	colorEye        = color.RGBA{0x2c, 0x3e, 0x50, 0xff}
	colorBoss       = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	colorBossDark   = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	colorBullet     = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	colorBossBullet = color.RGBA{0xe6, 0x7e, 0x22, 0xff}
	colorBarBack    = color.RGBA{40, 40, 40, 255}
	colorPlayerHP   = color.RGBA{40, 220, 40, 255}
	colorBossHP     = color.RGBA{220, 40, 40, 255}
	colorShade      = color.RGBA{0, 0, 0, 0xb0}
	colorWin        = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	colorLose       = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	colorText       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)
