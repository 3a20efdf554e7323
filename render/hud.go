package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/fonts"
	"github.com/automoto/busterclone/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

const (
	hudBarWidth    = 130
	hudBarHeight   = 13
	hudMargin      = 10
	meterWidth     = 8
	meterHeight    = 40
	barEaseSeconds = 0.25
	panelSeconds   = 0.5
)

// easedBar eases its displayed ratio toward the latest target.
type easedBar struct {
	value  float32
	target float32
	tween  *gween.Tween
}

func newEasedBar(value float32) *easedBar {
	return &easedBar{value: value, target: value}
}

func (b *easedBar) update(target, dt float32) {
	if target != b.target {
		b.tween = gween.New(b.value, target, barEaseSeconds, ease.OutQuad)
		b.target = target
	}
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(dt)
	b.value = v
	if done {
		b.tween = nil
	}
}

// HUD draws health bars, the charge meter and end-of-run banners.
type HUD struct {
	player     *easedBar
	boss       *easedBar
	panel      *gween.Tween
	panelShift float32 // boss panel slides in from above
	revealed   bool
}

func NewHUD() *HUD {
	return &HUD{
		player:     newEasedBar(1),
		boss:       newEasedBar(1),
		panelShift: -(hudBarHeight + 2*hudMargin + 16),
	}
}

// Update advances the HUD animations by dt seconds toward snap.
func (h *HUD) Update(snap sim.Snapshot, dt float32) {
	h.player.update(float32(snap.Player.HealthRatio()), dt)
	h.boss.update(float32(snap.Boss.HealthRatio()), dt)

	if snap.BossRevealed && !h.revealed {
		h.revealed = true
		h.panel = gween.New(h.panelShift, 0, panelSeconds, ease.OutBack)
	}
	if h.panel != nil {
		v, done := h.panel.Update(dt)
		h.panelShift = v
		if done {
			h.panel = nil
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	face := fonts.HUD.Get()

	drawBar(screen, hudMargin, hudMargin, h.player.value, colorPlayerHP)
	text.Draw(screen, fmt.Sprintf("HP %d", snap.Player.Health), face, hudMargin+hudBarWidth+6, hudMargin+11, colorText)
	if snap.Player.MaxLives > 0 {
		text.Draw(screen, fmt.Sprintf("LIVES %d", snap.Player.Lives), face, hudMargin, hudMargin+hudBarHeight+16, colorText)
	}

	if snap.Player.ChargeVisible {
		top := float32(hudMargin + hudBarHeight + 24)
		fill := float32(snap.Player.ChargeProgress) * meterHeight
		vector.DrawFilledRect(screen, hudMargin, top, meterWidth, meterHeight, colorBarBack, false)
		vector.DrawFilledRect(screen, hudMargin, top+meterHeight-fill, meterWidth, fill, colorActive, false)
	}

	if h.revealed {
		w := float32(screen.Bounds().Dx())
		x := w - hudMargin - hudBarWidth
		y := hudMargin + h.panelShift
		drawBar(screen, x, y, h.boss.value, colorBossHP)
		text.Draw(screen, "BOSS", face, int(x)-36, int(y)+11, colorText)
	}

	switch snap.State {
	case cfg.GameWin:
		drawBanner(screen, "MISSION ACCOMPLISHED!", colorWin)
	case cfg.GameOver:
		drawBanner(screen, "GAME OVER", colorLose)
	}
}

func drawBar(screen *ebiten.Image, x, y, ratio float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, colorBarBack, false)
	vector.DrawFilledRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, clr, false)
}

func drawBanner(screen *ebiten.Image, title string, clr color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorShade, false)

	face := fonts.Banner.Get()
	drawCentered(screen, title, face, w, h/2-10, clr)
	drawCentered(screen, "PRESS R TO RESTART", face, w, h/2+20, colorText)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-bounds.Dx())/2, y, clr)
}
