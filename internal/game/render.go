package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// backgroundFile is picked up from the working directory when present;
// without it the field is a flat fill.
const backgroundFile = "background.png"

// --- Palette ---

var (
	colorBG          = color.RGBA{R: 5, G: 8, B: 20, A: 255}
	colorPlayer      = color.RGBA{R: 94, G: 234, B: 212, A: 255}
	colorBullet      = color.RGBA{R: 255, G: 240, B: 160, A: 255}
	colorEnemyBase   = color.RGBA{R: 196, G: 182, B: 166, A: 255}
	colorText        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorHUD         = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	colorPowerup     = color.RGBA{R: 130, G: 200, B: 255, A: 255}
	colorBoss        = color.RGBA{R: 220, G: 100, B: 100, A: 255}
	colorEnemyBullet = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	colorShieldRing  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colorTimerText   = color.RGBA{R: 200, G: 240, B: 200, A: 255}
	colorBossHPText  = color.RGBA{R: 255, G: 200, B: 200, A: 255}
	colorMuzzle      = color.RGBA{R: 220, G: 120, B: 120, A: 255}
	colorWhisker     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorPupil       = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// renderer draws snapshots. It keeps the scaled game-over banner and the
// optional background cached between frames; everything else is
// immediate-mode vector drawing.
type renderer struct {
	banner  *ebiten.Image
	bg      *ebiten.Image
	bgTried bool
}

// drawFrame renders one snapshot back to front: background, starfield,
// player bullets, enemy bullets, enemies, pickups, boss, player, HUD,
// and the game-over overlay on top.
func (r *renderer) drawFrame(screen *ebiten.Image, snap Snapshot) {
	r.drawBackground(screen)
	drawStarfield(screen, snap.Elapsed)

	for _, b := range snap.Bullets {
		vector.FillRect(screen, float32(b.X-b.W/2), float32(b.Y-b.H), float32(b.W), float32(b.H), colorBullet, false)
	}
	for _, eb := range snap.EnemyBullets {
		vector.FillCircle(screen, float32(eb.X), float32(eb.Y), float32(eb.R), colorEnemyBullet, false)
	}
	for _, e := range snap.Enemies {
		drawCatFace(screen, e.X, e.Y, e.R, enemyTint(e.R))
	}
	for _, p := range snap.PowerUps {
		drawPowerup(screen, p)
	}
	if snap.Boss != nil {
		drawCatFace(screen, snap.Boss.X, snap.Boss.Y, snap.Boss.R, colorBoss)
		hp := fmt.Sprintf("Boss HP: %d", snap.Boss.HP)
		drawText(screen, hp, int(screenW)-8-7*len(hp), 8, colorBossHPText)
	}
	drawShip(screen, snap.Player)
	drawHUD(screen, snap)

	if snap.GameOver {
		r.drawGameOver(screen, snap)
	}
}

// drawBackground fills the field, preferring background.png stretched to
// the viewport when one ships next to the binary. A dark wash on top
// keeps the HUD readable over a busy image. The file is probed once.
func (r *renderer) drawBackground(screen *ebiten.Image) {
	if !r.bgTried {
		r.bgTried = true
		if img, _, err := ebitenutil.NewImageFromFile(backgroundFile); err == nil {
			r.bg = img
		}
	}
	if r.bg == nil {
		screen.Fill(colorBG)
		return
	}
	b := r.bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(screenW/float64(b.Dx()), screenH/float64(b.Dy()))
	screen.DrawImage(r.bg, op)
	vector.FillRect(screen, 0, 0, screenW, screenH, color.RGBA{A: 120}, false)
}

// drawStarfield scrolls a fixed constellation of single-pixel stars. The
// pattern repeats every screen height; brightness and size vary by index
// so it reads as depth.
func drawStarfield(dst *ebiten.Image, elapsed float64) {
	for i := 0; i < 60; i++ {
		sx := float32((i * 37) % int(screenW))
		sy := float32(math.Mod(float64(i*61)+elapsed*10, screenH))
		size := float32(1)
		if i%7 == 0 {
			size = 2
		}
		shade := uint8(90 + (i%6)*20)
		vector.FillRect(dst, sx, sy, size, size,
			color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
	}
}

// drawShip draws the player triangle, nose up, plus the shield ring when
// one is active.
func drawShip(dst *ebiten.Image, p PlayerSnapshot) {
	x, y := float32(p.X), float32(p.Y)
	hw, hh := float32(p.W/2), float32(p.H/2)
	fillTriangle(dst, x, y-hh, x-hw, y+hh, x+hw, y+hh, colorPlayer)
	if p.Shield {
		vector.StrokeCircle(dst, x, y, float32(p.W), 2, colorShieldRing, false)
	}
}

// drawPowerup draws the pickup disc with the effect's initial letter.
func drawPowerup(dst *ebiten.Image, p PowerUpSnapshot) {
	vector.FillCircle(dst, float32(p.X), float32(p.Y), float32(p.R), colorPowerup, false)
	letter := strings.ToUpper(p.Kind.String()[:1])
	drawText(dst, letter, int(p.X)-3, int(p.Y)-6, color.RGBA{R: 10, G: 10, B: 10, A: 255})
}

// enemyTint shifts the base fur colour per enemy, keyed off its radius so
// the variation is stable for the enemy's lifetime.
func enemyTint(r float64) color.RGBA {
	ch := func(base uint8, m float64) uint8 {
		return uint8(int(float64(base)*(0.85+math.Mod(r, m)*0.02)) % 255)
	}
	return color.RGBA{
		R: ch(colorEnemyBase.R, 10),
		G: ch(colorEnemyBase.G, 8),
		B: ch(colorEnemyBase.B, 6),
		A: 255,
	}
}

// drawCatFace draws the stylized cat face the enemies and the boss
// share: round head, triangle ears with darker inners, wide eyes, pink
// nose and mouth, whiskers, and two faint stripes.
func drawCatFace(dst *ebiten.Image, x, y, r float64, base color.RGBA) {
	if r < 4 {
		r = 4
	}
	fx, fy, fr := float32(x), float32(y), float32(r)

	vector.FillCircle(dst, fx, fy, fr, base, false)

	// Ears, tips half an ear above the head.
	earHalf := float32(math.Max(6, r*0.6)) / 2
	tipY := fy - fr - earHalf
	inner := darken(base, 30)
	fillTriangle(dst, fx-fr*0.6, fy-fr*0.6, fx-fr*0.25, tipY, fx, fy-fr*0.25, base)
	fillTriangle(dst, fx+fr*0.6, fy-fr*0.6, fx+fr*0.25, tipY, fx, fy-fr*0.25, base)
	fillTriangle(dst, fx-fr*0.6+4, fy-fr*0.6+4, fx-fr*0.25, tipY+6, fx+4, fy-fr*0.25+4, inner)
	fillTriangle(dst, fx+fr*0.6-4, fy-fr*0.6+4, fx+fr*0.25, tipY+6, fx-4, fy-fr*0.25+4, inner)

	// Eyes as capsules, pupils centred.
	eyeW := float32(math.Max(3, r*0.35))
	eyeH := float32(math.Max(3, r*0.22))
	eyeY := fy - fr*0.1
	eyeOff := fr * 0.32
	for _, ex := range [2]float32{fx - eyeOff, fx + eyeOff} {
		vector.FillCircle(dst, ex-eyeW/4, eyeY, eyeH/2, color.White, false)
		vector.FillCircle(dst, ex+eyeW/4, eyeY, eyeH/2, color.White, false)
		vector.FillRect(dst, ex-eyeW/4, eyeY-eyeH/2, eyeW/2, eyeH, color.White, false)
		pupil := float32(math.Max(1, float64(eyeW/4)))
		vector.FillCircle(dst, ex, eyeY, pupil, colorPupil, false)
	}

	// Nose and mouth.
	noseY := fy + fr*0.05
	noseW := float32(math.Max(4, r*0.18))
	fillTriangle(dst, fx, noseY, fx-noseW, noseY+noseW, fx+noseW, noseY+noseW, colorMuzzle)
	mouthY := noseY + noseW + 2
	vector.StrokeLine(dst, fx, mouthY, fx-fr*0.18, mouthY+fr*0.14, 2, colorMuzzle, false)
	vector.StrokeLine(dst, fx, mouthY, fx+fr*0.18, mouthY+fr*0.14, 2, colorMuzzle, false)

	// Whiskers, three per side.
	whiskY := fy + fr*0.02
	for i := -1; i <= 1; i++ {
		off := float32(i) * fr * 0.12
		vector.StrokeLine(dst, fx-fr*0.25, whiskY+off, fx-fr*0.6, whiskY+off-2, 1, colorWhisker, false)
		vector.StrokeLine(dst, fx+fr*0.25, whiskY+off, fx+fr*0.6, whiskY+off-2, 1, colorWhisker, false)
	}

	// Forehead stripes.
	for i := 0; i < 2; i++ {
		cx := fx - fr*0.3 + float32(i)*fr*0.3 + fr*0.2
		strokeArc(dst, cx, eyeY+fr*0.15, fr*0.2, 0, math.Pi, 1, inner)
	}
}

// drawHUD lays out score, run time and active effect timers down the
// left edge.
func drawHUD(dst *ebiten.Image, snap Snapshot) {
	drawText(dst, fmt.Sprintf("Score: %d  High: %d", int(snap.Score), snap.Highscore), 8, 8, colorText)
	drawText(dst, fmt.Sprintf("Time: %ds", int(snap.Elapsed)), 8, 30, colorHUD)

	y := 54
	if snap.Player.RapidFire {
		drawText(dst, fmt.Sprintf("Rapid: %ds", int(snap.Player.RapidFireLeft)), 8, y, colorTimerText)
		y += 18
	}
	if snap.Player.Spread {
		drawText(dst, fmt.Sprintf("Spread: %ds", int(snap.Player.SpreadLeft)), 8, y, colorTimerText)
		y += 18
	}
	if snap.Player.Shield {
		drawText(dst, fmt.Sprintf("Shield: %ds", int(snap.Player.ShieldLeft)), 8, y, colorTimerText)
	}
}

// drawGameOver dims the field and centres the banner and restart hint.
func (r *renderer) drawGameOver(dst *ebiten.Image, snap Snapshot) {
	vector.FillRect(dst, 0, 0, screenW, screenH, color.RGBA{A: 180}, false)

	banner := r.gameOverBanner()
	const scale = 4.0
	w := banner.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(screenW/2-float64(w)*scale/2, screenH/2-50)
	dst.DrawImage(banner, op)

	sub := fmt.Sprintf("Score: %d  Press R to restart", int(snap.Score))
	drawText(dst, sub, (int(screenW)-7*len(sub))/2, int(screenH)/2+10, colorText)
}

// gameOverBanner renders the banner text once at native size; drawFrame
// scales it up on composite.
func (r *renderer) gameOverBanner() *ebiten.Image {
	if r.banner == nil {
		const s = "GAME OVER"
		buf := ebiten.NewImage(7*len(s), 13)
		text.Draw(buf, s, basicfont.Face7x13, 0, 11, color.White)
		r.banner = buf
	}
	return r.banner
}

// --- Drawing helpers ---

// drawText draws s with the top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y+11, col)
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, col color.RGBA) {
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	path.LineTo(x2, y2)
	path.Close()
	op := &vector.DrawPathOptions{}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, &path, &vector.FillOptions{}, op)
}

func strokeArc(dst *ebiten.Image, cx, cy, r, from, to, width float32, col color.RGBA) {
	var path vector.Path
	path.Arc(cx, cy, r, from, to, vector.Clockwise)
	op := &vector.DrawPathOptions{}
	op.ColorScale.ScaleWithColor(col)
	vector.StrokePath(dst, &path, &vector.StrokeOptions{Width: width}, op)
}

func darken(c color.RGBA, by uint8) color.RGBA {
	d := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return color.RGBA{R: d(c.R), G: d(c.G), B: d(c.B), A: c.A}
}
