package game

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// --- Audio synthesis ---

// Every sound is synthesized at startup; the game ships no asset files.

const (
	sampleRate = 44100

	shootHz  = 880.0
	shootSec = 0.08
	shootVol = 0.30

	explodeFromHz = 1200.0
	explodeToHz   = 400.0
	explodeSec    = 0.22
	explodeVol    = 0.35

	powerHz  = 1320.0
	powerSec = 0.18
	powerVol = 0.28

	hitHz  = 440.0
	hitSec = 0.06
	hitVol = 0.25

	// Background hum. Every component completes whole cycles within the
	// loop length, so the seam is silent.
	bgmLoopSec = 6.0
	bgmLowHz   = 110.0
	bgmHighHz  = 220.0
	bgmLowVol  = 0.08
	bgmHighVol = 0.04
)

// readSeekNopCloser adapts a bytes.Reader into the closable stream the
// audio player wants.
type readSeekNopCloser struct{ *bytes.Reader }

func (readSeekNopCloser) Close() error { return nil }

// SoundBank owns the synthesized effect players and the background loop.
// A nil bank is valid and silent, so callers never guard.
type SoundBank struct {
	shoot   *audio.Player
	explode *audio.Player
	power   *audio.Player
	hit     *audio.Player
	bgm     *audio.Player
}

// NewSoundBank builds all players against the process-wide audio context.
func NewSoundBank() *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &SoundBank{
		shoot:   newTonePlayer(ctx, shootHz, shootSec, shootVol),
		explode: newSweepPlayer(ctx, explodeFromHz, explodeToHz, explodeSec, explodeVol),
		power:   newTonePlayer(ctx, powerHz, powerSec, powerVol),
		hit:     newTonePlayer(ctx, hitHz, hitSec, hitVol),
		bgm:     newHumLoop(ctx),
	}
}

// HandleEvents plays the effect mapped to each frame event.
func (sb *SoundBank) HandleEvents(evs []Event) {
	if sb == nil {
		return
	}
	for _, ev := range evs {
		switch ev.Kind {
		case EventFired:
			sb.play(sb.shoot)
		case EventEnemyDestroyed, EventBossDestroyed, EventGameOver:
			sb.play(sb.explode)
		case EventPowerupCollected, EventShieldAbsorb:
			sb.play(sb.power)
		case EventBossHit:
			sb.play(sb.hit)
		}
	}
}

// StartMusic begins the background hum. It loops until the process exits.
func (sb *SoundBank) StartMusic() {
	if sb == nil || sb.bgm == nil || sb.bgm.IsPlaying() {
		return
	}
	sb.bgm.Play()
}

// play restarts an effect from the top.
func (sb *SoundBank) play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// pcm16Stereo renders n sample frames of 16-bit little-endian stereo,
// the format audio.NewPlayer streams. sample returns [-1, 1] at frame i.
func pcm16Stereo(n int, sample func(i int) float64) []byte {
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		s := int16(clamp(sample(i), -1, 1) * 32767)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}

// newTonePlayer synthesizes a fixed-frequency sine burst.
func newTonePlayer(ctx *audio.Context, freq, durSec, vol float64) *audio.Player {
	n := int(sampleRate * durSec)
	buf := pcm16Stereo(n, func(i int) float64 {
		t := float64(i) / sampleRate
		return math.Sin(2*math.Pi*freq*t) * vol
	})
	p, _ := audio.NewPlayer(ctx, &readSeekNopCloser{bytes.NewReader(buf)})
	return p
}

// newSweepPlayer synthesizes a burst gliding from fromHz to toHz while
// fading out. Phase accumulates per sample so the glide stays continuous.
func newSweepPlayer(ctx *audio.Context, fromHz, toHz, durSec, vol float64) *audio.Player {
	n := int(sampleRate * durSec)
	phase := 0.0
	buf := pcm16Stereo(n, func(i int) float64 {
		frac := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*frac
		phase += 2 * math.Pi * freq / sampleRate
		return math.Sin(phase) * vol * (1 - frac)
	})
	p, _ := audio.NewPlayer(ctx, &readSeekNopCloser{bytes.NewReader(buf)})
	return p
}

// newHumLoop synthesizes the two-tone background hum with a slow tremolo
// and wraps it in an infinite loop.
func newHumLoop(ctx *audio.Context) *audio.Player {
	n := int(sampleRate * bgmLoopSec)
	buf := pcm16Stereo(n, func(i int) float64 {
		t := float64(i) / sampleRate
		trem := 0.9 + 0.1*math.Sin(2*math.Pi*t/bgmLoopSec)
		return (math.Sin(2*math.Pi*bgmLowHz*t)*bgmLowVol +
			math.Sin(2*math.Pi*bgmHighHz*t)*bgmHighVol) * trem
	})
	loop := audio.NewInfiniteLoop(&readSeekNopCloser{bytes.NewReader(buf)}, int64(len(buf)))
	p, _ := audio.NewPlayer(ctx, loop)
	return p
}
