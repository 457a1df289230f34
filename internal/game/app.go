package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tickDt is the fixed step fed to the sim each Update, matching the
// 60TPS loop.
const tickDt = 1.0 / 60.0

// App is the interactive shell around the Sim: it reads the keyboard,
// advances the sim once per tick, routes frame events to the sound bank
// and draws snapshots. It implements ebiten.Game.
type App struct {
	sim    *Sim
	sounds *SoundBank
	rend   renderer

	saved bool // highscore persisted for the current game over
}

// New builds the playable game: time-based seed, persisted highscore,
// synthesized sound, background music running.
func New() *App {
	sim := NewSim(time.Now().UnixNano())
	sim.SetHighscore(LoadHighscore(highscoreFile))
	a := &App{
		sim:    sim,
		sounds: NewSoundBank(),
	}
	a.sounds.StartMusic()
	return a
}

// Update runs one 60Hz tick: restart and quit keys, held fire, held
// movement, then one sim step. Holding space fires as fast as the
// cooldown allows.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(a.sim.GameOver() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)) {
		a.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		_ = CopyReport(a.sim.Log(), a.sim.Snapshot())
	}

	var evs []Event
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		evs = append(evs, a.sim.Fire()...)
	}
	in := Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
	evs = append(evs, a.sim.Advance(tickDt, in)...)
	a.sounds.HandleEvents(evs)

	if a.sim.GameOver() {
		a.persistHighscore()
	}
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	a.rend.drawFrame(screen, a.sim.Snapshot())
}

// Layout fixes the logical resolution regardless of window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(screenW), int(screenH)
}

// restart begins a fresh run. A run abandoned mid-game keeps its score
// off the record; only a finished run was persisted.
func (a *App) restart() {
	if a.sim.GameOver() {
		a.persistHighscore()
	}
	a.sim.Reset()
	a.sim.SetHighscore(LoadHighscore(highscoreFile))
	a.saved = false
}

// persistHighscore writes the final score once per game over. The HUD
// keeps showing the old record until the next run, when restart reloads
// it.
func (a *App) persistHighscore() {
	if a.saved {
		return
	}
	a.saved = true
	_, _ = SaveHighscore(highscoreFile, a.sim.CurrentScore())
}
