package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/offchance222/cat-game/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Space Dodger — Cat Attack")
	ebiten.SetWindowSize(480, 640)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
