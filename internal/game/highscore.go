package game

import (
	"encoding/json"
	"os"
)

// highscoreFile is the default record store, kept beside the binary's
// working directory.
const highscoreFile = "highscores.json"

type highscoreRecord struct {
	Highscore int `json:"highscore"`
}

// LoadHighscore reads the best score from path. Any failure — missing
// file, unreadable JSON — reads as zero: a fresh machine simply has no
// record yet.
func LoadHighscore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var rec highscoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0
	}
	return rec.Highscore
}

// SaveHighscore writes score to path when it beats the stored record and
// reports whether a write happened. A tie keeps the old record.
func SaveHighscore(path string, score int) (bool, error) {
	if score <= LoadHighscore(path) {
		return false, nil
	}
	data, err := json.Marshal(highscoreRecord{Highscore: score})
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
