// Package output agrupa los resultados por universo y los persiste como un archivo JSON por categoría.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"universe-classifier/internal/domain"
)

// FileNames asigna a cada universo su archivo de salida.
var FileNames = map[domain.Universe]string{
	domain.UniverseStarWars:      "star_wars.json",
	domain.UniverseHitchHiker:    "hitch_hiker.json",
	domain.UniverseRings:         "rings.json",
	domain.UniverseMarvel:        "marvel.json",
	domain.UniverseIndeterminate: "indeterminate.json",
}

// Partition agrupa personajes por universo respetando el orden de entrada.
// Las cinco categorías siempre están presentes, aunque vacías.
func Partition(outcomes []domain.Outcome) map[domain.Universe][]domain.Character {
	out := make(map[domain.Universe][]domain.Character, len(domain.Universes))
	for _, u := range domain.Universes {
		out[u] = []domain.Character{}
	}
	for _, o := range outcomes {
		out[o.Universe] = append(out[o.Universe], o.Character)
	}
	return out
}

// WriteDir escribe un archivo por universo dentro de dir, creándolo si hace falta.
func WriteDir(dir string, partition map[domain.Universe][]domain.Character) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, u := range domain.Universes {
		characters := partition[u]
		if characters == nil {
			characters = []domain.Character{}
		}
		data, err := json.MarshalIndent(characters, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", u, err)
		}
		path := filepath.Join(dir, FileNames[u])
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
