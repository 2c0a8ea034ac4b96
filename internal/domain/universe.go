package domain

import (
	"time"

	"github.com/google/uuid"
)

// Universe es la categoría asignada a un personaje.
type Universe string

const (
	UniverseStarWars      Universe = "star_wars"
	UniverseHitchHiker    Universe = "hitch_hiker"
	UniverseRings         Universe = "rings"
	UniverseMarvel        Universe = "marvel"
	UniverseIndeterminate Universe = "indeterminate"
)

// Universes lista las categorías en el orden en que se reportan.
var Universes = []Universe{
	UniverseStarWars,
	UniverseHitchHiker,
	UniverseRings,
	UniverseMarvel,
	UniverseIndeterminate,
}

// Valid indica si u es una de las cinco categorías conocidas.
func (u Universe) Valid() bool {
	for _, known := range Universes {
		if u == known {
			return true
		}
	}
	return false
}

// Tier identifica la etapa de la cascada que decidió.
type Tier string

const (
	TierAge      Tier = "age"
	TierWorld    Tier = "world"
	TierTraits   Tier = "traits"
	TierHumanoid Tier = "humanoid"
	TierFallback Tier = "fallback"
)

// Outcome asocia un personaje con su categoría. Inmutable una vez creado.
type Outcome struct {
	Position  int       `json:"position"`
	Character Character `json:"character"`
	Universe  Universe  `json:"universe"`
	DecidedBy Tier      `json:"decided_by"`
}

// Run agrupa los resultados de clasificar un lote.
type Run struct {
	ID         uuid.UUID        `json:"id"`
	Source     string           `json:"source"`
	Outcomes   []Outcome        `json:"outcomes,omitempty"`
	Rejections []Rejection      `json:"rejections,omitempty"`
	Counts     map[Universe]int `json:"counts"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Total devuelve la cantidad de registros clasificados.
func (r Run) Total() int {
	return len(r.Outcomes)
}

// RunSummary es la vista persistida de un Run, sin el detalle de cada registro.
type RunSummary struct {
	ID        uuid.UUID        `json:"id"`
	Source    string           `json:"source"`
	Total     int              `json:"total"`
	Rejected  int              `json:"rejected"`
	Counts    map[Universe]int `json:"counts"`
	CreatedAt time.Time        `json:"created_at"`
}

// Summary resume el run.
func (r Run) Summary() RunSummary {
	return RunSummary{
		ID:        r.ID,
		Source:    r.Source,
		Total:     r.Total(),
		Rejected:  len(r.Rejections),
		Counts:    r.Counts,
		CreatedAt: r.CreatedAt,
	}
}
