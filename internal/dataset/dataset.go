// Package dataset lee el documento de entrada y valida cada registro antes de clasificarlo.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"universe-classifier/internal/domain"
)

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrMalformedRecord   = errors.New("malformed record")
)

// Batch contiene los registros válidos en orden de entrada y los rechazados.
type Batch struct {
	Source     string             `json:"source,omitempty"`
	Characters []domain.Character `json:"characters"`
	Rejections []domain.Rejection `json:"rejections,omitempty"`
}

type document struct {
	Data *[]json.RawMessage `json:"data"`
}

// rawCharacter permite distinguir un id ausente de un id cero.
type rawCharacter struct {
	ID         *uint32  `json:"id"`
	IsHumanoid *bool    `json:"isHumanoid"`
	Planet     *string  `json:"planet"`
	Age        *uint32  `json:"age"`
	Traits     []string `json:"traits"`
}

// Load abre el archivo en path y lo parsea.
func Load(path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	batch, err := Parse(f)
	if err != nil {
		return Batch{}, err
	}
	batch.Source = path
	return batch, nil
}

// Parse decodifica un documento {"data": [...]}. Un documento ilegible es fatal; un registro
// mal formado o con id repetido sólo rechaza ese registro.
func Parse(r io.Reader) (Batch, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Data == nil {
		return Batch{}, fmt.Errorf("%w: missing data array", ErrMalformedDocument)
	}

	batch := Batch{Characters: make([]domain.Character, 0, len(*doc.Data))}
	seen := make(map[uint32]int, len(*doc.Data))
	for i, raw := range *doc.Data {
		character, err := ParseCharacter(raw)
		if err != nil {
			batch.Rejections = append(batch.Rejections, domain.Rejection{
				Index:  i,
				ID:     peekID(raw),
				Reason: err.Error(),
			})
			continue
		}
		if first, dup := seen[character.ID]; dup {
			id := character.ID
			batch.Rejections = append(batch.Rejections, domain.Rejection{
				Index:  i,
				ID:     &id,
				Reason: fmt.Sprintf("%v: duplicate id %d (first seen at index %d)", ErrMalformedRecord, id, first),
			})
			continue
		}
		seen[character.ID] = i
		batch.Characters = append(batch.Characters, character)
	}
	return batch, nil
}

// ParseCharacter decodifica un único registro y exige el id.
func ParseCharacter(raw []byte) (domain.Character, error) {
	var rc rawCharacter
	if err := json.Unmarshal(raw, &rc); err != nil {
		return domain.Character{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rc.ID == nil {
		return domain.Character{}, fmt.Errorf("%w: missing id", ErrMalformedRecord)
	}
	return domain.Character{
		ID:         *rc.ID,
		IsHumanoid: rc.IsHumanoid,
		Planet:     rc.Planet,
		Age:        rc.Age,
		Traits:     rc.Traits,
	}, nil
}

func peekID(raw []byte) *uint32 {
	var probe struct {
		ID *uint32 `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	return probe.ID
}
