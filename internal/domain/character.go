package domain

// Character es un registro parcial a clasificar. Todos los campos salvo ID son opcionales:
// nil significa "desconocido", no "falso" ni "vacío".
type Character struct {
	ID         uint32   `json:"id"`
	IsHumanoid *bool    `json:"isHumanoid"`
	Planet     *string  `json:"planet"`
	Age        *uint32  `json:"age"`
	Traits     []string `json:"traits"`
}

// Rejection describe un registro descartado antes de clasificar.
type Rejection struct {
	Index  int     `json:"index"`
	ID     *uint32 `json:"id,omitempty"`
	Reason string  `json:"reason"`
}
