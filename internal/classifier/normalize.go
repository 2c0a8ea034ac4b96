package classifier

import "strings"

// Normalize lleva un valor crudo a su forma comparable: sin espacios en los extremos y en minúsculas.
// Ej: "  EARTH " -> "earth"
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAll aplica Normalize a cada elemento y devuelve un slice nuevo.
func NormalizeAll(raw []string) []string {
	if raw == nil {
		return nil
	}
	out := make([]string, len(raw))
	for i, s := range raw {
		out[i] = Normalize(s)
	}
	return out
}
