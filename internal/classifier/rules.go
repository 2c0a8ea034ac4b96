package classifier

import (
	"math"

	"universe-classifier/internal/domain"
)

/*
========================
 Tablas de reglas
========================
*/

// ageBand cubre el rango (above, upTo].
type ageBand struct {
	above    uint32
	upTo     uint32
	universe domain.Universe
}

// Ordenadas de la esperanza de vida más discriminante hacia abajo. Por debajo de 200 no decide.
var ageBands = []ageBand{
	{above: 5000, upTo: math.MaxUint32, universe: domain.UniverseRings},
	{above: 400, upTo: 5000, universe: domain.UniverseMarvel},
	{above: 200, upTo: 400, universe: domain.UniverseStarWars},
}

var worldUniverses = map[string]domain.Universe{
	"earth":      domain.UniverseRings,
	"vogsphere":  domain.UniverseHitchHiker,
	"betelgeuse": domain.UniverseHitchHiker,
	"asgard":     domain.UniverseMarvel,
	"kashyyyk":   domain.UniverseStarWars,
	"endor":      domain.UniverseStarWars,
}

// traitRule concluye si el personaje tiene cualquiera de los rasgos listados.
type traitRule struct {
	anyOf    []string
	universe domain.Universe
}

// traitPairRule concluye sólo si el personaje tiene ambos rasgos.
type traitPairRule struct {
	first    string
	second   string
	universe domain.Universe
}

// Prioridad fija: gana la primera regla que matchea, sin importar el orden de los rasgos en el registro.
var singleTraitRules = []traitRule{
	{anyOf: []string{"extra_arms", "extra_head", "green"}, universe: domain.UniverseHitchHiker},
	{anyOf: []string{"hairy"}, universe: domain.UniverseStarWars},
	{anyOf: []string{"pointy_ears"}, universe: domain.UniverseRings},
}

var traitPairRules = []traitPairRule{
	{first: "blonde", second: "tall", universe: domain.UniverseMarvel},
	{first: "short", second: "bulky", universe: domain.UniverseRings},
}

// humanoidRules se evalúa sólo cuando todas las etapas anteriores se abstuvieron.
// Si ninguna regla matchea, el resultado es Indeterminate.
var humanoidRules = map[bool][]traitRule{
	true: {
		{anyOf: []string{"tall"}, universe: domain.UniverseMarvel},
		{anyOf: []string{"bulky", "short"}, universe: domain.UniverseRings},
	},
	false: {
		{anyOf: []string{"tall", "short"}, universe: domain.UniverseStarWars},
		{anyOf: []string{"bulky"}, universe: domain.UniverseHitchHiker},
	},
}

// knownTraits reúne todos los literales de rasgos que alguna regla consulta.
var knownTraits = func() map[string]struct{} {
	out := make(map[string]struct{})
	for _, r := range singleTraitRules {
		for _, t := range r.anyOf {
			out[t] = struct{}{}
		}
	}
	for _, r := range traitPairRules {
		out[r.first] = struct{}{}
		out[r.second] = struct{}{}
	}
	for _, rules := range humanoidRules {
		for _, r := range rules {
			for _, t := range r.anyOf {
				out[t] = struct{}{}
			}
		}
	}
	return out
}()

// traitSet es el conjunto de rasgos ya normalizados de un registro.
type traitSet map[string]struct{}

func newTraitSet(normalized []string) traitSet {
	set := make(traitSet, len(normalized))
	for _, t := range normalized {
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

func (s traitSet) has(trait string) bool {
	_, ok := s[trait]
	return ok
}

func (s traitSet) hasAny(traits []string) bool {
	for _, t := range traits {
		if s.has(t) {
			return true
		}
	}
	return false
}

func matchTraitRules(set traitSet, rules []traitRule) (domain.Universe, bool) {
	for _, r := range rules {
		if set.hasAny(r.anyOf) {
			return r.universe, true
		}
	}
	return "", false
}
