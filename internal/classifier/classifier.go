// Package classifier decide a qué universo pertenece un personaje a partir de evidencia parcial.
//
// La decisión es una cascada de etapas (edad, planeta, rasgos, humanoide). Cada etapa concluye o se
// abstiene; la primera que concluye gana. Si todas se abstienen el resultado es Indeterminate, que es
// una categoría válida y no un error.
package classifier

import (
	"go.uber.org/zap"

	"universe-classifier/internal/domain"
)

// Decision es el resultado de la cascada junto con la etapa que concluyó.
type Decision struct {
	Universe  domain.Universe
	DecidedBy domain.Tier
}

// Classifier evalúa registros contra las tablas de reglas. No guarda estado entre registros,
// por lo que una misma instancia puede usarse desde varias goroutines.
type Classifier struct {
	logger *zap.Logger
}

// New crea un Classifier. El logger sólo recibe diagnósticos sobre valores desconocidos.
func New(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// evidence contiene los valores derivados de un registro; el registro original no se toca.
type evidence struct {
	character domain.Character
	traits    traitSet
}

type tier struct {
	name domain.Tier
	eval func(c *Classifier, ev evidence) (domain.Universe, bool)
}

// cascade fija el orden de evaluación. Las etapas anteriores dominan a las posteriores.
var cascade = []tier{
	{name: domain.TierAge, eval: (*Classifier).byAge},
	{name: domain.TierWorld, eval: (*Classifier).byWorld},
	{name: domain.TierTraits, eval: (*Classifier).byTraits},
	{name: domain.TierHumanoid, eval: (*Classifier).byHumanoid},
}

// Classify devuelve exactamente una de las cinco categorías.
func (c *Classifier) Classify(character domain.Character) domain.Universe {
	return c.Decide(character).Universe
}

// Decide recorre la cascada y reporta qué etapa concluyó.
func (c *Classifier) Decide(character domain.Character) Decision {
	ev := evidence{
		character: character,
		traits:    newTraitSet(NormalizeAll(character.Traits)),
	}
	for _, t := range cascade {
		if universe, ok := t.eval(c, ev); ok {
			return Decision{Universe: universe, DecidedBy: t.name}
		}
	}
	return Decision{Universe: domain.UniverseIndeterminate, DecidedBy: domain.TierFallback}
}

func (c *Classifier) byAge(ev evidence) (domain.Universe, bool) {
	if ev.character.Age == nil {
		return "", false
	}
	age := *ev.character.Age
	for _, band := range ageBands {
		if age > band.above && age <= band.upTo {
			return band.universe, true
		}
	}
	return "", false
}

func (c *Classifier) byWorld(ev evidence) (domain.Universe, bool) {
	if ev.character.Planet == nil {
		return "", false
	}
	world := Normalize(*ev.character.Planet)
	if world == "" {
		return "", false
	}
	if universe, ok := worldUniverses[world]; ok {
		return universe, true
	}
	c.logger.Debug("unknown world",
		zap.Uint32("id", ev.character.ID),
		zap.String("planet", *ev.character.Planet),
	)
	return "", false
}

func (c *Classifier) byTraits(ev evidence) (domain.Universe, bool) {
	if len(ev.traits) == 0 {
		return "", false
	}
	for trait := range ev.traits {
		if _, ok := knownTraits[trait]; !ok {
			c.logger.Debug("unknown trait",
				zap.Uint32("id", ev.character.ID),
				zap.String("trait", trait),
			)
		}
	}
	if universe, ok := matchTraitRules(ev.traits, singleTraitRules); ok {
		return universe, true
	}
	for _, r := range traitPairRules {
		if ev.traits.has(r.first) && ev.traits.has(r.second) {
			return r.universe, true
		}
	}
	return "", false
}

// byHumanoid concluye siempre que el flag esté presente; sin regla aplicable el resultado es Indeterminate.
func (c *Classifier) byHumanoid(ev evidence) (domain.Universe, bool) {
	if ev.character.IsHumanoid == nil {
		return "", false
	}
	if universe, ok := matchTraitRules(ev.traits, humanoidRules[*ev.character.IsHumanoid]); ok {
		return universe, true
	}
	return domain.UniverseIndeterminate, true
}
