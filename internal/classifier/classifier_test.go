package classifier

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"universe-classifier/internal/domain"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
func agePtr(a uint32) *uint32 { return &a }

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name      string
		character domain.Character
		want      domain.Universe
		tier      domain.Tier
	}{
		{
			name:      "very old is rings",
			character: domain.Character{ID: 1, Age: agePtr(6000)},
			want:      domain.UniverseRings,
			tier:      domain.TierAge,
		},
		{
			name:      "300 years is star wars",
			character: domain.Character{ID: 2, Age: agePtr(300)},
			want:      domain.UniverseStarWars,
			tier:      domain.TierAge,
		},
		{
			name:      "vogsphere is hitch hiker",
			character: domain.Character{ID: 3, Planet: strPtr("Vogsphere")},
			want:      domain.UniverseHitchHiker,
			tier:      domain.TierWorld,
		},
		{
			name:      "blonde and tall is marvel",
			character: domain.Character{ID: 4, Traits: []string{"blonde", "tall"}},
			want:      domain.UniverseMarvel,
			tier:      domain.TierTraits,
		},
		{
			name:      "bulky humanoid is rings",
			character: domain.Character{ID: 5, IsHumanoid: boolPtr(true), Traits: []string{"bulky"}},
			want:      domain.UniverseRings,
			tier:      domain.TierHumanoid,
		},
		{
			name:      "young non humanoid without traits is indeterminate",
			character: domain.Character{ID: 6, IsHumanoid: boolPtr(false), Age: agePtr(50)},
			want:      domain.UniverseIndeterminate,
			tier:      domain.TierHumanoid,
		},
		{
			name:      "empty record falls back",
			character: domain.Character{ID: 7},
			want:      domain.UniverseIndeterminate,
			tier:      domain.TierFallback,
		},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Decide(tt.character)
			if got.Universe != tt.want || got.DecidedBy != tt.tier {
				t.Fatalf("Decide(%+v) = %+v; want %s by %s", tt.character, got, tt.want, tt.tier)
			}
			if c.Classify(tt.character) != tt.want {
				t.Fatalf("Classify disagrees with Decide for %+v", tt.character)
			}
		})
	}
}

func TestAgeBandBoundaries(t *testing.T) {
	tests := []struct {
		age  uint32
		want domain.Universe
	}{
		{age: 0, want: domain.UniverseIndeterminate},
		{age: 200, want: domain.UniverseIndeterminate},
		{age: 201, want: domain.UniverseStarWars},
		{age: 400, want: domain.UniverseStarWars},
		{age: 401, want: domain.UniverseMarvel},
		{age: 5000, want: domain.UniverseMarvel},
		{age: 5001, want: domain.UniverseRings},
		{age: 4294967295, want: domain.UniverseRings},
	}
	c := New(nil)
	for _, tt := range tests {
		got := c.Classify(domain.Character{ID: 1, Age: agePtr(tt.age)})
		if got != tt.want {
			t.Fatalf("Classify(age=%d) = %s; want %s", tt.age, got, tt.want)
		}
	}
}

func TestWorldTable(t *testing.T) {
	tests := []struct {
		world string
		want  domain.Universe
	}{
		{world: "earth", want: domain.UniverseRings},
		{world: "  EARTH ", want: domain.UniverseRings},
		{world: "Vogsphere", want: domain.UniverseHitchHiker},
		{world: "betelgeuse", want: domain.UniverseHitchHiker},
		{world: "Asgard", want: domain.UniverseMarvel},
		{world: "Kashyyyk", want: domain.UniverseStarWars},
		{world: "endor", want: domain.UniverseStarWars},
		{world: "tatooine", want: domain.UniverseIndeterminate},
		{world: "", want: domain.UniverseIndeterminate},
	}
	c := New(nil)
	for _, tt := range tests {
		got := c.Classify(domain.Character{ID: 1, Planet: strPtr(tt.world)})
		if got != tt.want {
			t.Fatalf("Classify(planet=%q) = %s; want %s", tt.world, got, tt.want)
		}
	}
}

func TestTierPrecedence(t *testing.T) {
	c := New(nil)

	t.Run("age over 5000 dominates everything", func(t *testing.T) {
		got := c.Classify(domain.Character{
			ID:         1,
			Age:        agePtr(9000),
			Planet:     strPtr("Asgard"),
			Traits:     []string{"hairy", "green"},
			IsHumanoid: boolPtr(false),
		})
		if got != domain.UniverseRings {
			t.Fatalf("expected rings, got %s", got)
		}
	})

	t.Run("known world dominates traits and humanoid", func(t *testing.T) {
		for _, age := range []*uint32{nil, agePtr(150), agePtr(200)} {
			got := c.Classify(domain.Character{
				ID:         2,
				Age:        age,
				Planet:     strPtr("Asgard"),
				Traits:     []string{"short", "bulky", "pointy_ears"},
				IsHumanoid: boolPtr(false),
			})
			if got != domain.UniverseMarvel {
				t.Fatalf("expected marvel, got %s", got)
			}
		}
	})

	t.Run("unknown world falls through to traits", func(t *testing.T) {
		got := c.Decide(domain.Character{ID: 3, Planet: strPtr("Tatooine"), Traits: []string{"Hairy"}})
		if got.Universe != domain.UniverseStarWars || got.DecidedBy != domain.TierTraits {
			t.Fatalf("expected star wars by traits, got %+v", got)
		}
	})

	t.Run("single trait beats compound pair", func(t *testing.T) {
		got := c.Classify(domain.Character{ID: 4, Traits: []string{"blonde", "tall", "pointy_ears"}})
		if got != domain.UniverseRings {
			t.Fatalf("expected rings, got %s", got)
		}
	})
}

func TestTraitRules(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   domain.Universe
	}{
		{name: "extra arms", traits: []string{"EXTRA_ARMS"}, want: domain.UniverseHitchHiker},
		{name: "extra head", traits: []string{" extra_head"}, want: domain.UniverseHitchHiker},
		{name: "green", traits: []string{"green"}, want: domain.UniverseHitchHiker},
		{name: "hairy then pointy ears", traits: []string{"hairy", "pointy_ears"}, want: domain.UniverseStarWars},
		{name: "pointy ears then hairy", traits: []string{"pointy_ears", "hairy"}, want: domain.UniverseStarWars},
		{name: "green outranks hairy", traits: []string{"hairy", "green"}, want: domain.UniverseHitchHiker},
		{name: "short and bulky", traits: []string{"Short", "Bulky"}, want: domain.UniverseRings},
		{name: "blonde alone", traits: []string{"blonde"}, want: domain.UniverseIndeterminate},
		{name: "tall alone", traits: []string{"tall"}, want: domain.UniverseIndeterminate},
		{name: "tall and short is not a pair", traits: []string{"tall", "short"}, want: domain.UniverseIndeterminate},
		{name: "unknown traits", traits: []string{"scaly", "winged"}, want: domain.UniverseIndeterminate},
		{name: "empty list", traits: []string{}, want: domain.UniverseIndeterminate},
	}
	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(domain.Character{ID: 1, Traits: tt.traits})
			if got != tt.want {
				t.Fatalf("Classify(traits=%v) = %s; want %s", tt.traits, got, tt.want)
			}
		})
	}
}

func TestHumanoidRules(t *testing.T) {
	tests := []struct {
		name     string
		humanoid bool
		traits   []string
		want     domain.Universe
	}{
		{name: "humanoid tall", humanoid: true, traits: []string{"tall"}, want: domain.UniverseMarvel},
		{name: "humanoid short", humanoid: true, traits: []string{"short"}, want: domain.UniverseRings},
		{name: "humanoid bulky", humanoid: true, traits: []string{"bulky"}, want: domain.UniverseRings},
		{name: "humanoid tall and short", humanoid: true, traits: []string{"short", "tall"}, want: domain.UniverseMarvel},
		{name: "humanoid blonde", humanoid: true, traits: []string{"blonde"}, want: domain.UniverseIndeterminate},
		{name: "humanoid no traits", humanoid: true, want: domain.UniverseIndeterminate},
		{name: "non humanoid tall", humanoid: false, traits: []string{"tall"}, want: domain.UniverseStarWars},
		{name: "non humanoid short", humanoid: false, traits: []string{" SHORT "}, want: domain.UniverseStarWars},
		{name: "non humanoid bulky", humanoid: false, traits: []string{"bulky"}, want: domain.UniverseHitchHiker},
		{name: "non humanoid blonde", humanoid: false, traits: []string{"blonde"}, want: domain.UniverseIndeterminate},
		{name: "non humanoid no traits", humanoid: false, want: domain.UniverseIndeterminate},
	}
	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(domain.Character{ID: 1, IsHumanoid: boolPtr(tt.humanoid), Traits: tt.traits})
			if got != tt.want {
				t.Fatalf("Classify(humanoid=%v, traits=%v) = %s; want %s", tt.humanoid, tt.traits, got, tt.want)
			}
		})
	}
}

func TestClassifyIsTotalAndDeterministic(t *testing.T) {
	c := New(nil)
	ages := []*uint32{nil, agePtr(10), agePtr(250), agePtr(1000), agePtr(7000)}
	worlds := []*string{nil, strPtr("earth"), strPtr("unknown"), strPtr(" ")}
	traitSets := [][]string{nil, {}, {"tall"}, {"blonde", "tall"}, {"short", "bulky"}, {"hairy"}, {"weird"}}
	humanoids := []*bool{nil, boolPtr(true), boolPtr(false)}

	for _, a := range ages {
		for _, w := range worlds {
			for _, tr := range traitSets {
				for _, h := range humanoids {
					ch := domain.Character{ID: 1, Age: a, Planet: w, Traits: tr, IsHumanoid: h}
					first := c.Classify(ch)
					if !first.Valid() {
						t.Fatalf("Classify(%+v) returned unknown category %q", ch, first)
					}
					if again := c.Classify(ch); again != first {
						t.Fatalf("Classify(%+v) not deterministic: %s vs %s", ch, first, again)
					}
				}
			}
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	c := New(nil)
	ch := domain.Character{ID: 9, Planet: strPtr("  Tatooine "), Traits: []string{" Tall ", "BLONDE"}}
	snapshot := domain.Character{ID: 9, Planet: strPtr("  Tatooine "), Traits: []string{" Tall ", "BLONDE"}}

	c.Classify(ch)

	if !reflect.DeepEqual(ch, snapshot) {
		t.Fatalf("input mutated: %+v", ch)
	}
}

func TestUnknownValuesAreLoggedNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(zap.New(core))

	got := c.Classify(domain.Character{ID: 11, Planet: strPtr("Tatooine"), Traits: []string{"scaly"}})
	if got != domain.UniverseIndeterminate {
		t.Fatalf("expected indeterminate, got %s", got)
	}
	if logs.FilterMessage("unknown world").Len() != 1 {
		t.Fatalf("expected one unknown world diagnostic, got %d", logs.FilterMessage("unknown world").Len())
	}
	if logs.FilterMessage("unknown trait").Len() != 1 {
		t.Fatalf("expected one unknown trait diagnostic, got %d", logs.FilterMessage("unknown trait").Len())
	}
}
