package game

import (
	"math"
	"math/rand/v2"
)

type Spawner struct {
	tuning Tuning
	fish   []*EntityKind
	trash  []*EntityKind
}

func newSpawner(tuning Tuning, kinds []*EntityKind) *Spawner {
	return &Spawner{
		tuning: tuning,
		fish:   KindsInCategory(kinds, CategoryFish),
		trash:  KindsInCategory(kinds, CategoryTrash),
	}
}

// trySpawn rolls the per-tick spawn chance. It returns nil during the opening
// guard window, on a failed roll, or when the chosen category has no kinds.
// Rarity is deliberately ignored: the pick within a category is uniform.
func (sp *Spawner) trySpawn(rng *rand.Rand, remaining float64, id EntityID) *Entity {
	if remaining >= sp.tuning.SessionSeconds-sp.tuning.SpawnGuardSeconds {
		return nil
	}
	if rng.Float64() > sp.tuning.SpawnChance {
		return nil
	}

	pool := sp.fish
	if rng.Float64() < sp.tuning.TrashChance {
		pool = sp.trash
	}
	if len(pool) == 0 {
		return nil
	}
	kind := pool[rng.IntN(len(pool))]
	band := sp.tuning.Band(kind.Depth)

	return &Entity{
		ID:        id,
		X:         sp.tuning.SpawnX,
		Y:         uniform(rng, band.Min, band.Max),
		Kind:      kind,
		Direction: 1,
		Phase:     rng.Float64() * 2 * math.Pi,
	}
}
