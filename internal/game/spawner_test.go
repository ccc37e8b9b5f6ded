package game

import "testing"

func TestSpawnerHonoursOpeningGuard(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpawnChance = 1
	sp := newSpawner(tuning, Catalog())
	rng := newRNG(1)

	for _, remaining := range []float64{60, 59.95, 59.91} {
		if e := sp.trySpawn(rng, remaining, 1); e != nil {
			t.Fatalf("expected no spawn with %gs remaining, got %+v", remaining, e)
		}
	}
	if e := sp.trySpawn(rng, 59.89, 1); e == nil {
		t.Fatalf("expected spawn once the guard has passed")
	}
}

func TestSpawnerPlacesEntitiesInDepthBands(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpawnChance = 1
	sp := newSpawner(tuning, Catalog())
	rng := newRNG(2026)

	trash := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		e := sp.trySpawn(rng, 30, EntityID(i+1))
		if e == nil {
			t.Fatalf("expected spawn with chance 1 at draw %d", i)
		}
		band := tuning.Band(e.Kind.Depth)
		if e.Y < band.Min || e.Y >= band.Max {
			t.Fatalf("%s spawned at y=%g outside %s band [%g,%g)", e.Kind.ID, e.Y, e.Kind.Depth, band.Min, band.Max)
		}
		if e.X != tuning.SpawnX || e.Direction != 1 {
			t.Fatalf("expected left-edge rightward spawn, got x=%g dir=%d", e.X, e.Direction)
		}
		if e.ID != EntityID(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, e.ID)
		}
		if e.Kind.IsTrash() {
			trash++
		}
	}

	share := float64(trash) / draws
	if share < 0.17 || share > 0.23 {
		t.Fatalf("expected roughly 20%% trash, got %.3f", share)
	}
}

func TestSpawnerRollsChancePerTick(t *testing.T) {
	sp := newSpawner(DefaultTuning(), Catalog())
	rng := newRNG(11)

	spawned := 0
	const ticks = 20000
	for i := 0; i < ticks; i++ {
		if sp.trySpawn(rng, 30, 1) != nil {
			spawned++
		}
	}
	rate := float64(spawned) / ticks
	if rate < 0.03 || rate > 0.05 {
		t.Fatalf("expected about 4%% spawn rate, got %.4f", rate)
	}
}

func TestSpawnerEmptyCategoryIsNoop(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpawnChance = 1
	tuning.TrashChance = 1
	sp := newSpawner(tuning, KindsInCategory(Catalog(), CategoryFish))

	for i := 0; i < 50; i++ {
		if e := sp.trySpawn(newRNG(int64(i)), 30, 1); e != nil {
			t.Fatalf("expected no spawn from an empty trash pool, got %s", e.Kind.ID)
		}
	}
}

func TestSpawnerPicksEveryKindInCategory(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SpawnChance = 1
	tuning.TrashChance = 0
	sp := newSpawner(tuning, Catalog())
	rng := newRNG(5)

	seen := map[KindID]int{}
	for i := 0; i < 3000; i++ {
		seen[sp.trySpawn(rng, 30, 1).Kind.ID]++
	}
	for _, id := range []KindID{"squid", "octopus", "crab"} {
		// Uniform pick: rarity 0.2 octopus shows up as often as the others.
		if seen[id] < 850 || seen[id] > 1150 {
			t.Fatalf("expected uniform pick, %s drawn %d times of 3000", id, seen[id])
		}
	}
}

func TestCatalogShape(t *testing.T) {
	kinds := Catalog()
	if got := len(KindsInCategory(kinds, CategoryFish)); got != 3 {
		t.Fatalf("expected 3 fish kinds, got %d", got)
	}
	if got := len(KindsInCategory(kinds, CategoryTrash)); got != 5 {
		t.Fatalf("expected 5 trash kinds, got %d", got)
	}
	for _, k := range kinds {
		if k.IsTrash() && k.Score != -1 {
			t.Fatalf("trash %s should score -1, got %d", k.ID, k.Score)
		}
		if !k.IsTrash() && k.Score != 1 {
			t.Fatalf("fish %s should score +1, got %d", k.ID, k.Score)
		}
	}
	tire, ok := KindByID("tire")
	if !ok || tire.Size != SizeLarge {
		t.Fatalf("expected tire to be a large kind, got %+v", tire)
	}
	if _, ok := KindByID("clownfish"); ok {
		t.Fatalf("did not expect clownfish in the catalog")
	}
}
