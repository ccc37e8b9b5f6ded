package game

type Category string

const (
	CategoryFish  Category = "fish"
	CategoryTrash Category = "trash"
)

type DepthBand string

const (
	DepthShallow DepthBand = "shallow"
	DepthMedium  DepthBand = "medium"
	DepthDeep    DepthBand = "deep"
)

type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

type KindID string

// EntityKind is shared by reference across every entity of that kind and is
// never mutated after init.
type EntityKind struct {
	ID       KindID
	Name     string
	Glyph    string
	Score    int
	Speed    float64
	Depth    DepthBand
	Rarity   float64 // 0-1, lower is rarer; not consulted by the spawner
	Color    string
	Category Category
	Size     SizeClass
}

var catalog = []*EntityKind{
	{ID: "squid", Name: "Squid", Glyph: "🦑", Score: 1, Speed: 3, Depth: DepthMedium, Rarity: 0.4, Color: "#ec4899", Category: CategoryFish, Size: SizeMedium},
	{ID: "octopus", Name: "Octopus", Glyph: "🐙", Score: 1, Speed: 1.2, Depth: DepthDeep, Rarity: 0.2, Color: "#a855f7", Category: CategoryFish, Size: SizeLarge},
	{ID: "crab", Name: "Crab", Glyph: "🦀", Score: 1, Speed: 1, Depth: DepthDeep, Rarity: 0.6, Color: "#ef4444", Category: CategoryFish, Size: SizeSmall},

	{ID: "bag", Name: "Plastic Bag", Glyph: "🛍️", Score: -1, Speed: 0.5, Depth: DepthShallow, Rarity: 0.5, Color: "#e5e7eb", Category: CategoryTrash, Size: SizeSmall},
	{ID: "can", Name: "Drink Can", Glyph: "🥫", Score: -1, Speed: 0.8, Depth: DepthMedium, Rarity: 0.5, Color: "#ef4444", Category: CategoryTrash, Size: SizeSmall},
	{ID: "straw", Name: "Straw", Glyph: "🥤", Score: -1, Speed: 0.6, Depth: DepthMedium, Rarity: 0.5, Color: "#cbd5e1", Category: CategoryTrash, Size: SizeSmall},
	{ID: "boot", Name: "Old Boot", Glyph: "👢", Score: -1, Speed: 1, Depth: DepthDeep, Rarity: 0.6, Color: "#4b5563", Category: CategoryTrash, Size: SizeSmall},
	{ID: "tire", Name: "Old Tire", Glyph: "🛞", Score: -1, Speed: 0.4, Depth: DepthDeep, Rarity: 0.4, Color: "#1f2937", Category: CategoryTrash, Size: SizeLarge},
}

// Catalog returns the kinds in declaration order. The slice is a copy; the
// kinds are shared.
func Catalog() []*EntityKind {
	out := make([]*EntityKind, len(catalog))
	copy(out, catalog)
	return out
}

func KindByID(id KindID) (*EntityKind, bool) {
	for _, kind := range catalog {
		if kind.ID == id {
			return kind, true
		}
	}
	return nil, false
}

func KindsInCategory(kinds []*EntityKind, category Category) []*EntityKind {
	out := make([]*EntityKind, 0, len(kinds))
	for _, kind := range kinds {
		if kind.Category == category {
			out = append(out, kind)
		}
	}
	return out
}

func (k *EntityKind) IsTrash() bool {
	return k != nil && k.Category == CategoryTrash
}
