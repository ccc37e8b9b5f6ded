package game

// Ledger is the session score. Only the catch resolver writes to it.
type Ledger struct {
	score int
}

func (l *Ledger) apply(delta int) int {
	l.score += delta
	return l.score
}

func (l Ledger) Score() int {
	return l.score
}

type InventoryItem struct {
	Kind     KindID   `json:"kind"`
	Glyph    string   `json:"glyph"`
	Category Category `json:"category"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation float64  `json:"rotation"`
}

// inventory is the cosmetic pile in the boat's storage box. Positions are
// relative to the boat centre and the water line.
type inventory struct {
	items []InventoryItem
	limit int
}

func (inv *inventory) add(item InventoryItem) {
	inv.items = append(inv.items, item)
	if over := len(inv.items) - inv.limit; over > 0 {
		inv.items = append([]InventoryItem(nil), inv.items[over:]...)
	}
}
