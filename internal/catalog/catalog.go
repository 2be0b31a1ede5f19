package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/DKhorkin/leadlens/internal/domain"
)

// Catalog is the static credit-pack price list. Packs come from
// configuration and never change at runtime.
type Catalog struct {
	packs map[string]domain.CreditPack
	order []string
}

var defaultPacks = []domain.CreditPack{
	{ID: "starter", PriceMinorUnits: 500, CreditsGranted: 50},
	{ID: "growth", PriceMinorUnits: 2000, CreditsGranted: 250},
	{ID: "scale", PriceMinorUnits: 6000, CreditsGranted: 1000},
}

// New builds the catalog from a JSON pack list, falling back to the
// built-in packs when the configuration value is empty.
func New(packsJSON string) (*Catalog, error) {
	packs := defaultPacks
	if packsJSON != "" {
		packs = nil
		if err := json.Unmarshal([]byte(packsJSON), &packs); err != nil {
			return nil, fmt.Errorf("can't parse packs config: %w", err)
		}
	}

	c := &Catalog{packs: make(map[string]domain.CreditPack, len(packs))}
	for _, p := range packs {
		if p.ID == "" || p.PriceMinorUnits <= 0 || p.CreditsGranted <= 0 {
			return nil, fmt.Errorf("invalid pack %q: price and credits must be positive", p.ID)
		}
		if _, exists := c.packs[p.ID]; exists {
			return nil, fmt.Errorf("duplicate pack id %q", p.ID)
		}
		c.packs[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	if len(c.packs) == 0 {
		return nil, fmt.Errorf("packs config is empty")
	}
	return c, nil
}

func (c *Catalog) Find(packID string) (domain.CreditPack, bool) {
	p, ok := c.packs[packID]
	return p, ok
}

func (c *Catalog) List() []domain.CreditPack {
	packs := make([]domain.CreditPack, 0, len(c.order))
	for _, id := range c.order {
		packs = append(packs, c.packs[id])
	}
	return packs
}
