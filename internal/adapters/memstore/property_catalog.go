package memstore

import (
	"context"
	"palais-immobilier-api/internal/core/domain"
	"sync"

	"github.com/mmcloughlin/geohash"
)

// Geohash cell size at precision 5 is about 5 km, which matches the
// "same part of town" notion the nearby block on the detail page needs.
const geohashPrecision = 5

// PropertyCatalog is the in-memory catalog adapter. It is the single canonical
// dataset: every consumer reads through it, nothing holds a private copy.
type PropertyCatalog struct {
	mu         sync.RWMutex
	properties []domain.Property
}

// NewPropertyCatalog creates a catalog holding the given initial listings.
func NewPropertyCatalog(seed []domain.Property) *PropertyCatalog {
	properties := make([]domain.Property, len(seed))
	copy(properties, seed)
	return &PropertyCatalog{properties: properties}
}

// snapshot returns a defensive copy; callers never see internal state.
func (c *PropertyCatalog) snapshot() []domain.Property {
	out := make([]domain.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *PropertyCatalog) FindWithCriteria(ctx context.Context, criteria domain.Criteria, sortKey domain.SortKey, limit, offset int) (*domain.PaginatedProperties, error) {
	c.mu.RLock()
	all := c.snapshot()
	c.mu.RUnlock()

	matched := domain.SortProperties(domain.Filter(all, criteria), sortKey)
	total := len(matched)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	page := matched[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}

	return &domain.PaginatedProperties{Properties: page, TotalCount: total}, nil
}

func (c *PropertyCatalog) GetByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.properties {
		if c.properties[i].ID == propertyID {
			p := c.properties[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (c *PropertyCatalog) FindByAgent(ctx context.Context, agentID string) ([]domain.Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Property, 0)
	for i := range c.properties {
		if c.properties[i].AgentID == agentID {
			out = append(out, c.properties[i])
		}
	}
	return out, nil
}

func (c *PropertyCatalog) FindNearby(ctx context.Context, propertyID string, limit int) ([]domain.Property, error) {
	base, err := c.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if base.Latitude == nil || base.Longitude == nil {
		return []domain.Property{}, nil
	}

	baseCell := geohash.EncodeWithPrecision(*base.Latitude, *base.Longitude, geohashPrecision)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Property, 0)
	for i := range c.properties {
		p := &c.properties[i]
		if p.ID == propertyID || !p.Approved || p.Latitude == nil || p.Longitude == nil {
			continue
		}
		cell := geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, geohashPrecision)
		if cell != baseCell {
			continue
		}
		out = append(out, *p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (c *PropertyCatalog) Create(ctx context.Context, property domain.Property) (*domain.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.properties {
		if c.properties[i].ID == property.ID {
			return nil, domain.ErrValidation
		}
	}
	c.properties = append(c.properties, property)
	created := property
	return &created, nil
}

// Replace swaps the full record by id. Identity, creation time and the
// monotonic view counter survive the replacement.
func (c *PropertyCatalog) Replace(ctx context.Context, property domain.Property) (*domain.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.properties {
		if c.properties[i].ID != property.ID {
			continue
		}
		property.CreatedAt = c.properties[i].CreatedAt
		if property.ViewCount < c.properties[i].ViewCount {
			property.ViewCount = c.properties[i].ViewCount
		}
		c.properties[i] = property
		updated := property
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (c *PropertyCatalog) Delete(ctx context.Context, propertyID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.properties {
		if c.properties[i].ID == propertyID {
			c.properties = append(c.properties[:i], c.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (c *PropertyCatalog) IncrementViewCount(ctx context.Context, propertyID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.properties {
		if c.properties[i].ID == propertyID {
			c.properties[i].ViewCount++
			return c.properties[i].ViewCount, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (c *PropertyCatalog) SetApproved(ctx context.Context, propertyID string, approved bool) (*domain.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.properties {
		if c.properties[i].ID == propertyID {
			c.properties[i].Approved = approved
			p := c.properties[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}
