package shared

import "time"

// BaseAggregateRoot extends BaseEntity with an optimistic-lock version.
// Repositories include Version in their UPDATE predicates, so a stale write
// matches zero rows and surfaces as a conflict.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// Touch records a mutation: it refreshes UpdatedAt and bumps the version
func (a *BaseAggregateRoot) Touch() {
	a.UpdatedAt = time.Now()
	a.Version++
}

// NewBaseAggregateRoot creates a base aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
