package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Version is the optimistic concurrency counter; it increases by one on every write.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // actor id
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // actor id
	Version       int64     `json:"version"`
}

// NewAuditFields stamps a freshly created entity at version 1.
func NewAuditFields(actorID string, at time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     actorID,
		LastUpdatedAt: at,
		LastUpdatedBy: actorID,
		Version:       1,
	}
}

// Touch records who last changed the entity and when. Version is bumped by the store.
func (a *AuditFields) Touch(actorID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = actorID
}

// SystemActor is the actor id recorded for date-driven transitions.
const SystemActor = "system"

// DateOnly truncates t to midnight UTC of its calendar day in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
