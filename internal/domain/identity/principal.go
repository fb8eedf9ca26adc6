package identity

import (
	"github.com/google/uuid"
)

// ActorKind distinguishes the two account types that can authenticate
type ActorKind string

const (
	ActorVolunteer    ActorKind = "volunteer"
	ActorOrganization ActorKind = "organization"
)

// ValidActorKind reports whether the given kind is a known account type
func ValidActorKind(kind ActorKind) bool {
	return kind == ActorVolunteer || kind == ActorOrganization
}

// Principal is an authenticated caller. It is established per request by
// verifying credentials against the identity store and is required by every
// operation that mutates owner-scoped state.
type Principal struct {
	ID    uuid.UUID
	Kind  ActorKind
	Name  string
	Email string
}

// IsVolunteer reports whether the principal is a volunteer account
func (p Principal) IsVolunteer() bool {
	return p.Kind == ActorVolunteer
}

// IsOrganization reports whether the principal is an organization account
func (p Principal) IsOrganization() bool {
	return p.Kind == ActorOrganization
}
