package identity

import (
	"strings"

	"github.com/volhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Organization represents a group posting volunteer opportunities.
// It is the aggregate root for organization-related operations.
type Organization struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Description  string
	Location     string
	Website      string
}

// NewOrganization creates a new organization with required fields
func NewOrganization(name, email, password string) (*Organization, error) {
	if err := validateRequired(name, email, password); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
	}, nil
}

// SetProfile sets the organization's optional public fields
func (o *Organization) SetProfile(description, location, website string) {
	o.Description = description
	o.Location = strings.TrimSpace(location)
	o.Website = strings.TrimSpace(website)
}

// VerifyPassword verifies if the provided password matches
func (o *Organization) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password))
	return err == nil
}
