package identity

import (
	"regexp"
	"strings"

	"github.com/volhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// Volunteer represents a person offering their time.
// It is the aggregate root for volunteer-related operations.
type Volunteer struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Location     string
	Bio          string
	SkillNames   []string // Loaded separately by the repository
}

// NewVolunteer creates a new volunteer with required fields
func NewVolunteer(name, email, password string) (*Volunteer, error) {
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

	return &Volunteer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		SkillNames:        make([]string, 0),
	}, nil
}

// SetContactDetails sets the volunteer's optional profile fields
func (v *Volunteer) SetContactDetails(phone, location, bio string) {
	v.Phone = strings.TrimSpace(phone)
	v.Location = strings.TrimSpace(location)
	v.Bio = bio
}

// VerifyPassword verifies if the provided password matches
func (v *Volunteer) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password))
	return err == nil
}

// Validation functions

func validateRequired(name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Name, email, and password are required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
