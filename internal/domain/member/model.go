package member

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleRegular   Role = "regular"
)

var ErrUnknownRole = errors.New("unknown member role")

func ParseRole(v string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(v))); r {
	case RoleAdmin, RoleModerator, RoleRegular:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, v)
	}
}

// Member is a league participant. ID matches the identity provider user id.
type Member struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	// Account is the member's balance in dollars; buy-ins debit it and
	// admin adjustments credit or debit it.
	Account   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("member id is required")
	}
	if _, err := ParseRole(string(m.Role)); err != nil {
		return err
	}
	return nil
}

func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// DisplayName is what standings show for a tour card, "F. Last" when both
// names are known.
func (m Member) DisplayName() string {
	first := strings.TrimSpace(m.FirstName)
	last := strings.TrimSpace(m.LastName)
	switch {
	case first != "" && last != "":
		return string([]rune(first)[:1]) + ". " + last
	case last != "":
		return last
	case first != "":
		return first
	default:
		return m.Email
	}
}

func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// CanModerate is true for admins and moderators.
func (m Member) CanModerate() bool {
	return m.Role == RoleAdmin || m.Role == RoleModerator
}
