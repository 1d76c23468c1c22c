package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Role is the permission level of a household member.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Toggled returns the opposite role.
func (r Role) Toggled() Role {
	switch r {
	case RoleAdmin:
		return RoleUser
	case RoleUser:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// UnknownUserName is shown for events whose creator is not in the roster.
const UnknownUserName = "Unknown"

// AvatarColors is the palette a joining member's avatar colour is drawn from.
var AvatarColors = []string{
	"bg-rose-400", "bg-sky-400", "bg-teal-400", "bg-amber-400",
	"bg-violet-400", "bg-lime-400", "bg-pink-400",
}

// RandomAvatarColor picks a colour from AvatarColors.
func RandomAvatarColor() string {
	return AvatarColors[rand.IntN(len(AvatarColors))]
}

// User is a member of the household roster.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	AvatarColor string `json:"avatarColor"`
}

// IsAdmin reports whether u holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Initial returns the first letter of the name, used on avatars.
func (u User) Initial() string {
	for _, r := range u.Name {
		return strings.ToUpper(string(r))
	}
	return ""
}
