package domain

// CanDelete reports whether actor may remove e: admins may remove anything,
// everyone else only what they created.
func CanDelete(actor User, e CalendarEvent) bool {
	if actor.ID == "" {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == e.CreatedBy
}

// CanChangeRole checks whether actor may toggle target's role. Only admins
// change roles and nobody changes their own.
func CanChangeRole(actor, target User) error {
	if actor.ID == target.ID {
		return ErrSelfRoleChange
	}
	if actor.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}
