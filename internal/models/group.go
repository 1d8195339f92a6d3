package models

import "time"

// Group is a set of users who share expenses.
// The creator is always a member; members are never removed.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// CreatedByID is the user who created the group.
	CreatedByID string

	// Members is the list of users in this group, ordered by name.
	// Populated on reads; ignored by CreateGroup, which only adds the creator.
	Members []UserSummary

	// CreatedAt is when the group was created.
	CreatedAt time.Time
}

// HasMember reports whether userID is in g.Members.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
