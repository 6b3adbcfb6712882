package store

import "errors"

var (
	// ErrTeamNotFound is returned when a team id does not resolve to a row.
	ErrTeamNotFound = errors.New("team not found")
	// ErrShirtNumberTaken is returned when unique shirt numbers are enforced
	// and the team already has a player wearing the number.
	ErrShirtNumberTaken = errors.New("shirt number taken")
)
