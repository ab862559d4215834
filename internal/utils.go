package internal

import "github.com/google/uuid"

const (
	BoardUuidSize = 6
)

// Returns the first `size` characters of a fresh uuid.
// Short ids are easier to type and share between clients.
func NewShortUuid(size int) string {
	id := uuid.NewString()
	if size <= 0 || size > len(id) {
		return id
	}
	return id[:size]
}
