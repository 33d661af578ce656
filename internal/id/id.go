package id

import "github.com/google/uuid"

// GenerateID returns a time-ordered UUIDv7 string, so ids sort by creation.
func GenerateID() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}
