package utils

import "github.com/google/uuid"

// UserIDGenerator issues user identifiers. IDs are UUIDv7, so they sort in
// registration order. A failing v7 source falls back to a random v4.
type UserIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUserIDGenerator() *UserIDGenerator {
	return &UserIDGenerator{newV7: uuid.NewV7}
}

func (g *UserIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
