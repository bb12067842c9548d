package utils

import "github.com/google/uuid"

// UUIDGenerator produces statistically unique identifiers. Time-ordered
// UUIDv7 values are preferred; a random v4 is returned if the v7 clock
// source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
