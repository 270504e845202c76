package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateNanoID returns a lowercase alphanumeric nanoid of the given length.
func GenerateNanoID(length int) string {
	id, err := gonanoid.Generate(idAlphabet, length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateNanoIDWithPrefix returns ids like "tmpl_x1y2z3...". Used for every
// persisted entity and for canvas component instances.
func GenerateNanoIDWithPrefix(prefix string, length int) string {
	return fmt.Sprintf("%s_%s", prefix, GenerateNanoID(length))
}

func Now() time.Time {
	return time.Now().UTC()
}

func NowPtr() *time.Time {
	now := Now()
	return &now
}
