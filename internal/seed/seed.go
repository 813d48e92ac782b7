// Package seed provides utilities for choosing the random seed used by the
// palette generator, so generated palettes can be reproduced.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Mode determines how the random seed for palette generation is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run, default).
	ModeRandom Mode = "random"
	// ModeContent derives the seed from the palette code, so the same code
	// always generates the same palette.
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// code is the palette code being resolved (required for ModeContent).
func Calculate(code string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		return CalculateContentSeed(code), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateContentSeed hashes the palette code into a seed.
func CalculateContentSeed(code string) int64 {
	hash := sha256.Sum256([]byte(code))
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	// #nosec G404 -- palette generation does not need a cryptographic source
	return rand.New(rand.NewSource(seed))
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeContent, ModeManual}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, content, manual)", s)
}
