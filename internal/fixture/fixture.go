// Package fixture loads the local audio samples used as upload payloads.
package fixture

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	apperrors "audiocheck/internal/errors"
)

// DefaultPaths are the sample files uploaded by the scenario.
var DefaultPaths = []string{
	"testdata/0_george_0.wav",
	"testdata/1_george_0.wav",
	"testdata/2_george_0.wav",
	"testdata/3_george_0.wav",
	"testdata/4_george_0.wav",
	"testdata/5_george_0.wav",
}

// AudioFixture is a sample file held in memory with its SHA-256 digest.
// Fixtures are never mutated after Load and may be shared freely.
type AudioFixture struct {
	Path string
	Data []byte
	Hash string
}

// Filename returns the base name sent as the multipart filename.
func (f AudioFixture) Filename() string {
	return filepath.Base(f.Path)
}

// Load reads every path relative to the working directory.
func Load(paths []string) ([]AudioFixture, error) {
	return LoadFrom("", paths)
}

// LoadFrom reads every path, resolving relative paths against dir.
// The first unreadable file aborts the load.
func LoadFrom(dir string, paths []string) ([]AudioFixture, error) {
	if len(paths) == 0 {
		return nil, apperrors.ErrNoFixtures
	}

	fixtures := make([]AudioFixture, 0, len(paths))
	for _, p := range paths {
		full := p
		if dir != "" && !filepath.IsAbs(p) {
			full = filepath.Join(dir, p)
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrFixtureUnreadable, full, err)
		}

		fixtures = append(fixtures, AudioFixture{
			Path: p,
			Data: data,
			Hash: Hash(data),
		})
	}

	return fixtures, nil
}

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether data hashes to expectedHex.
func VerifyHash(data []byte, expectedHex string) bool {
	return Hash(data) == expectedHex
}
