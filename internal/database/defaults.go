package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/kikaportals/internal/database/repository"
)

//go:embed catalog.toml
var embeddedCatalog []byte

// Seed is the static catalog content.
type Seed struct {
	Jobs         []repository.JobPosting  `toml:"job"`
	Applications []repository.Application `toml:"application"`
}

var ErrInvalidSeed = errors.New("invalid catalog seed")

// LoadSeed decodes the catalog file at path, or the embedded catalog when path
// is empty.
func LoadSeed(path string) (Seed, error) {
	data := embeddedCatalog
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if err := s.validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

func (s Seed) validate() error {
	seen := map[int]struct{}{}
	for _, j := range s.Jobs {
		if j.ID <= 0 {
			return fmt.Errorf("%w: job id %d must be positive", ErrInvalidSeed, j.ID)
		}
		if _, ok := seen[j.ID]; ok {
			return fmt.Errorf("%w: duplicate job id %d", ErrInvalidSeed, j.ID)
		}
		seen[j.ID] = struct{}{}
		if strings.TrimSpace(j.Position) == "" || strings.TrimSpace(j.Company) == "" {
			return fmt.Errorf("%w: job %d needs position and company", ErrInvalidSeed, j.ID)
		}
	}
	seen = map[int]struct{}{}
	for _, a := range s.Applications {
		if a.ID <= 0 {
			return fmt.Errorf("%w: application id %d must be positive", ErrInvalidSeed, a.ID)
		}
		if _, ok := seen[a.ID]; ok {
			return fmt.Errorf("%w: duplicate application id %d", ErrInvalidSeed, a.ID)
		}
		seen[a.ID] = struct{}{}
		if strings.TrimSpace(a.Position) == "" || strings.TrimSpace(a.Company) == "" {
			return fmt.Errorf("%w: application %d needs position and company", ErrInvalidSeed, a.ID)
		}
	}
	return nil
}

// SeedCatalog writes the seed into the store. It is idempotent and safe to run
// on every startup.
func SeedCatalog(ctx context.Context, db *sql.DB, seed Seed) error {
	jobs := repository.NewJobRepo(db)
	for _, j := range seed.Jobs {
		if err := jobs.Upsert(ctx, j); err != nil {
			return fmt.Errorf("seed job %d: %w", j.ID, err)
		}
	}
	apps := repository.NewApplicationRepo(db)
	for _, a := range seed.Applications {
		if err := apps.Upsert(ctx, a); err != nil {
			return fmt.Errorf("seed application %d: %w", a.ID, err)
		}
	}
	return nil
}
