package main

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
)

// Seeder populates one domain's data inside the transaction it is given.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) (int, error)
}

var seeders = map[string]Seeder{}

// registerSeeder is called from init in each seeder file.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// runSeeders executes list in order within one transaction. Any failure
// rolls back everything written so far.
func runSeeders(ctx context.Context, db *sql.DB, list ...Seeder) (map[string]int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	counts := make(map[string]int, len(list))
	for _, s := range list {
		n, err := s.Seed(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		counts[s.Name()] = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return counts, nil
}
