//go:build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// One-off maintenance tool: deals created before stage transitions started
// assigning probabilities carry NULL. This backfills each such deal with its
// current stage's default probability.
//
// Usage: go run scripts/backfill_probabilities.go [-db path] [-dry-run]

func main() {
	var dbPath string
	var dryRun bool
	flag.StringVar(&dbPath, "db", "", "database path (defaults to ~/.dealboard/dealboard.db)")
	flag.BoolVar(&dryRun, "dry-run", false, "report without writing")
	flag.Parse()

	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve home: %v\n", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(home, ".dealboard", "dealboard.db")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT d.id, d.stage, s.probability
		FROM deals d
		JOIN pipeline_stages s ON s.pipeline_id = d.pipeline_id AND s.stage_id = d.stage
		WHERE d.probability IS NULL`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	type fix struct {
		id          string
		stage       string
		probability int
	}
	var fixes []fix
	for rows.Next() {
		var f fix
		if err := rows.Scan(&f.id, &f.stage, &f.probability); err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			os.Exit(1)
		}
		fixes = append(fixes, f)
	}

	if len(fixes) == 0 {
		fmt.Println("Nothing to backfill.")
		return
	}

	for _, f := range fixes {
		fmt.Printf("%s: stage %s -> probability %d\n", f.id, f.stage, f.probability)
		if dryRun {
			continue
		}
		if _, err := db.Exec("UPDATE deals SET probability = ? WHERE id = ?", f.probability, f.id); err != nil {
			fmt.Fprintf(os.Stderr, "update %s failed: %v\n", f.id, err)
			os.Exit(1)
		}
	}

	if dryRun {
		fmt.Printf("Dry run: %d deal(s) would be backfilled.\n", len(fixes))
	} else {
		fmt.Printf("Backfilled %d deal(s).\n", len(fixes))
	}
}
