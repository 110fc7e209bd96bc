// Package sqlite exports the periodic table to a SQLite database
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
	_ "github.com/mattn/go-sqlite3"
)

// Writer handles writing element and isotope data to SQLite files
type Writer struct {
	db          *sql.DB
	outputPath  string
	elementStmt *sql.Stmt
	isotopeStmt *sql.Stmt
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ElementTable (
		Number INTEGER PRIMARY KEY,
		Symbol TEXT UNIQUE NOT NULL,
		Name TEXT UNIQUE NOT NULL,
		Mass DOUBLE NOT NULL,
		NominalMass INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS IsotopeTable (
		Element INTEGER REFERENCES ElementTable(Number),
		MassNumber INTEGER NOT NULL,
		Mass DOUBLE NOT NULL,
		Abundance DOUBLE NOT NULL,
		PRIMARY KEY (Element, MassNumber)
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.elementStmt, err = w.db.Prepare(`
		INSERT INTO ElementTable (Number, Symbol, Name, Mass, NominalMass)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare element statement: %w", err)
	}

	w.isotopeStmt, err = w.db.Prepare(`
		INSERT INTO IsotopeTable (Element, MassNumber, Mass, Abundance)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare isotope statement: %w", err)
	}

	return nil
}

// WriteAll writes the whole periodic table in a single transaction
func (w *Writer) WriteAll() (int, error) {
	tx, err := w.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	elementStmt := tx.Stmt(w.elementStmt)
	isotopeStmt := tx.Stmt(w.isotopeStmt)

	count := 0
	for _, ele := range elements.All() {
		if _, err := elementStmt.Exec(ele.Number, ele.Symbol, ele.Name, ele.Mass, ele.NominalMass()); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert element %s: %w", ele.Symbol, err)
		}
		for _, iso := range ele.Isotopes {
			if _, err := isotopeStmt.Exec(ele.Number, iso.MassNumber, iso.Mass, iso.Abundance); err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("failed to insert isotope %d%s: %w", iso.MassNumber, ele.Symbol, err)
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return count, nil
}

// Close closes prepared statements and the database
func (w *Writer) Close() error {
	if w.elementStmt != nil {
		w.elementStmt.Close()
	}
	if w.isotopeStmt != nil {
		w.isotopeStmt.Close()
	}
	return w.db.Close()
}
