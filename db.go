package pcxconv

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/pcxconv/palette"
	_ "github.com/mattn/go-sqlite3"
)

// PaletteDB stores named palettes in a SQLite database
type PaletteDB struct {
	db *sql.DB
}

// NewPaletteDB opens or creates the database in file
func NewPaletteDB(file string) (*PaletteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS palette (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS name (name TEXT PRIMARY KEY NOT NULL, palette_id INTEGER NOT NULL, FOREIGN KEY(palette_id) REFERENCES palette(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &PaletteDB{
		db: db,
	}, nil
}

// Close closes the database
func (db *PaletteDB) Close() error {
	return db.db.Close()
}

// ImportPalette reads the raw palette in file and stores it as name,
// replacing any palette previously stored under that name
func (db *PaletteDB) ImportPalette(name, file string) error {
	p, err := ReadPalette(file)
	if err != nil {
		return err
	}

	return db.AddPalette(name, p)
}

// AddPalette stores p as name, replacing any palette previously stored under
// that name. Identical palettes are only stored once.
func (db *PaletteDB) AddPalette(name string, p *palette.Palette) error {
	id, err := db.addPalette(p)
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO name (name, palette_id) VALUES (?, ?)", name, id); err != nil {
		return err
	}
	return nil
}

func (db *PaletteDB) addPalette(p *palette.Palette) (int64, error) {
	b, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	var id int64
	switch err := db.db.QueryRow("SELECT id FROM palette WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO palette (sha1, data) VALUES (?, ?)", sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// FindPalette returns the palette stored as name, or nil if there isn't one
func (db *PaletteDB) FindPalette(name string) (*palette.Palette, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT p.data FROM name AS n JOIN palette AS p ON n.palette_id = p.id WHERE n.name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return palette.Load(b)
	default:
		return nil, err
	}
}

// Palettes returns the names of all stored palettes in order
func (db *PaletteDB) Palettes() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM name ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
