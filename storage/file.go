package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// record is the on-disk layout of a File store.
type record struct {
	Seed      uint16 `json:"seed"`
	HighScore uint16 `json:"high_score"`
	Name      string `json:"name"`
}

// File is a Store kept in a JSON file, for hosts without an EEPROM. A
// missing file reads like a blank EEPROM.
type File struct {
	path string
	log  *slog.Logger
	rec  record
}

// NewFile opens the store at path, loading it if it exists. log may be nil.
func NewFile(path string, log *slog.Logger) (*File, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f := &File{
		path: path,
		log:  log,
		rec:  record{Seed: 0xFFFF, HighScore: NoRecord},
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &f.rec); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", path, err)
	}
	log.Info("loaded store from file", "path", path)
	return f, nil
}

// LoadSeed returns the stored random seed.
func (f *File) LoadSeed() (uint16, error) { return f.rec.Seed, nil }

// StoreSeed saves the random seed.
func (f *File) StoreSeed(seed uint16) error {
	f.rec.Seed = seed
	return f.save()
}

// LoadHighScore returns the high score, NoRecord if none was saved.
func (f *File) LoadHighScore() (uint16, error) { return f.rec.HighScore, nil }

// StoreHighScore saves the high score.
func (f *File) StoreHighScore(score uint16) error {
	f.rec.HighScore = score
	return f.save()
}

// LoadName returns the saved name, padded with blank bytes.
func (f *File) LoadName() (Name, error) {
	n := BlankName
	copy(n[:], f.rec.Name)
	return n, nil
}

// StoreName saves the name.
func (f *File) StoreName(name Name) error {
	f.rec.Name = name.String()
	return f.save()
}

// save writes the record atomically using a temp file + rename.
func (f *File) save() error {
	data, err := json.MarshalIndent(&f.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal json: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: create directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: rename temp file: %w", err)
	}
	f.log.Debug("saved store", "path", f.path)
	return nil
}
