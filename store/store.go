// Package store persists the two values that survive between sessions:
// the tutorial-completed flag and the high score.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON paths inside the save file
const (
	keyTutorialDone = "tutorial.done"
	keyHighScore    = "score.high"
)

// Store is the persisted key-value state read at startup and written on completion events
type Store interface {
	TutorialCompleted() bool
	SetTutorialCompleted() error
	HighScore() int
	SetHighScore(score int) error
}

// FileStore keeps state in a JSON document on disk
// Reads happen once in Open, writes rewrite the whole file
type FileStore struct {
	mu           sync.Mutex
	path         string
	data         []byte
	tutorialDone bool
	highScore    int
}

// Open loads the save file at path; a missing or unreadable file yields defaults
// The returned error reports a corrupt file, the store is usable regardless
func Open(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: []byte("{}")}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return fs, errors.Wrapf(err, "read save %s", path)
	}

	if !gjson.ValidBytes(raw) {
		return fs, errors.Errorf("save %s is not valid JSON, using defaults", path)
	}

	fs.data = raw
	fs.tutorialDone = gjson.GetBytes(raw, keyTutorialDone).Bool()
	if hs := gjson.GetBytes(raw, keyHighScore); hs.Exists() && hs.Int() > 0 {
		fs.highScore = int(hs.Int())
	}
	return fs, nil
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) TutorialCompleted() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.tutorialDone
}

// SetTutorialCompleted sets the flag in memory and persists it
func (fs *FileStore) SetTutorialCompleted() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.tutorialDone = true
	return fs.setLocked(keyTutorialDone, true)
}

func (fs *FileStore) HighScore() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.highScore
}

// SetHighScore stores score unconditionally; callers compare before calling
func (fs *FileStore) SetHighScore(score int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.highScore = score
	return fs.setLocked(keyHighScore, score)
}

func (fs *FileStore) setLocked(key string, value any) error {
	out, err := sjson.SetBytes(fs.data, key, value)
	if err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	fs.data = out

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err == nil {
		out = buf.Bytes()
	}

	if dir := filepath.Dir(fs.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create save dir %s", dir)
		}
	}
	if err := os.WriteFile(fs.path, out, 0644); err != nil {
		return errors.Wrapf(err, "write save %s", fs.path)
	}
	return nil
}

// MemoryStore is a non-persistent Store
type MemoryStore struct {
	mu           sync.Mutex
	tutorialDone bool
	highScore    int
}

// NewMemoryStore creates a store seeded with the given values
func NewMemoryStore(tutorialDone bool, highScore int) *MemoryStore {
	return &MemoryStore{tutorialDone: tutorialDone, highScore: highScore}
}

func (m *MemoryStore) TutorialCompleted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tutorialDone
}

func (m *MemoryStore) SetTutorialCompleted() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tutorialDone = true
	return nil
}

func (m *MemoryStore) HighScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore
}

func (m *MemoryStore) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
	return nil
}
