package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"stylist/internal/catalog"
)

// FileStore хранит фильтр в памяти и синхронизирует его с JSON-файлом,
// переживая перезапуск процесса. Файл пишется атомарно: temp + rename.
type FileStore struct {
	mu    sync.Mutex
	path  string
	prefs catalog.Preferences
	set   bool
}

// NewFileStore создаёт FileStore и загружает состояние из файла.
// Повреждённый файл логируется и игнорируется: стартуем без фильтра.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("filestore path is empty")
	}

	fs := &FileStore{path: path}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *FileStore) Save(prefs catalog.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = prefs
	s.set = true
	return s.persistLocked()
}

func (s *FileStore) Get() (catalog.Preferences, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs, s.set
}

// Clear сбрасывает фильтр и удаляет файл.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = catalog.Preferences{}
	s.set = false
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove store file: %w", err)
	}
	return nil
}

func (s *FileStore) load() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		log.Printf("filestore: read file %s: %v", s.path, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var prefs catalog.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("filestore: unmarshal %s: %v", s.path, err)
		return nil
	}

	s.prefs = prefs
	s.set = true
	return nil
}

func (s *FileStore) persistLocked() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
