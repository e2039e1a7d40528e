package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	sessionFilePerm = 0o600
	sessionDirPerm  = 0o700
)

// FileStorage keeps items in a single JSON object file.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (fs *FileStorage) Path() string {
	return fs.path
}

func (fs *FileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items, err := fs.read()
	if err != nil {
		return "", false, err
	}
	value, found := items[key]
	return value, found, nil
}

func (fs *FileStorage) SetItem(ctx context.Context, key, value string) error {
	return fs.SetItems(ctx, map[string]string{key: value})
}

func (fs *FileStorage) SetItems(_ context.Context, newItems map[string]string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items, err := fs.readForWrite()
	if err != nil {
		return err
	}
	for k, v := range newItems {
		items[k] = v
	}
	return fs.write(items)
}

func (fs *FileStorage) RemoveItem(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	items, err := fs.read()
	if errors.Is(err, ErrCorruptStorage) {
		log.Warnf("session: replacing corrupt session file [%s]", fs.path)
		return fs.write(map[string]string{})
	}
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return fs.write(items)
}

func (fs *FileStorage) read() (map[string]string, error) {
	items := make(map[string]string)

	exists, err := pkg.PathExists(fs.path, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return items, nil
	}

	content, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(content) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("%w: parse session file [%s]: %s", ErrCorruptStorage, fs.path, err)
	}
	return items, nil
}

// readForWrite treats a corrupt file as empty, the following write replaces it.
func (fs *FileStorage) readForWrite() (map[string]string, error) {
	items, err := fs.read()
	if errors.Is(err, ErrCorruptStorage) {
		log.Warnf("session: replacing corrupt session file [%s]", fs.path)
		return make(map[string]string), nil
	}
	return items, err
}

// write replaces the file atomically: temp file in the same dir, then rename.
func (fs *FileStorage) write(items map[string]string) error {
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session items: %w", err)
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, sessionDirPerm); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(sessionFilePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tmpName, fs.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
