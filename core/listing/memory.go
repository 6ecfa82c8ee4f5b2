package listing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory FileSystem.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
	fails map[string]error
}

// NewMemory builds a tree from a path -> content map. Parent directories are implied.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
		fails: make(map[string]error),
	}
	for p, content := range files {
		m.Write(p, content)
	}
	return m
}

// Write creates or replaces a file.
func (m *Memory) Write(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = []byte(content)
	m.addParents(p)
}

// Mkdir creates an empty directory.
func (m *Memory) Mkdir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[p] = struct{}{}
	m.addParents(p)
}

// Remove deletes a file or a directory with everything below it.
func (m *Memory) Remove(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := p + "/"
	for f := range m.files {
		if f == p || strings.HasPrefix(f, prefix) {
			delete(m.files, f)
		}
	}
	for d := range m.dirs {
		if d == p || strings.HasPrefix(d, prefix) {
			delete(m.dirs, d)
		}
	}
}

// Fail makes every List of dir return err. A nil err clears the failure.
func (m *Memory) Fail(dir string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fails, dir)
		return
	}
	m.fails[dir] = err
}

func (m *Memory) addParents(p string) {
	for d := path.Dir(p); d != "." && d != "/"; d = path.Dir(d) {
		m.dirs[d] = struct{}{}
	}
}

// List implements FileSystem. Entries are returned sorted by path.
func (m *Memory) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.fails[dir]; ok {
		return nil, err
	}
	if _, ok := m.dirs[dir]; !ok && dir != "." {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, fs.ErrNotExist)
	}

	var entries []Entry
	for d := range m.dirs {
		if path.Dir(d) == dir {
			entries = append(entries, Entry{Path: d, IsDir: true})
		}
	}
	for f := range m.files {
		if path.Dir(f) == dir {
			entries = append(entries, Entry{Path: f})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// Open implements FileSystem.
func (m *Memory) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[p]
	if !ok {
		return nil, fmt.Errorf("failed to open %s: %w", p, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
