package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/trajview/internal/binarray"
)

const (
	DataExt = ".bin"
	MetaExt = ".json"

	inspectLimit = 8
)

// ErrNoResults matches binarray.ErrNotFound so callers can treat an empty
// results directory like a missing file.
var ErrNoResults = fmt.Errorf("storage: no %s files: %w", DataExt, binarray.ErrNotFound)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string {
	return s.baseDir
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a generated run. It is written next to the data
// file so the binary layout stays untouched.
type RunMetadata struct {
	Name        string    `json:"name"`
	Producer    string    `json:"producer"`
	Integrator  string    `json:"integrator"`
	Timestamp   time.Time `json:"timestamp"`
	Dt          float64   `json:"dt"`
	Steps       int       `json:"steps"`
	Drag        float64   `json:"drag"`
	V0X         float64   `json:"v0x"`
	V0Y         float64   `json:"v0y"`
	Gravity     float64   `json:"gravity"`
	Format      string    `json:"format"`
	Shape       []int     `json:"shape"`
	EnergyDrift float64   `json:"energy_drift"`
}

// Entry is one discovered data file with its decoded header. Err is set
// when the header could not be read; other entries are still reported.
type Entry struct {
	Path   string
	Name   string
	Header binarray.Header
	Meta   *RunMetadata
	Err    error
}

// Discover returns the data files in the results directory, sorted by name.
// A missing or empty directory yields ErrNoResults.
func (s *Store) Discover() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoResults, s.baseDir)
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != DataExt {
			continue
		}
		paths = append(paths, filepath.Join(s.baseDir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoResults, s.baseDir)
	}

	sort.Strings(paths)
	return paths, nil
}

// First is the default playback target: the first discovered data file.
func (s *Store) First() (string, error) {
	paths, err := s.Discover()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// Inspect reads every discovered header concurrently. Per-file failures are
// reported on the entry; only discovery and cancellation fail the call.
func (s *Store) Inspect(ctx context.Context) ([]Entry, error) {
	paths, err := s.Discover()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(inspectLimit)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(path), DataExt)
			e := Entry{Path: path, Name: name}
			e.Header, e.Err = binarray.ReadHeader(path)
			if meta, err := s.Load(name); err == nil {
				e.Meta = meta
			}
			entries[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save writes <name>.bin in the given layout plus <name>.json and returns
// the data path.
func (s *Store) Save(name string, arr *binarray.Array, meta RunMetadata, format binarray.Format) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid run name %q", name)
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	dataPath := filepath.Join(s.baseDir, name+DataExt)
	if err := binarray.Write(dataPath, arr, format); err != nil {
		os.Remove(dataPath)
		return "", fmt.Errorf("writing %s: %w", dataPath, err)
	}

	meta.Name = name
	meta.Format = format.String()
	meta.Shape = arr.Shape.Clone()
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaPath := filepath.Join(s.baseDir, name+MetaExt)
	if err := writeMeta(metaPath, meta); err != nil {
		os.Remove(metaPath)
		os.Remove(dataPath)
		return "", fmt.Errorf("writing %s: %w", metaPath, err)
	}

	return dataPath, nil
}

func writeMeta(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns the metadata of every saved run, sorted by name. Data files
// without metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != MetaExt {
			continue
		}

		meta, err := s.Load(strings.TrimSuffix(entry.Name(), MetaExt))
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Name < runs[j].Name })
	return runs, nil
}

func (s *Store) Load(name string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name+MetaExt))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
