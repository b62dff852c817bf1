package activity

import (
	"fmt"
	"os"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/rs/zerolog/log"
)

// Reporter hands the assembler a windowed activity snapshot. Limits are
// day spans: nil uses the source's defaults, zero is unlimited.
type Reporter interface {
	GetData(limhist, limfcst *int) (*Snapshot, error)
}

// FileSource reads snapshots from a JSON file maintained by the host.
// Decoded snapshots are cached per path and mtime, so repeated renders
// between host writes skip the parse.
type FileSource struct {
	path        string
	defaultHist int
	defaultFcst int
	cache       *otter.Cache[string, *Snapshot]
}

// NewFileSource creates a source for the given snapshot file with the
// configured default history and forecast limits.
func NewFileSource(path string, defaultHist, defaultFcst int) *FileSource {
	return &FileSource{
		path:        path,
		defaultHist: defaultHist,
		defaultFcst: defaultFcst,
		cache: otter.Must(&otter.Options[string, *Snapshot]{
			MaximumSize:      16,
			InitialCapacity:  4,
			ExpiryCalculator: otter.ExpiryWriting[string, *Snapshot](15 * time.Minute),
		}),
	}
}

// GetData loads the snapshot and windows a copy of it. The cached parse
// is never mutated, so concurrent renders each get their own view.
func (f *FileSource) GetData(limhist, limfcst *int) (*Snapshot, error) {
	snap, err := f.load()
	if err != nil {
		return nil, err
	}
	out := snap.Clone()
	out.Window(limhist, limfcst, f.defaultHist, f.defaultFcst)
	return out, nil
}

func (f *FileSource) load() (*Snapshot, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, f.path)
		}
		return nil, fmt.Errorf("failed to stat snapshot: %w", err)
	}

	key := fmt.Sprintf("%s|%d", f.path, info.ModTime().UnixNano())
	if cached, ok := f.cache.GetIfPresent(key); ok {
		return cached, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", f.path, err)
	}

	f.cache.Set(key, snap)
	log.Debug().Str("path", f.path).Int("days", len(snap.Activity)).Msg("Snapshot loaded")
	return snap, nil
}
