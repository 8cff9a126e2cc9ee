package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// StorageKey is the key the persisted blob is stored under.
const StorageKey = "curio-app-storage"

// ErrNoRepo is returned by Save when the Holder has no Repo.
var ErrNoRepo = errors.New("no state repository configured")

// Repo is a keyed blob store.
type Repo interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Persisted is the subset of State that survives restarts. The logs are
// session-scoped and always start empty.
type Persisted struct {
	CurrentUser           *catalog.User           `json:"currentUser"`
	CurrentStudentProfile *catalog.StudentProfile `json:"currentStudentProfile"`
	PerformanceState      PerformanceState        `json:"performanceState"`
}

// Persisted extracts the durable part of the current state.
func (h *Holder) Persisted() Persisted {
	s := h.Snapshot()
	return Persisted{
		CurrentUser:           s.CurrentUser,
		CurrentStudentProfile: s.CurrentStudentProfile,
		PerformanceState:      s.PerformanceState,
	}
}

// Save writes the persisted blob through the configured Repo.
func (h *Holder) Save(ctx context.Context) error {
	if h.repo == nil {
		return ErrNoRepo
	}
	data, err := json.Marshal(h.Persisted())
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := h.repo.Put(ctx, StorageKey, data); err != nil {
		h.log.Warn("saving app state failed", "key", StorageKey, "error", err)
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Load restores a Holder from repo. A missing blob yields a fresh Holder.
// An unrecognised performance state falls back to mixed.
func Load(ctx context.Context, repo Repo, opts ...Option) (*Holder, error) {
	h := New(append([]Option{WithRepo(repo)}, opts...)...)

	data, ok, err := repo.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if !ok {
		return h, nil
	}

	var p Persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}

	h.SetCurrentUser(p.CurrentUser)
	h.SetStudentProfile(p.CurrentStudentProfile)
	if err := h.SetPerformanceState(p.PerformanceState); err != nil {
		h.log.Warn("ignoring stored performance state", "value", p.PerformanceState)
	}
	return h, nil
}
