package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campustools/gradepoint/internal/app/models"
	"github.com/campustools/gradepoint/internal/pkg/apperrors"
)

// entry is a stored table together with the time it was last touched.
type entry struct {
	table     *models.CourseTable
	touchedAt time.Time
}

// TableRepository is a thread-safe in-memory store of course tables, keyed
// by table ID. Tables are transient page state: an eviction loop (Run)
// removes tables that have not been touched within the configured TTL,
// the server-side analogue of a visitor navigating away.
type TableRepository struct {
	mu   sync.RWMutex
	data map[string]*entry
	ttl  time.Duration
	now  func() time.Time // injectable for deterministic tests
}

// NewTableRepository creates a TableRepository with the given retention TTL.
func NewTableRepository(ttl time.Duration) *TableRepository {
	return &TableRepository{
		data: make(map[string]*entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Save stores or replaces the table under table.ID and refreshes its
// eviction deadline. Callers must not modify table after calling Save.
func (r *TableRepository) Save(_ context.Context, table *models.CourseTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[table.ID] = &entry{
		table:     table,
		touchedAt: r.now(),
	}
}

// Get returns the table with the given ID and refreshes its eviction
// deadline. Returns apperrors.ErrTableNotFound if the table does not exist
// or has been evicted.
func (r *TableRepository) Get(_ context.Context, id string) (*models.CourseTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.data[id]
	if !ok {
		return nil, apperrors.ErrTableNotFound
	}
	e.touchedAt = r.now()
	return e.table, nil
}

// Delete removes the table with the given ID. Deleting an unknown ID is
// not an error.
func (r *TableRepository) Delete(_ context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
}

// Count returns the number of tables currently held, including ones past
// their TTL that have not been evicted yet.
func (r *TableRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Evict removes tables not touched since now minus TTL and returns how
// many were removed.
func (r *TableRepository) Evict(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := now.Add(-r.ttl)
	removed := 0
	for id, e := range r.data {
		if !e.touchedAt.After(cutoff) {
			delete(r.data, id)
			removed++
		}
	}
	return removed
}

// Run starts the background TTL eviction loop. It ticks at half the TTL
// interval (minimum 1 second) so abandoned tables are released promptly.
// Run blocks until ctx is cancelled.
func (r *TableRepository) Run(ctx context.Context, lgr zerolog.Logger) {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := r.Evict(now); removed > 0 {
				lgr.Debug().Int("removed", removed).Msg("Evicted expired course tables")
			}
		}
	}
}

// Repositories holds all the repository instances
type Repositories struct {
	TableRepository *TableRepository
}

// NewRepositories initializes all repositories
func NewRepositories(tableTTL time.Duration) *Repositories {
	return &Repositories{
		TableRepository: NewTableRepository(tableTTL),
	}
}
