package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campustools/gradepoint/internal/app/models"
	"github.com/campustools/gradepoint/internal/pkg/apperrors"
)

// baseTime is a fixed reference point so all test timings are deterministic.
var baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// tick returns baseTime advanced by n minutes.
func tick(n int) time.Time {
	return baseTime.Add(time.Duration(n) * time.Minute)
}

func newRepo(ttl time.Duration, now time.Time) *TableRepository {
	r := NewTableRepository(ttl)
	r.now = func() time.Time { return now }
	return r
}

func table(id string) *models.CourseTable {
	return &models.CourseTable{ID: id, CreatedAt: baseTime, UpdatedAt: baseTime}
}

func TestTableRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	r := newRepo(30*time.Minute, baseTime)

	r.Save(ctx, table("t1"))

	got, err := r.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "t1" {
		t.Errorf("ID = %q, want t1", got.ID)
	}
}

func TestTableRepository_GetUnknown(t *testing.T) {
	r := newRepo(30*time.Minute, baseTime)

	_, err := r.Get(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrTableNotFound) {
		t.Fatalf("Get unknown: err = %v, want ErrTableNotFound", err)
	}
}

func TestTableRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := newRepo(30*time.Minute, baseTime)
	r.Save(ctx, table("t1"))

	r.Delete(ctx, "t1")
	if _, err := r.Get(ctx, "t1"); !errors.Is(err, apperrors.ErrTableNotFound) {
		t.Errorf("Get after Delete: err = %v, want ErrTableNotFound", err)
	}

	// Deleting an unknown id is not an error.
	r.Delete(ctx, "missing")
}

func TestTableRepository_Evict(t *testing.T) {
	ctx := context.Background()
	r := newRepo(30*time.Minute, baseTime)
	r.Save(ctx, table("old"))
	r.Save(ctx, table("fresh"))

	// Touch "fresh" 25 minutes in, so only "old" crosses the TTL at +40.
	r.now = func() time.Time { return tick(25) }
	if _, err := r.Get(ctx, "fresh"); err != nil {
		t.Fatalf("Get fresh: %v", err)
	}

	removed := r.Evict(tick(40))
	if removed != 1 {
		t.Fatalf("Evict removed %d, want 1", removed)
	}
	if _, err := r.Get(ctx, "old"); !errors.Is(err, apperrors.ErrTableNotFound) {
		t.Errorf("old table survived eviction")
	}
	if _, err := r.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh table was evicted: %v", err)
	}
}

func TestTableRepository_GetRefreshesDeadline(t *testing.T) {
	ctx := context.Background()
	r := newRepo(30*time.Minute, baseTime)
	r.Save(ctx, table("t1"))

	// Reads keep the table alive past the original deadline.
	for _, n := range []int{20, 40, 60} {
		r.now = func() time.Time { return tick(n) }
		if _, err := r.Get(ctx, "t1"); err != nil {
			t.Fatalf("Get at +%dm: %v", n, err)
		}
	}

	if removed := r.Evict(tick(80)); removed != 0 {
		t.Errorf("Evict removed %d, want 0", removed)
	}
}

func TestTableRepository_Count(t *testing.T) {
	ctx := context.Background()
	r := newRepo(30*time.Minute, baseTime)

	if r.Count() != 0 {
		t.Fatalf("Count = %d, want 0", r.Count())
	}
	r.Save(ctx, table("t1"))
	r.Save(ctx, table("t2"))
	r.Save(ctx, table("t1")) // replace, not add
	if r.Count() != 2 {
		t.Errorf("Count = %d, want 2", r.Count())
	}
}
