package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"

	"github.com/google/uuid"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	m.hits++
	return true, nil
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memoryCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = []byte(value)
	return true, nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func statsFixture(app application.Application) *Stats {
	repo := &fakeApplicationRepo{app: app}
	uc := NewStatsUsecase(repo, nil, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestStatsSummary_FromRepository(t *testing.T) {
	companyID := uuid.New()
	uc := statsFixture(application.Application{
		ID:        uuid.New(),
		CompanyID: companyID,
		Status:    application.StatusPending,
		AppliedAt: testNow.Add(-time.Hour),
	})

	sum, err := uc.Summary(context.Background(), actor.Actor{ID: companyID, Role: actor.RoleCompany}, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 1 || sum.StatusCounts[application.StatusPending] != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.ViewedPct != 0 || sum.RespondedPct != 0 {
		t.Fatalf("expected zero engagement, got %+v", sum)
	}
	if sum.CurrentPeriod != 1 || sum.GrowthPct != 0 {
		t.Fatalf("unexpected growth figures: %+v", sum)
	}
}

func TestStatsSummary_UnknownRole(t *testing.T) {
	uc := statsFixture(application.Application{})
	if _, err := uc.Summary(context.Background(), actor.Actor{ID: uuid.New()}, 0); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestStatsSummary_SecondCallServedFromCache(t *testing.T) {
	uc := statsFixture(application.Application{
		ID:        uuid.New(),
		Status:    application.StatusPending,
		AppliedAt: testNow.Add(-time.Hour),
	})
	cache := newMemoryCache()
	uc.cache = cache

	by := actor.Actor{ID: uuid.New(), Role: actor.RoleCompany}

	if _, err := uc.Summary(context.Background(), by, time.Hour); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	sum, err := uc.Summary(context.Background(), by, time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
	if sum.StatusCounts == nil {
		t.Fatalf("cached summary lost its buckets")
	}
}
