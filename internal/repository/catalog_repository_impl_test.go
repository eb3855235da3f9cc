package repository

import (
	"context"
	"io"
	"net/url"
	"sync"
	"testing"
	"time"

	"hospital-directory/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]upstream.Result
	calls     []string
	ttls      map[string]time.Duration
}

func newFakeFetcher(responses map[string]upstream.Result) *fakeFetcher {
	return &fakeFetcher{responses: responses, ttls: map[string]time.Duration{}}
}

func (f *fakeFetcher) Get(ctx context.Context, path string, query url.Values) upstream.Result {
	return f.GetWithTTL(ctx, path, query, 0)
}

func (f *fakeFetcher) GetWithTTL(_ context.Context, path string, query url.Values, ttl time.Duration) upstream.Result {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	f.ttls[key] = ttl
	if res, ok := f.responses[key]; ok {
		return res
	}
	return upstream.Result{Success: false, Message: "HTTP error 404", Status: 404}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ok(data any) upstream.Result {
	return upstream.Result{Data: data, Success: true, Status: 200}
}

func TestFindAgendasByProvider_PrimaryParam(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/agnd-agenda?codigo_prestador=P1": ok(map[string]any{"data": []any{
			map[string]any{"codigo_prestador": "P1", "codigo_dia": "1"},
		}}),
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindAgendasByProvider(context.Background(), "P1")

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "P1", res.Data[0].ProviderCode)
	assert.Equal(t, []string{"/api/agnd-agenda?codigo_prestador=P1"}, fetcher.calls)
}

func TestFindAgendasByProvider_RetriesAlternateParamWhenEmpty(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/agnd-agenda?codigo_prestador=P1": ok([]any{}),
		"/api/agnd-agenda?cd_prestador=P1": ok([]any{
			map[string]any{"cd_prestador": "P1"},
		}),
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindAgendasByProvider(context.Background(), "P1")

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, []string{
		"/api/agnd-agenda?codigo_prestador=P1",
		"/api/agnd-agenda?cd_prestador=P1",
	}, fetcher.calls)
}

func TestFindAgendasByProvider_KeepsEmptyPrimaryWhenAlternateFails(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/agnd-agenda?codigo_prestador=P1": ok([]any{}),
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindAgendasByProvider(context.Background(), "P1")

	assert.True(t, res.Success)
	assert.Empty(t, res.Message)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Len(t, fetcher.calls, 2)
}

func TestFindAgendasByProvider_BothFail(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/agnd-agenda?codigo_prestador=P1": {Success: false, Message: "HTTP error 500"},
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindAgendasByProvider(context.Background(), "P1")

	assert.False(t, res.Success)
	assert.Equal(t, "HTTP error 404", res.Message)
}

func TestFindBuildings_FailureCarriesMessage(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/catalogos/edificios": {Success: false, Message: "HTTP error 500", Status: 500},
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindBuildings(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "HTTP error 500", res.Message)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestFindFloorsByBuilding(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/catalogos/edificios/2/pisos": ok([]any{"1", "2"}),
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindFloorsByBuilding(context.Background(), "2")

	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "1", res.Data[0].Code)
}

func TestFindDoctorByID(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/medicos/item/42": ok(map[string]any{"data": map[string]any{"codigo": "42", "nombres": "Ana Pérez"}}),
		"/api/medicos/item/43": ok(map[string]any{"data": []any{}}),
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	found := repo.FindDoctorByID(context.Background(), "42")
	require.True(t, found.Success)
	require.NotNil(t, found.Data)
	assert.Equal(t, "Ana Pérez", found.Data.Name)

	missing := repo.FindDoctorByID(context.Background(), "43")
	assert.True(t, missing.Success)
	assert.Nil(t, missing.Data)

	failed := repo.FindDoctorByID(context.Background(), "44")
	assert.False(t, failed.Success)
}

func TestFindSpecialties_FallsBackToDoctorSpecialties(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/especialidades/agenda":  {Success: false, Message: "HTTP error 502", Status: 502},
		"/api/medicos/especialidades": ok([]any{"Cardiología", "Pediatría"}),
	})
	repo := NewCatalogRepository(fetcher, 90*time.Second, quietLogger())

	res := repo.FindSpecialties(context.Background())

	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Cardiología", res.Data[0].Description)
	assert.Equal(t, 90*time.Second, fetcher.ttls["/api/especialidades/agenda"])
}

func TestFindSpecialties_BothFail(t *testing.T) {
	fetcher := newFakeFetcher(map[string]upstream.Result{
		"/api/especialidades/agenda": {Success: false, Message: "Request timeout"},
	})
	repo := NewCatalogRepository(fetcher, time.Minute, quietLogger())

	res := repo.FindSpecialties(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "Request timeout", res.Message)
}
