package setup

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LavaJover/shvark-catalog-service/internal/config"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/repository"
	catalogredis "github.com/LavaJover/shvark-catalog-service/internal/infrastructure/redis"
	"github.com/LavaJover/shvark-catalog-service/internal/testutil"
	bankdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/bank"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDependencies(t *testing.T, metricsEnabled bool) *Dependencies {
	db := testutil.NewTestDB(t)
	deps := &Dependencies{
		Config: &config.CatalogConfig{
			HTTPServer: config.HTTPServer{CORSOrigins: []string{"http://localhost:5173"}},
			Metrics:    config.Metrics{Enabled: metricsEnabled, Path: "/metrics"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:     db,
		Repositories: &Repositories{
			BankRepo:    repository.NewDefaultBankRepository(db),
			DepositRepo: repository.NewDefaultDepositRepository(db),
		},
	}
	if metricsEnabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Metrics = metrics.NewCatalogMetrics(deps.Registry)
	}

	publisher, err := initPublisher(deps)
	require.NoError(t, err)
	deps.Publisher = publisher

	cache, err := initBankCache(deps)
	require.NoError(t, err)
	deps.BankCache = cache

	return deps
}

func TestDisabledBrokersFallBackToLocal(t *testing.T) {
	deps := newTestDependencies(t, true)

	assert.IsType(t, catalogredis.NoopBankCache{}, deps.BankCache)

	ucs := InitializeUseCases(deps)
	bank, err := ucs.BankUsecase.CreateBank(context.Background(), &bankdto.CreateBankInput{Name: "DSK"})
	require.NoError(t, err)

	var rows []logger.CatalogEventLog
	require.NoError(t, deps.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "bank.created", rows[0].EventType)
	assert.Equal(t, bank.ID, rows[0].EntityID)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(deps.Metrics.CatalogMutationsTotal.WithLabelValues("bank", "created")))
}

func TestInitializeRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, metricsEnabled := range []bool{true, false} {
		deps := newTestDependencies(t, metricsEnabled)
		engine, err := InitializeRouter(deps, InitializeUseCases(deps))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if metricsEnabled {
			assert.Equal(t, http.StatusOK, w.Code)
		} else {
			assert.Equal(t, http.StatusNotFound, w.Code)
		}
	}
}

func TestPrepareDatabaseClosesOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)

	// the postgres migrate driver cannot attach to sqlite
	_, err := prepareDatabase(db, config.CatalogDB{})
	require.ErrorContains(t, err, "migrations")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}

func TestPrepareDatabaseSeeds(t *testing.T) {
	db := testutil.NewTestDB(t)

	prepared, err := prepareDatabase(db, config.CatalogDB{AutoMigrate: true, Seed: true})
	require.NoError(t, err)

	banks, err := repository.NewDefaultBankRepository(prepared).ListBanks(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, banks)
}
