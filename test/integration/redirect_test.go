//go:build integration

package integration

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"affiliate-redirect/internal/affiliate/cache"
	"affiliate-redirect/internal/affiliate/database"
	httpdelivery "affiliate-redirect/internal/affiliate/delivery/http"
	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/enrichment"
	"affiliate-redirect/internal/affiliate/repository/sqlstore"
	"affiliate-redirect/internal/affiliate/tracking"
	"affiliate-redirect/internal/affiliate/usecase"
	"affiliate-redirect/internal/infra/background"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// RedirectIntegrationSuite runs the full HTTP stack against PostgreSQL and Redis containers.
type RedirectIntegrationSuite struct {
	suite.Suite
	ctx            context.Context
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	db             *database.DB
	redisClient    *redis.Client
	supervisor     *background.Supervisor
	router         http.Handler
	rateLimiter    *httpdelivery.RateLimiter
}

func TestRedirectIntegrationSuite(t *testing.T) {
	skipIfShort(t)
	suite.Run(t, new(RedirectIntegrationSuite))
}

func (s *RedirectIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("affiliate"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	redisContainer, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.redisContainer = redisContainer

	pgConnStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	redisEndpoint, err := redisContainer.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	s.db, err = database.Open(pgConnStr)
	s.Require().NoError(err)
	s.Require().Equal(database.DialectPostgres, s.db.Dialect)
	s.Require().NoError(database.RunMigrations(s.db))

	s.redisClient = redis.NewClient(&redis.Options{Addr: redisEndpoint})

	logger := zap.NewNop()
	products := cache.NewCachedProductRepository(
		sqlstore.NewProductRepository(s.db),
		cache.NewProductCache(s.redisClient, time.Minute, logger),
	)
	service := usecase.NewTrackingService(products, sqlstore.NewClickRepository(s.db), enrichment.NoopResolver{})
	s.supervisor = background.NewSupervisor(logger, background.Options{})
	handler := httpdelivery.NewHandler(service, s.supervisor, httpdelivery.Config{
		ClientIPHeader:  "CF-Connecting-IP",
		CountryHeader:   "CF-IPCountry",
		CORSAllowOrigin: "*",
	}, logger, s.db)
	s.rateLimiter = httpdelivery.NewRateLimiter(1000, "CF-Connecting-IP")
	s.router = httpdelivery.NewRouter(handler, logger, s.rateLimiter)
}

func (s *RedirectIntegrationSuite) TearDownSuite() {
	if s.supervisor != nil {
		s.supervisor.Shutdown(s.ctx)
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(s.ctx)
	}
	if s.redisContainer != nil {
		s.redisContainer.Terminate(s.ctx)
	}
}

func (s *RedirectIntegrationSuite) TearDownTest() {
	s.supervisor.Wait()
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE clicks, products RESTART IDENTITY")
	s.Require().NoError(err)
	s.redisClient.FlushAll(s.ctx)
}

func (s *RedirectIntegrationSuite) seedProduct(slug, url string, active bool) int64 {
	var id int64
	err := s.db.QueryRowContext(s.ctx,
		"INSERT INTO products (slug, title, affiliate_url, is_active) VALUES ($1, $2, $3, $4) RETURNING id",
		slug, "Seeded "+slug, url, active,
	).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *RedirectIntegrationSuite) countClicks(productID int64) int64 {
	var n int64
	s.Require().NoError(s.db.QueryRowContext(s.ctx, "SELECT COUNT(*) FROM clicks WHERE product_id = $1", productID).Scan(&n))
	return n
}

func (s *RedirectIntegrationSuite) TestRedirect_RecordsClickInPostgres() {
	id := s.seedProduct("espresso", "https://shop.example.com/espresso", true)

	req := httptest.NewRequest(http.MethodGet, "/go/espresso", nil)
	req.Header.Set("CF-Connecting-IP", "203.0.113.5")
	req.Header.Set("CF-IPCountry", "IT")
	req.Header.Set("Referer", "https://blog.example.com/article/314")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 13; SM-X200) Safari/537.36")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.supervisor.Wait()

	s.Equal(http.StatusMovedPermanently, rr.Code)
	s.Equal("https://shop.example.com/espresso", rr.Header().Get("Location"))

	var (
		articleID int64
		ipHash    string
		country   string
		device    string
	)
	err := s.db.QueryRowContext(s.ctx,
		"SELECT article_id, ip_hash, country, device FROM clicks WHERE product_id = $1", id,
	).Scan(&articleID, &ipHash, &country, &device)
	s.Require().NoError(err)
	s.Equal(int64(314), articleID)
	s.Equal(tracking.HashAddress("203.0.113.5"), ipHash)
	s.Equal("IT", country)
	s.Equal(string(domain.DeviceTablet), device)
}

func (s *RedirectIntegrationSuite) TestRedirect_ByNumericID() {
	id := s.seedProduct("grinder", "https://shop.example.com/grinder", true)

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/go/"+strconv.FormatInt(id, 10), nil))
	s.supervisor.Wait()

	s.Equal(http.StatusMovedPermanently, rr.Code)
	s.Equal(int64(1), s.countClicks(id))
}

func (s *RedirectIntegrationSuite) TestRedirect_InactiveProduct_NotFound() {
	id := s.seedProduct("retired", "https://shop.example.com/retired", false)

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/go/retired", nil))
	s.supervisor.Wait()

	s.Equal(http.StatusNotFound, rr.Code)
	s.Zero(s.countClicks(id))
}

func (s *RedirectIntegrationSuite) TestRedirect_PopulatesProductCache() {
	s.seedProduct("kettle", "https://shop.example.com/kettle", true)

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/go/kettle", nil))
	s.supervisor.Wait()
	s.Equal(http.StatusMovedPermanently, rr.Code)

	exists, err := s.redisClient.Exists(s.ctx, "product:kettle").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}

func (s *RedirectIntegrationSuite) TestTrackClick_ReplayStoresTwoRows() {
	id := s.seedProduct("toaster", "https://shop.example.com/toaster", true)
	body := `{"productId": ` + strconv.FormatInt(id, 10) + `, "timestamp": 1700000000000}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/track-click", bytes.NewBufferString(body))
		req.Header.Set("CF-Connecting-IP", "198.51.100.8")
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)
		s.Equal(http.StatusOK, rr.Code)
	}

	s.Equal(int64(2), s.countClicks(id))
}

func (s *RedirectIntegrationSuite) TestStats_AggregatesInPostgres() {
	id := s.seedProduct("mixer", "https://shop.example.com/mixer", true)
	for _, ua := range []string{"Mozilla/5.0 (iPhone) Mobile", "Mozilla/5.0 (Windows NT 10.0)", "Mozilla/5.0 (iPhone) Mobile"} {
		req := httptest.NewRequest(http.MethodGet, "/go/mixer", nil)
		req.Header.Set("User-Agent", ua)
		s.router.ServeHTTP(httptest.NewRecorder(), req)
	}
	s.supervisor.Wait()

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats/"+strconv.FormatInt(id, 10), nil))

	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`{
		"product_id": `+strconv.FormatInt(id, 10)+`,
		"title": "Seeded mixer",
		"total_clicks": 3,
		"devices": [
			{"value": "mobile", "count": 2, "percentage": "66.7%"},
			{"value": "desktop", "count": 1, "percentage": "33.3%"}
		],
		"countries": [{"value": "XX", "count": 3, "percentage": "100.0%"}]
	}`, rr.Body.String())
}

func (s *RedirectIntegrationSuite) TestReadyz_PingsPostgres() {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	s.Equal(http.StatusOK, rr.Code)
}
