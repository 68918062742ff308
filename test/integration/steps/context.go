//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state of a single scenario.
type testContext struct {
	client      *http.Client
	response    *response
	headers     map[string]string
	accessToken string
	userID      string

	// Names used in feature files resolve to the IDs created for them.
	accountIDs     map[string]uuid.UUID
	categoryIDs    map[string]uuid.UUID
	transactionIDs []uuid.UUID

	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	serverErr  error
	clock      = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       mock.NewDb(model.All()...),
		redis:    mock.NewRedis(),
		timeMock: clock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^(\d+) minutes pass$`, test.minutesPass)

	// Identity steps
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^my token has expired$`, test.myTokenHasExpired)

	// Ledger setup steps
	ctx.Given(`^an account "([^"]*)" exists$`, test.anAccountExists)
	ctx.Given(`^an account "([^"]*)" exists for "([^"]*)"$`, test.anAccountExistsFor)
	ctx.Given(`^a category "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^the following transactions exist in "([^"]*)":$`, test.theFollowingTransactionsExistIn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Cache assertion steps
	ctx.Then(`^the summary cache should hold (\d+) entries$`, test.theSummaryCacheShouldHoldEntries)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.response = nil
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.userID = ""
	t.accountIDs = make(map[string]uuid.UUID)
	t.categoryIDs = make(map[string]uuid.UUID)
	t.transactionIDs = nil
	t.timeMock.SetCurrentTime(time.Now().UTC())

	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear db: %w", err)
	}
	if err := t.redis.Clear(); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return nil
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			Auth:   config.AuthConfig{JWTSecret: testJWTSecret},
			Summary: config.SummaryConfig{
				CacheTTL:          time.Minute,
				DefaultWindowDays: 30,
			},
		}
		injector, err := dependency.NewInjector(cfg, t.db.DbConn, t.redis.Client, clock.Now)
		if err != nil {
			serverErr = err
			return
		}
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	if serverErr != nil {
		return fmt.Errorf("failed to start server: %w", serverErr)
	}

	resp, err := t.client.Get(server.URL + "/health")
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
