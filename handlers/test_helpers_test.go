package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services"
	"wrist_surgery_app_go/services/geo"
	"wrist_surgery_app_go/services/notify"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubGeocoder struct {
	addr  geo.Address
	err   error
	calls int
}

func (s *stubGeocoder) Reverse(ctx context.Context, lat, lng float64) (geo.Address, error) {
	s.calls++
	return s.addr, s.err
}

type stubLocator struct {
	loc   geo.IPLocation
	err   error
	calls int
	ips   []string
}

func (s *stubLocator) Locate(ctx context.Context, ip string) (geo.IPLocation, error) {
	s.calls++
	s.ips = append(s.ips, ip)
	return s.loc, s.err
}

type stubNotifier struct {
	mu   sync.Mutex
	reqs []models.AppointmentRequest
	fail bool
	// hold blocks the first Notify until closed; held is closed when it starts
	hold chan struct{}
	held chan struct{}
}

func (s *stubNotifier) Channel() string { return "stub" }

func (s *stubNotifier) Notify(ctx context.Context, req models.AppointmentRequest) (notify.Ack, error) {
	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	first := len(s.reqs) == 1
	s.mu.Unlock()

	if first && s.hold != nil {
		close(s.held)
		<-s.hold
	}
	if s.fail {
		return notify.Ack{Status: 500}, errors.New("provider down")
	}
	return notify.Ack{Status: 200, Text: "OK"}, nil
}

type testEnv struct {
	handler  *Handler
	cfg      *config.Config
	db       *gorm.DB
	geocoder *stubGeocoder
	locator  *stubLocator
	notifier *stubNotifier
}

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.Lead{}))
	return testDB
}

func setupTestEnv(t *testing.T) *testEnv {
	cfg := &config.Config{
		AppURL:             "https://wristsurgery.in",
		PageName:           "Wrist Surgery",
		DomainName:         "wristsurgery.in",
		DeliveryTimeout:    time.Second,
		GeolocationTimeout: 20 * time.Second,
	}
	env := &testEnv{
		cfg:      cfg,
		db:       setupTestDB(t),
		geocoder: &stubGeocoder{},
		locator:  &stubLocator{},
		notifier: &stubNotifier{},
	}

	resolver := geo.NewResolver(env.geocoder, env.locator, models.DefaultPositionOptions(), nil, zap.NewNop())
	workflow := services.NewAppointmentWorkflow(cfg, env.notifier, env.db, nil, nil, zap.NewNop())
	env.handler = New(cfg, resolver, workflow, env.db, zap.NewNop())
	return env
}

// setupEcho returns an echo context with the config set, like the server does
func setupEcho(method, target, body string, cfg *config.Config) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)
	return c, rec
}
