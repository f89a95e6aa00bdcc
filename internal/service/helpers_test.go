package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/models"
)

// Monday morning.
var fixedNow = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	storages *store.Storages
	services *Services
	session  *Session
	clock    *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := &testClock{now: fixedNow}
	storages := store.NewStoragesOver(kv.NewMemory(), clk.Now, false, logger.Nop())
	services, err := NewServicesWithClock(
		storages,
		config.App{Version: "test", Language: config.LanguageEnglish},
		models.AppBuildInfo{},
		clk.Now,
		logger.Nop(),
	)
	require.NoError(t, err)

	return &fixture{
		storages: storages,
		services: services,
		session:  services.Session,
		clock:    clk,
	}
}

func (f *fixture) register(t *testing.T, email, password string) models.User {
	t.Helper()

	user, err := f.services.AuthService.Register(context.Background(), models.User{
		Email:    email,
		Password: password,
		Name:     "Test User",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) registerAndLogin(t *testing.T, email, password string) models.User {
	t.Helper()

	f.register(t, email, password)
	user, err := f.services.AuthService.Login(context.Background(), f.session, email, password)
	require.NoError(t, err)
	return user
}

// sequentialIDs hands out task-1, task-2, ...
type sequentialIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequentialIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return "task-" + strconv.Itoa(s.next)
}
