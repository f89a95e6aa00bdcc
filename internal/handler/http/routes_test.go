package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

// newTestServer runs the full router over real services and an in-memory
// substrate.
func newTestServer(t *testing.T) *resty.Client {
	t.Helper()

	storages := store.NewStoragesOver(kv.NewMemory(), time.Now, false, logger.Nop())
	services, err := service.NewServices(storages, config.App{Version: "1.0.0", Language: config.LanguageEnglish},
		models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, 5*time.Second, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

func TestAPI_UserJourney(t *testing.T) {
	client := newTestServer(t)

	// register
	var registered models.User
	resp, err := client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "secret", "name": "Ann"}).
		SetResult(&registered).
		Post("/api/user/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	require.NotEmpty(t, registered.ID)
	assert.False(t, registered.LoggedIn)

	// duplicate email
	resp, err = client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "other"}).
		Post("/api/user/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	// not logged in yet
	resp, err = client.R().Get("/api/user/current")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// wrong password
	resp, err = client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "nope"}).
		Post("/api/user/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// login
	var loggedIn models.User
	resp, err = client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "secret"}).
		SetResult(&loggedIn).
		Post("/api/user/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.True(t, loggedIn.LoggedIn)
	assert.Equal(t, registered.ID, loggedIn.ID)

	// today's tasks are generated once and then stable
	var first, second todayTasksResponse
	resp, err = client.R().SetResult(&first).Get("/api/tasks/today")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.Len(t, first.Tasks, 5)
	assert.Zero(t, first.Progress.Percentage)

	_, err = client.R().SetResult(&second).Get("/api/tasks/today")
	require.NoError(t, err)
	assert.Equal(t, first.Tasks, second.Tasks)

	// toggle one task
	var progress models.DayProgress
	resp, err = client.R().
		SetPathParam("taskID", first.Tasks[0].ID).
		SetResult(&progress).
		Post("/api/tasks/today/{taskID}/toggle")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, 1, progress.Completed)
	assert.InDelta(t, 20.0, progress.Percentage, 1e-9)
	assert.Equal(t, first.Tasks[0].Category.CaloriesBurned(), progress.CaloriesBurned)

	// stats followed the toggle
	var current models.User
	resp, err = client.R().SetResult(&current).Get("/api/user/current")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 1, current.Stats.WorkoutsCompleted)
	assert.Empty(t, current.Password)

	// subscription for someone else is refused
	resp, err = client.R().
		SetBody(models.ActivationRequest{UserID: "someone-else", Type: models.SubscriptionCombo, Duration: 6, Price: 3000}).
		Post("/api/subscriptions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	// combo covers both kinds
	resp, err = client.R().
		SetBody(models.ActivationRequest{UserID: registered.ID, Type: models.SubscriptionCombo, Duration: 6, Price: 3000}).
		Post("/api/subscriptions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	for _, kind := range []string{"workout", "nutrition"} {
		var status subscriptionStatusResponse
		resp, err = client.R().SetPathParam("kind", kind).SetResult(&status).Get("/api/subscriptions/{kind}")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.True(t, status.Active, kind)
	}

	// export holds the one user, pretty-printed
	resp, err = client.R().Get("/api/data/export")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "\n  {")
	var exported []models.User
	require.NoError(t, json.Unmarshal(resp.Body(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, registered.ID, exported[0].ID)
	assert.Equal(t, "secret", exported[0].Password, "the export is the stored format")

	// a non-array import is rejected and changes nothing
	resp, err = client.R().SetBody(`{"id":"x"}`).Post("/api/data/import")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = client.R().Get("/api/data/export")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(resp.Body(), &exported))
	assert.Len(t, exported, 1)

	// logout ends the session
	resp, err = client.R().Post("/api/user/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = client.R().Get("/api/tasks/today")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestAPI_ImportReplacesUsers(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "secret"}).
		Post("/api/user/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	payload := `[{"id":"imported-1","email":"bob@example.com","password":"pw","name":"Bob","loggedIn":false,
		"createdAt":"2026-01-01T00:00:00Z","bodyProblems":[],"dietRestrictions":[],"meals":[],
		"stats":{"calories":[0,0,0,0,0,0,0],"steps":[0,0,0,0,0,0,0],"workoutsCompleted":0,"streak":0},
		"subscriptions":{}}]`
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Export-Name", "ar-fit-users-data.json").
		SetBody(payload).
		Post("/api/data/import")
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode(), resp.String())

	// the old user is gone, the imported one can log in
	resp, err = client.R().
		SetBody(map[string]any{"email": "ann@example.com", "password": "secret"}).
		Post("/api/user/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var user models.User
	resp, err = client.R().
		SetBody(map[string]any{"email": "bob@example.com", "password": "pw"}).
		SetResult(&user).
		Post("/api/user/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "imported-1", user.ID)
}

func TestAPI_CalculatorAndVersion(t *testing.T) {
	client := newTestServer(t)

	var result models.CalorieResult
	resp, err := client.R().
		SetBody(models.CalorieRequest{Gender: "female", Age: 25, Weight: 60, Height: 165, Activity: models.ActivitySedentary, Goal: models.GoalLose}).
		SetResult(&result).
		Post("/api/calculator")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, 1345, result.BMR)
	assert.Equal(t, 1114, result.Target)

	var version versionResponse
	resp, err = client.R().SetResult(&version).Get("/api/version")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, versionResponse{Version: "1.0.0", BuildDate: "2026-03-01", BuildCommit: "abc123"}, version)
}
