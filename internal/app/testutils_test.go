package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/mocks"
	"github.com/metinatakli/ticket-service/internal/service"
	"github.com/metinatakli/ticket-service/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	adminPassword = "password"
	userPassword  = "pa55word"
)

var (
	testStart = time.Date(2023, 12, 5, 13, 30, 0, 0, time.UTC)

	hashUsers = sync.OnceValue(func() map[string]domain.User {
		admin := domain.User{ID: 1, Username: service.AdminUsername, Role: domain.RoleAdmin}
		bob := domain.User{ID: 42, Username: "bob", Role: domain.RoleUser}

		if err := admin.Password.Set(adminPassword); err != nil {
			panic(err)
		}
		if err := bob.Password.Set(userPassword); err != nil {
			panic(err)
		}

		return map[string]domain.User{admin.Username: admin, bob.Username: bob}
	})
)

type testEnv struct {
	app        *Application
	server     *httptest.Server
	client     *http.Client
	users      *mocks.MockUserRepo
	movies     *mocks.MockMovieRepo
	rooms      *mocks.MockRoomRepo
	screenings *mocks.MockScreeningRepo
	components *mocks.MockPricingComponentRepo
	bookings   *mocks.MockBookingRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return newTestEnvWithConfig(t, Config{Env: "test"})
}

func newTestEnvWithConfig(t *testing.T, cfg Config) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := newMetrics(noop.NewMeterProvider().Meter(serviceName))
	if err != nil {
		t.Fatal(err)
	}

	env := &testEnv{
		users:      &mocks.MockUserRepo{},
		movies:     new(mocks.MockMovieRepo),
		rooms:      new(mocks.MockRoomRepo),
		screenings: new(mocks.MockScreeningRepo),
		components: new(mocks.MockPricingComponentRepo),
		bookings:   new(mocks.MockBookingRepo),
	}

	users := hashUsers()
	env.users.GetByUsernameFunc = func(_ context.Context, username string) (*domain.User, error) {
		u, ok := users[username]
		if !ok {
			return nil, domain.ErrRecordNotFound
		}
		return &u, nil
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		validator:      validator.NewValidator(),
		sessionManager: scs.New(),
		metrics:        m,
	}
	app.sessions = newSessionProvider(cfg, app.sessionManager, logger)

	app.userService = service.NewUserService(env.users, app.sessions, logger)
	app.movieService = service.NewMovieService(env.movies, app.sessions, logger)
	app.roomService = service.NewRoomService(env.rooms, app.sessions, logger)
	app.screeningService = service.NewScreeningService(env.screenings, env.movies, env.rooms, app.sessions, logger)
	app.pricingService = service.NewPricingService(
		env.components, env.movies, env.rooms, env.screenings,
		service.NewBasePrice(domain.DefaultBasePrice), app.sessions, logger)
	app.bookingService = service.NewBookingService(
		env.bookings, env.screenings, app.pricingService, nil, app.sessions, logger)

	env.app = app
	env.server = httptest.NewServer(app.Routes())
	t.Cleanup(env.server.Close)

	env.client = newClient(t)

	return env
}

func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &http.Client{Jar: jar}
}

// do sends body as JSON unless it is nil and returns the response with its
// body already read.
func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(js)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	return resp, data
}

func (e *testEnv) signIn(t *testing.T, username, password string, privileged bool) {
	t.Helper()

	resp, body := e.do(t, http.MethodPost, "/sessions", api.SignInRequest{
		Username:   username,
		Password:   password,
		Privileged: privileged,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign in as %s: status %d: %s", username, resp.StatusCode, body)
	}
}

func (e *testEnv) signInAdmin(t *testing.T) {
	e.signIn(t, service.AdminUsername, adminPassword, true)
}

func (e *testEnv) signInUser(t *testing.T) {
	e.signIn(t, "bob", userPassword, false)
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}

	return v
}

func checkErrorResponse(t *testing.T, resp *http.Response, body []byte, wantStatus int, wantErrMessage string) {
	t.Helper()

	if resp.StatusCode != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, wantStatus, body)
	}

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		validationResp := decode[api.ValidationErrorResponse](t, body)

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		errorResp := decode[api.ErrorResponse](t, body)

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
		if errorResp.RequestId == "" {
			t.Errorf("Error response carries no request id")
		}
	}
}

func testMovie() *domain.Movie {
	return &domain.Movie{ID: 1, Title: "Dune", Genre: "sci-fi", Runtime: 120}
}

func testRoom() *domain.Room {
	return &domain.Room{ID: 2, Name: "R1", Rows: 10, Columns: 12}
}

func testScreening() *domain.Screening {
	return &domain.Screening{
		ID:        3,
		MovieID:   1,
		RoomID:    2,
		Movie:     *testMovie(),
		Room:      *testRoom(),
		StartTime: testStart,
	}
}

func testKey() domain.ScreeningKey {
	return domain.ScreeningKey{MovieTitle: "Dune", RoomName: "R1", StartTime: testStart}
}
