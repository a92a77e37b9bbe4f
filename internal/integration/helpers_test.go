package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/api"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, url string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body []byte, expectedResponse string) {
	var actual any
	require.NoError(t, json.Unmarshal(body, &actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "reference"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// truncateCatalog empties the catalog and bookings. Users other than the
// admin and the given seeded accounts are removed.
func truncateCatalog(t testing.TB, db *pgxpool.Pool, keepUsers []string) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE movies, rooms, pricing_components, screenings, bookings RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		`DELETE FROM users WHERE role <> 'ADMIN' AND username <> ALL($1)`, keepUsers)
	require.NoError(t, err)
}

func signIn(t testing.TB, client *http.Client, baseURL, username, password string, privileged bool) {
	res, body := send(t, client, http.MethodPost, baseURL+"/sessions", api.SignInRequest{
		Username:   username,
		Password:   password,
		Privileged: privileged,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
}

func signUp(t testing.TB, client *http.Client, baseURL, username, password string) {
	res, body := send(t, client, http.MethodPost, baseURL+"/users", api.SignUpRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))
}

// seedCatalog creates the test movie, room and one screening through the API
// as the admin.
func seedCatalog(t testing.TB, client *http.Client, baseURL string) {
	signIn(t, client, baseURL, "admin", TestAdminPassword, true)

	res, body := send(t, client, http.MethodPost, baseURL+"/movies", api.CreateMovieRequest{
		Title:   TestMovieTitle,
		Genre:   TestMovieGenre,
		Runtime: TestMovieRuntime,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	res, body = send(t, client, http.MethodPost, baseURL+"/rooms", api.CreateRoomRequest{
		Name:    TestRoomName,
		Rows:    TestRoomRows,
		Columns: TestRoomColumns,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	res, body = send(t, client, http.MethodPost, baseURL+"/screenings", testScreeningKey(TestStartTime))
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	res, body = send(t, client, http.MethodPut, baseURL+"/pricing/base-price", api.UpdateBasePriceRequest{Price: TestBasePrice})
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
}

func testScreeningKey(start string) api.ScreeningKey {
	return api.ScreeningKey{
		MovieTitle: TestMovieTitle,
		RoomName:   TestRoomName,
		StartTime:  start,
	}
}

func bookingRequest(start string, seats ...string) api.CreateBookingRequest {
	return api.CreateBookingRequest{
		MovieTitle: TestMovieTitle,
		RoomName:   TestRoomName,
		StartTime:  start,
		Seats:      seats,
	}
}

func screeningQuery(start string) string {
	qs := url.Values{
		"movie": {TestMovieTitle},
		"room":  {TestRoomName},
		"start": {start},
	}

	return "/screenings?" + qs.Encode()
}

func priceQuery(start string, seats string) string {
	qs := url.Values{
		"movie": {TestMovieTitle},
		"room":  {TestRoomName},
		"start": {start},
		"seats": {seats},
	}

	return "/screenings/price?" + qs.Encode()
}
