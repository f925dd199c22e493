package router

import (
	"encoding/json"
	"eventCalendar/internal/http-server/middleware/mwmetrics"
	"eventCalendar/internal/lib/logger/handlers/slogdiscard"
	"eventCalendar/internal/models"
	"eventCalendar/internal/storage/memory"
	"eventCalendar/internal/storage/postgres"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := New(slogdiscard.NewDiscardLogger(), memory.New(time.Local), Options{
		WeekStart: time.Monday,
		Location:  time.Local,
		Metrics:   mwmetrics.NewMetrics(),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestEventLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	status, body := do(t, http.MethodGet, srv.URL+"/events", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = do(t, http.MethodPost, srv.URL+"/events",
		`{"title":"  Standup ","start":"2024-03-05T09:00","end":"2024-03-05T09:30","description":"","imageUrl":"","videoUrl":""}`)
	require.Equal(t, http.StatusCreated, status, body)
	assert.JSONEq(t,
		`{"id":1,"title":"Standup","start":"2024-03-05T09:00","end":"2024-03-05T09:30","description":"","imageUrl":"","videoUrl":""}`,
		body)

	status, body = do(t, http.MethodPost, srv.URL+"/events",
		`{"title":"Launch","start":"2024-03-07T17:00","end":"2024-03-07T18:00","videoUrl":"https://example.com/launch.mp4"}`)
	require.Equal(t, http.StatusCreated, status, body)

	status, body = do(t, http.MethodGet, srv.URL+"/events?type=video", "")
	require.Equal(t, http.StatusOK, status)

	var videos []models.Event
	require.NoError(t, json.Unmarshal([]byte(body), &videos))
	require.Len(t, videos, 1)
	assert.Equal(t, "Launch", videos[0].Title)

	status, body = do(t, http.MethodPut, srv.URL+"/events/1",
		`{"title":"Retro","start":"2024-03-05T10:00","end":"2024-03-05T11:00"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"title":"Retro"`)

	status, body = do(t, http.MethodGet, srv.URL+"/events/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"start":"2024-03-05T10:00"`)

	status, body = do(t, http.MethodDelete, srv.URL+"/events/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"OK"}`, body)

	status, body = do(t, http.MethodGet, srv.URL+"/events/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"status":"Error","error":"event not found"}`, body)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	status, body := do(t, http.MethodPost, srv.URL+"/events",
		`{"title":" ","start":"2024-03-05T10:00","end":"2024-03-05T09:00","imageUrl":"not a url"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{
		"status":"Error",
		"error":"invalid event",
		"fields":{
			"title":"Event title is required",
			"dates":"End date must be after Start date",
			"imageUrl":"Invalid image URL format"
		}
	}`, body)

	status, body = do(t, http.MethodPost, srv.URL+"/events",
		`{"title":"x","start":"2024-03-05 10:00","end":"2024-03-05T11:00"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
}

func TestCalendarAndExport(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	status, _ := do(t, http.MethodPost, srv.URL+"/events",
		`{"title":"Poster","start":"2024-03-05T09:00","end":"2024-03-05T10:00","imageUrl":"https://example.com/p.png"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, http.MethodGet, srv.URL+"/calendar?month=2024-03", "")
	require.Equal(t, http.StatusOK, status)

	var month struct {
		WeekStart int `json:"weekStart"`
		Weeks     [][]struct {
			Date   string         `json:"date"`
			Events []models.Event `json:"events"`
		} `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &month))
	assert.Equal(t, int(time.Monday), month.WeekStart)
	assert.Equal(t, "2024-02-26", month.Weeks[0][0].Date)
	assert.Len(t, month.Weeks[1][1].Events, 1)

	status, body = do(t, http.MethodGet, srv.URL+"/events.ics", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	assert.Contains(t, body, "SUMMARY:Poster")

	status, _ = do(t, http.MethodGet, srv.URL+"/events.xml", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	status, body := do(t, http.MethodGet, srv.URL+"/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, body = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestConfiguredTimezone(t *testing.T) {
	t.Parallel()

	newYork := time.FixedZone("EST", -5*60*60)

	listCases := []struct {
		query string
		count int
	}{
		{query: "from=2024-03-05", count: 1},
		{query: "to=2024-03-05", count: 0},
		{query: "from=2024-03-05&to=2024-03-06", count: 1},
		{query: "from=2024-03-06", count: 0},
	}

	// One listing per filter query plus the month grid.
	reads := len(listCases) + 1

	testCases := []struct {
		name       string
		newStorage func(t *testing.T) Storage
	}{
		{
			name: "Memory storage",
			newStorage: func(t *testing.T) Storage {
				return memory.New(newYork)
			},
		},
		{
			name: "Postgres storage",
			newStorage: func(t *testing.T) Storage {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				t.Cleanup(func() {
					assert.NoError(t, mock.ExpectationsWereMet())
					db.Close()
				})

				columns := []string{"id", "title", "start_time", "end_time", "description", "image_url", "video_url"}
				row := func() *sqlmock.Rows {
					// TIMESTAMP columns come back as UTC carrying the stored wall clock.
					return sqlmock.NewRows(columns).AddRow(1, "Early call",
						time.Date(2024, time.March, 5, 1, 0, 0, 0, time.UTC),
						time.Date(2024, time.March, 5, 2, 0, 0, 0, time.UTC),
						"", "", "")
				}

				mock.ExpectQuery("INSERT INTO events").
					WithArgs("Early call", "2024-03-05 01:00:00", "2024-03-05 02:00:00", "", "", "").
					WillReturnRows(row())
				for i := 0; i < reads; i++ {
					mock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(row())
				}

				return postgres.New(db, newYork)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(New(slogdiscard.NewDiscardLogger(), tc.newStorage(t), Options{
				WeekStart: time.Sunday,
				Location:  newYork,
			}))
			t.Cleanup(srv.Close)

			status, body := do(t, http.MethodPost, srv.URL+"/events",
				`{"title":"Early call","start":"2024-03-05T01:00","end":"2024-03-05T02:00"}`)
			require.Equal(t, http.StatusCreated, status, body)
			assert.Contains(t, body, `"start":"2024-03-05T01:00"`)

			for _, lc := range listCases {
				status, body = do(t, http.MethodGet, srv.URL+"/events?"+lc.query, "")
				require.Equal(t, http.StatusOK, status, lc.query)

				var events []models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &events))
				assert.Len(t, events, lc.count, lc.query)
			}

			status, body = do(t, http.MethodGet, srv.URL+"/calendar?month=2024-03", "")
			require.Equal(t, http.StatusOK, status)

			var month struct {
				Weeks [][]struct {
					Date   string         `json:"date"`
					Events []models.Event `json:"events"`
				} `json:"weeks"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &month))

			var dates []string
			for _, w := range month.Weeks {
				for _, c := range w {
					if len(c.Events) > 0 {
						dates = append(dates, c.Date)
					}
				}
			}
			assert.Equal(t, []string{"2024-03-05"}, dates)
		})
	}
}
