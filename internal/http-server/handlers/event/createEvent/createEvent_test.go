package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"eventCalendar/internal/http-server/handlers/event/createEvent/mocks"
	"eventCalendar/internal/lib/api/response"
	"eventCalendar/internal/lib/logger/handlers/slogdiscard"
	"eventCalendar/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	draft := models.EventDraft{
		Title: "Standup",
		Start: models.MustParseLocalTime("2024-03-05T09:00"),
		End:   models.MustParseLocalTime("2024-03-05T09:30"),
	}
	created := &models.Event{
		ID:    123,
		Title: draft.Title,
		Start: draft.Start,
		End:   draft.End,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"title": "Standup",
				"start": "2024-03-05T09:00",
				"end": "2024-03-05T09:30"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, draft).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{
				"id": 123,
				"title": "Standup",
				"start": "2024-03-05T09:00",
				"end": "2024-03-05T09:30",
				"description": "",
				"imageUrl": "",
				"videoUrl": ""
			}`,
		},
		{
			name: "Title is trimmed",
			requestBody: `{
				"title": "  Standup  ",
				"start": "2024-03-05T09:00",
				"end": "2024-03-05T09:30"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, draft).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":123`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Date with offset",
			requestBody: `{
				"title": "Standup",
				"start": "2024-03-05T09:00:00Z",
				"end": "2024-03-05T09:30:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Empty title and reversed dates",
			requestBody: `{
				"title": "",
				"start": "2024-03-05T09:00",
				"end": "2024-03-05T08:00"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"status": "Error",
				"error": "invalid event",
				"fields": {
					"title": "Event title is required",
					"dates": "End date must be after Start date"
				}
			}`,
		},
		{
			name: "Missing dates and bad image URL",
			requestBody: `{
				"title": "Standup",
				"imageUrl": "not a url"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				var resp response.Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, response.StatusError, resp.Status)
				assert.Equal(t, "Start and End dates are required", resp.Fields["dates"])
				assert.Equal(t, "Invalid image URL format", resp.Fields["imageUrl"])
			},
		},
		{
			name: "Internal server error",
			requestBody: `{
				"title": "Standup",
				"start": "2024-03-05T09:00",
				"end": "2024-03-05T09:30"
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, draft).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCreateEventPassesMediaFields(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCreator := mocks.NewEventCreator(t)
	handler := New(logger, mockCreator)

	mockCreator.On("CreateEvent", mock.Anything, mock.MatchedBy(func(d models.EventDraft) bool {
		return d.VideoURL == "https://example.com/demo.mp4" && d.Description == "recorded"
	})).Return(&models.Event{ID: 5, VideoURL: "https://example.com/demo.mp4"}, nil)

	body := `{
		"title": "Demo",
		"start": "2024-03-08T10:00",
		"end": "2024-03-08T11:00",
		"description": "recorded",
		"videoUrl": "https://example.com/demo.mp4"
	}`
	req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &event))
	assert.Equal(t, 5, event.ID)
	assert.Equal(t, models.KindVideo, event.Kind())
}
