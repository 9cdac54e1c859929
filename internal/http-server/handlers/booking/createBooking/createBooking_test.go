package createBooking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fitnessBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"fitnessBooker/internal/lib/logger/handlers/slogdiscard"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	startTime := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	testClass := &models.FitnessClass{
		ID:          10,
		Name:        "Morning Yoga",
		Instructor:  "Asha",
		StartTime:   startTime,
		EndTime:     startTime.Add(time.Hour),
		Timezone:    "Asia/Kolkata",
		Capacity:    20,
		BookedCount: 1,
	}

	testBooking := &models.Booking{
		ID:             "6e9a3c61-2f4b-4c1d-9a55-0d6f55cbb3da",
		FitnessClassID: 10,
		ClientName:     "Alice",
		ClientEmail:    "alice@example.com",
		CreatedAt:      time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}

	validBody := `{
		"fitness_class_id": 10,
		"client_name": "Alice",
		"client_email": "alice@example.com"
	}`

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(m *mocks.ClassBooker)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			url:         "/book",
			requestBody: validBody,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(testBooking, testClass, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, testBooking.ID, resp.Booking.ID)
				assert.Equal(t, 10, resp.Booking.FitnessClassID)
				assert.Equal(t, "Morning Yoga", resp.Booking.FitnessClass.Name)
				assert.True(t, resp.Booking.FitnessClass.StartTime.Equal(startTime))
			},
		},
		{
			name: "Email is normalized",
			url:  "/book",
			requestBody: `{
				"fitness_class_id": 10,
				"client_name": "Alice",
				"client_email": "  Alice@Example.COM  "
			}`,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(testBooking, testClass, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"client_email":"alice@example.com"`)
			},
		},
		{
			name: "Blank email",
			url:  "/book",
			requestBody: `{
				"fitness_class_id": 10,
				"client_name": "Alice",
				"client_email": "   "
			}`,
			mockSetup:      func(m *mocks.ClassBooker) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "ClientEmail")
			},
		},
		{
			name:           "Invalid JSON",
			url:            "/book",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.ClassBooker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing all fields",
			url:            "/book",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.ClassBooker) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "FitnessClassID")
				assert.Contains(t, body, "ClientName")
				assert.Contains(t, body, "ClientEmail")
			},
		},
		{
			name: "Invalid email",
			url:  "/book",
			requestBody: `{
				"fitness_class_id": 10,
				"client_name": "Alice",
				"client_email": "not-an-email"
			}`,
			mockSetup:      func(m *mocks.ClassBooker) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "ClientEmail")
				assert.Contains(t, body, "not a valid email")
			},
		},
		{
			name:           "Invalid timezone",
			url:            "/book?timezone=Bad/Zone",
			requestBody:    validBody,
			mockSetup:      func(m *mocks.ClassBooker) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"invalid timezone: Bad/Zone"}`,
		},
		{
			name:        "Class not found",
			url:         "/book",
			requestBody: validBody,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(nil, nil, storage.ErrClassNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"fitness class not found"}`,
		},
		{
			name:        "Class full",
			url:         "/book",
			requestBody: validBody,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(nil, nil, storage.ErrClassFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no available slots for this class"}`,
		},
		{
			name:        "Duplicate booking",
			url:         "/book",
			requestBody: validBody,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(nil, nil, storage.ErrDuplicateBooking)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"you have already booked this class"}`,
		},
		{
			name:        "Internal server error",
			url:         "/book",
			requestBody: validBody,
			mockSetup: func(m *mocks.ClassBooker) {
				m.On("BookClass", mock.Anything, 10, "Alice", "alice@example.com").Return(nil, nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to book fitness class"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockBooker := mocks.NewClassBooker(t)
			tc.mockSetup(mockBooker)

			handler := New(logger, mockBooker)

			req, err := http.NewRequest("POST", tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			if tc.expectedStatus != http.StatusBadRequest && tc.expectedStatus != http.StatusUnprocessableEntity {
				mockBooker.AssertExpectations(t)
			}
		})
	}
}

// fakeBooker serializes bookings with a mutex the way the real storage
// serializes them with a row lock.
type fakeBooker struct {
	mu       sync.Mutex
	capacity int
	booked   int
}

func (f *fakeBooker) BookClass(_ context.Context, classID int, clientName, clientEmail string) (*models.Booking, *models.FitnessClass, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.booked >= f.capacity {
		return nil, nil, storage.ErrClassFull
	}

	f.booked++

	start := time.Now().UTC().Add(24 * time.Hour)

	booking := &models.Booking{
		ID:             uuid.New().String(),
		FitnessClassID: classID,
		ClientName:     clientName,
		ClientEmail:    clientEmail,
		CreatedAt:      time.Now().UTC(),
	}

	class := &models.FitnessClass{
		ID:          classID,
		Name:        "Morning Yoga",
		Instructor:  "Asha",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    "UTC",
		Capacity:    f.capacity,
		BookedCount: f.booked,
	}

	return booking, class, nil
}

func TestCreateBookingHandlerConcurrent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	booker := &fakeBooker{capacity: 5}
	handler := New(logger, booker)

	const attempts = 20

	var wg sync.WaitGroup
	statuses := make([]int, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			body := fmt.Sprintf(`{
				"fitness_class_id": 10,
				"client_name": "Client %d",
				"client_email": "client%02d@example.com"
			}`, n, n)

			req := httptest.NewRequest("POST", "/book", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			statuses[n] = rr.Code
		}(i)
	}

	wg.Wait()

	var created, conflicts int
	for _, code := range statuses {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Fatalf("unexpected status code: %d", code)
		}
	}

	assert.Equal(t, 5, created)
	assert.Equal(t, attempts-5, conflicts)
	assert.Equal(t, 5, booker.booked)
}

// Log attributes bound during one request must not show up in the next one.
func TestCreateBookingHandlerLogAttrsDoNotLeak(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := New(logger, &fakeBooker{capacity: 2})

	first := httptest.NewRequest("POST", "/book", bytes.NewBufferString(`{
		"fitness_class_id": 10,
		"client_name": "Alice",
		"client_email": "alice@example.com"
	}`))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	require.Equal(t, http.StatusCreated, rr.Code)

	buf.Reset()

	second := httptest.NewRequest("POST", "/book", bytes.NewBufferString(`{
		"fitness_class_id": 10,
		"client_name": "Bob",
		"client_email": "bob@example.com"
	}`))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, second)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Contains(t, buf.String(), "bob@example.com")
	assert.NotContains(t, buf.String(), "alice@example.com")
}
