package cancelBooking

import (
	"context"
	"errors"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

type CancelResponse struct {
	response.Response
	Message        string `json:"message"`
	ClassName      string `json:"class_name"`
	AvailableSlots int    `json:"available_slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceler
type BookingCanceler interface {
	CancelBooking(ctx context.Context, bookingID string) (*models.FitnessClass, error)
}

func New(log *slog.Logger, bookings BookingCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log := log.With(
			slog.String("op", op),
		)

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("booking id is required"))

			return
		}

		if _, err := uuid.Parse(bookingID); err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid booking id format"))

			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		class, err := bookings.CancelBooking(r.Context(), bookingID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))

				return
			}

			log.Error("failed to cancel booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel booking"))

			return
		}

		log.Info("booking cancelled",
			slog.String("class_name", class.Name),
			slog.Int("available_slots", class.AvailableSlots()),
		)

		responseOK(w, r, class)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, class *models.FitnessClass) {
	render.JSON(w, r, CancelResponse{
		Response:       response.OK(),
		Message:        "booking cancelled successfully",
		ClassName:      class.Name,
		AvailableSlots: class.AvailableSlots(),
	})
}
