package createBooking

import (
	"context"
	"errors"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/timezone"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strings"
)

type BookingRequest struct {
	FitnessClassID int    `json:"fitness_class_id" validate:"required,gt=0"`
	ClientName     string `json:"client_name" validate:"required,max=100"`
	ClientEmail    string `json:"client_email" validate:"required,email"`
}

type BookingResponse struct {
	response.Response
	Booking models.BookingWithClass `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassBooker
type ClassBooker interface {
	BookClass(ctx context.Context, classID int, clientName, clientEmail string) (*models.Booking, *models.FitnessClass, error)
}

func New(log *slog.Logger, booker ClassBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(
			slog.String("op", op),
		)

		loc, err := timezone.Resolve(r.URL.Query().Get("timezone"))
		if err != nil {
			log.Error("invalid timezone requested", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		// The canonical lowercased address is what gets validated and stored.
		req.ClientEmail = strings.ToLower(strings.TrimSpace(req.ClientEmail))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		log = log.With(
			slog.Int("class_id", req.FitnessClassID),
			slog.String("client_email", req.ClientEmail),
		)

		booking, class, err := booker.BookClass(r.Context(), req.FitnessClassID, req.ClientName, req.ClientEmail)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrClassNotFound):
				log.Warn("fitness class not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("fitness class not found"))
			case errors.Is(err, storage.ErrClassFull):
				log.Warn("fitness class is fully booked")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available slots for this class"))
			case errors.Is(err, storage.ErrDuplicateBooking):
				log.Warn("duplicate booking attempt")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you have already booked this class"))
			default:
				log.Error("failed to book fitness class", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book fitness class"))
			}

			return
		}

		log.Info("fitness class booked",
			slog.String("booking_id", booking.ID),
			slog.Int("available_slots", class.AvailableSlots()),
		)

		bwc := models.BookingWithClass{
			Booking:      *booking,
			FitnessClass: *class,
		}

		responseOK(w, r, bwc.In(loc))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.BookingWithClass) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
