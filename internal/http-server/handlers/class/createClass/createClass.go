package createClass

import (
	"context"
	"errors"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/timezone"
	"fitnessBooker/internal/models"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"time"
)

type ClassRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor" validate:"required,max=100"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
}

type ClassResponse struct {
	response.Response
	Class models.FitnessClass `json:"class"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassCreator
type ClassCreator interface {
	CreateClass(ctx context.Context, class models.FitnessClass) (*models.FitnessClass, error)
}

func New(log *slog.Logger, classes ClassCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.createClass.New"

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

		var req ClassRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		class, err := classes.CreateClass(r.Context(), models.FitnessClass{
			Name:        req.Name,
			Description: req.Description,
			Instructor:  req.Instructor,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Timezone:    loc.String(),
			Capacity:    req.Capacity,
		})
		if err != nil {
			log.Error("failed to create fitness class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create fitness class"))

			return
		}

		log.Info("fitness class created", slog.Int("id", class.ID))

		responseOK(w, r, class.In(loc))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, class models.FitnessClass) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ClassResponse{
		Response: response.OK(),
		Class:    class,
	})
}
