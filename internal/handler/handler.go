package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/Osama-oo1909415/hall-booking/internal/domain"
	"github.com/Osama-oo1909415/hall-booking/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListForDay(ctx context.Context, date string) (domain.DayView, error)
	FormDefaults() (string, string)
	Ping(ctx context.Context) error
}

type Handler struct {
	reservationService ReservationSvc
}

func NewHandler(reservationService ReservationSvc) *Handler {
	return &Handler{reservationService: reservationService}
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	res, err := h.reservationService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	day, err := h.reservationService.ListForDay(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDayResponse(day))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	res, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	res, err := h.reservationService.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) FormDefaults(c *ginext.Context) {
	start, end := h.reservationService.FormDefaults()
	c.JSON(http.StatusOK, dto.DefaultsResponse{Start: start, End: end})
}

func (h *Handler) Health(c *ginext.Context) {
	if err := h.reservationService.Ping(c.Request.Context()); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Store: "down"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Store: "up"})
}

// reservationID отвечает 404 на id, который не может существовать в хранилище.
func reservationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: domain.ErrReservationNotFound.Error(),
			Code:  domain.ReasonCode(domain.ErrReservationNotFound),
		})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	code := domain.ReasonCode(err)

	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		resp := dto.ErrorResponse{Error: err.Error(), Code: code}
		if conflict.Existing != nil {
			existing := dto.ToReservationResponse(conflict.Existing)
			resp.Conflict = &existing
		}
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: code})

	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: code})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: code})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage unavailable", Code: code})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: code})
	}
}
