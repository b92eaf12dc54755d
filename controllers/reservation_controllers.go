package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-reservations/models"
	"github.com/yeremiapane/restaurant-reservations/services"
	"github.com/yeremiapane/restaurant-reservations/utils"
	"github.com/yeremiapane/restaurant-reservations/validators"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

// requestBody is the wire envelope: every mutating request carries its
// payload under a "data" key.
type requestBody struct {
	Data json.RawMessage `json:"data"`
}

// decodePayload unpacks the "data" envelope twice: once into a raw map so the
// field whitelist can see every key the client sent, and once into the typed
// payload.
func decodePayload(c *gin.Context) (map[string]interface{}, models.ReservationPayload, *utils.APIError) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, models.ReservationPayload{}, utils.NewValidationError("invalid request body: %v", err)
	}

	fields := map[string]interface{}{}
	if len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, &fields); err != nil {
			return nil, models.ReservationPayload{}, utils.NewValidationError("invalid request body: %v", err)
		}
	}

	var payload models.ReservationPayload
	if len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, &payload); err != nil {
			return nil, models.ReservationPayload{}, utils.NewValidationError("invalid request body: %v", err)
		}
	}
	return fields, payload, nil
}

// reservationID parses the identifier from the path. A value that is not a
// number cannot name a stored row, so it reads as not found.
func reservationID(c *gin.Context) (uint, *utils.APIError) {
	raw := c.Param("reservation_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, utils.NewNotFoundError("Reservation not found: %s", raw)
	}
	return uint(id), nil
}

// ListReservations -> all reservations, or filtered by ?date= / ?mobile_number=
func (rc *ReservationController) ListReservations(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		reservations []models.Reservation
		err          error
	)
	switch {
	case c.Query("date") != "":
		reservations, err = rc.Service.ListByDate(ctx, c.Query("date"))
	case c.Query("mobile_number") != "":
		reservations, err = rc.Service.Search(ctx, c.Query("mobile_number"))
	default:
		reservations, err = rc.Service.List(ctx)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservations)
}

// CreateReservation -> validates the payload and books a new reservation
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	fields, payload, apiErr := decodePayload(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	if err := validators.ValidatePayload(fields, payload, time.Now()); err != nil {
		utils.RespondError(c, err)
		return
	}

	created, err := rc.Service.Create(c.Request.Context(), payload.ToModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation created (ID=%d) for %s %s on %s %s",
		created.ID, created.FirstName, created.LastName, created.ReservationDate, created.ReservationTime)
	utils.RespondData(c, http.StatusCreated, created)
}

// GetReservation -> detail of a single reservation
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, apiErr := reservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.Service.Read(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservation -> full-field edit, allowed only while the reservation
// is still booked
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	fields, payload, apiErr := decodePayload(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	if err := validators.ValidatePayload(fields, payload, time.Now()); err != nil {
		utils.RespondError(c, err)
		return
	}

	id, apiErr := reservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	ctx := c.Request.Context()
	existing, err := rc.Service.Read(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if existing.Status != models.StatusBooked {
		utils.RespondError(c, utils.NewStateConflictError(existing.Status))
		return
	}

	updated, err := rc.Service.UpdateFull(ctx, id, payload.ToModel())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d updated", updated.ID)
	utils.RespondData(c, http.StatusOK, updated)
}

// UpdateReservationStatus -> moves a reservation through its lifecycle
// (booked, seated, finished, cancelled)
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	_, payload, apiErr := decodePayload(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	id, apiErr := reservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	ctx := c.Request.Context()
	if _, err := rc.Service.Read(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := rc.Service.ChangeStatus(ctx, id, payload.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", updated.ID, updated.Status)
	utils.RespondData(c, http.StatusOK, updated)
}
