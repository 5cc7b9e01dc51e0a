package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/pageland/matrix-bike-service/internal/core/domain"
	"github.com/pageland/matrix-bike-service/internal/core/ports"
	"github.com/pageland/matrix-bike-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BikeHandler struct {
	bikeService  *services.BikeService
	emailService *services.EmailService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type CreateBikeRequest struct {
	Email string     `json:"email" binding:"required" example:"rider@domain.com"`
	Make  *string    `json:"make" example:"Trek"`
	Model *string    `json:"model" example:"Marlin 7"`
	Year  *time.Time `json:"year" example:"2023-01-01T00:00:00Z"`
}

type UpdateBikeRequest struct {
	Make  *string    `json:"make" example:"Giant"`
	Model *string    `json:"model" example:"Talon 2"`
	Year  *time.Time `json:"year" example:"2021-01-01T00:00:00Z"`
}

type BikeResponse struct {
	BikeID uuid.UUID  `json:"bikeId"`
	Email  string     `json:"email"`
	Make   *string    `json:"make"`
	Model  *string    `json:"model"`
	Year   *time.Time `json:"year"`
}

func NewBikeHandler(
	bikeService *services.BikeService,
	emailService *services.EmailService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService:  bikeService,
		emailService: emailService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary List bikes
// @Description Fetch all bikes, or only one user's bikes when the email query parameter is given
// @Tags bikes
// @Accept json
// @Produce json
// @Param email query string false "Filter bikes by exact owner email"
// @Success 200 {array} BikeResponse "List of bikes"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /bike [get]
func (h *BikeHandler) GetBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var bikes []*domain.Bike
	var err error

	if email := c.Query("email"); email != "" {
		bikes, err = h.bikeService.GetUsersBikes(c.Request.Context(), email)
	} else {
		bikes, err = h.bikeService.GetAllBikes(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("Failed to get bikes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, statusForError(err), "Failed to get bikes")
		return
	}

	responses := make([]BikeResponse, len(bikes))
	for i, bike := range bikes {
		responses[i] = BikeResponse{
			BikeID: bike.BikeID,
			Email:  bike.Email,
			Make:   bike.Make,
			Model:  bike.Model,
			Year:   bike.Year,
		}
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Create a bike
// @Description Create a new bike for the given owner email and return its id
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body CreateBikeRequest true "Bike data"
// @Success 201 {string} string "Created bike id"
// @Failure 400 {object} errorResponse "Invalid email or blank make/model"
// @Router /bike [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if !h.emailService.IsValidEmail(req.Email) {
		newErrorResponse(c, http.StatusBadRequest, "Ensure the email is in a correct format")
		return
	}
	if isBlank(req.Make) {
		newErrorResponse(c, http.StatusBadRequest, "Ensure that make is null or a valid make")
		return
	}
	if isBlank(req.Model) {
		newErrorResponse(c, http.StatusBadRequest, "Ensure that model is null or a valid model")
		return
	}

	bikeID, err := h.bikeService.CreateBike(c.Request.Context(), req.Email, req.Make, req.Model, req.Year)
	if err != nil {
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.Header("Location", "/bike/"+bikeID.String())
	c.JSON(http.StatusCreated, bikeID.String())
}

// @Summary Update a bike
// @Description Patch a bike's make, model or year. Omitted or null fields keep their current value
// @Tags bikes
// @Accept json
// @Produce json
// @Param bikeId path string true "Bike id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body UpdateBikeRequest true "Fields to update"
// @Success 200 "Bike updated"
// @Failure 400 {object} errorResponse "Blank make/model or malformed id"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bike/{bikeId} [patch]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID, err := uuid.Parse(c.Param("bikeId"))
	if err != nil {
		h.logger.Error("Invalid bike ID format", map[string]interface{}{
			"bike_id": c.Param("bikeId"),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if isBlank(req.Make) {
		newErrorResponse(c, http.StatusBadRequest, "Ensure that make is null or a valid make")
		return
	}
	if isBlank(req.Model) {
		newErrorResponse(c, http.StatusBadRequest, "Ensure that model is null or a valid model")
		return
	}

	patch := domain.BikePatch{
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
	}

	if err := h.bikeService.UpdateBike(c.Request.Context(), bikeID, patch); err != nil {
		h.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusForError(err), err.Error())
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Delete a bike
// @Description Delete a bike. Deleting an id that does not exist still succeeds
// @Tags bikes
// @Accept json
// @Produce json
// @Param bikeId path string true "Bike id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 "Bike deleted"
// @Failure 400 {object} errorResponse "Malformed id"
// @Router /bike/{bikeId} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID, err := uuid.Parse(c.Param("bikeId"))
	if err != nil {
		h.logger.Error("Invalid bike ID format", map[string]interface{}{
			"bike_id": c.Param("bikeId"),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	if err := h.bikeService.DeleteBike(c.Request.Context(), bikeID); err != nil {
		h.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusForError(err), "Delete failed")
		return
	}

	c.Status(http.StatusOK)
}

// isBlank reports whether an optional string is present but empty or
// whitespace-only. A nil value is fine; an explicit blank is not.
func isBlank(value *string) bool {
	return value != nil && strings.TrimSpace(*value) == ""
}
