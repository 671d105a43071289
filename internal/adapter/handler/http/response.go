package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const authorizationPayloadKey = "authorization_payload"

type errorResponse struct {
	Error string `json:"error" example:"Bike not found"`
}

type successResponse struct {
	Message string      `json:"message" example:"ok"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{Message: message, Data: data})
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok && payload != nil
}

// errorStatus maps a service error onto an HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDependencyFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes err as a response. Client errors carry the
// error text; server errors only the fallback message.
func handleServiceError(c *gin.Context, err error, fallback string) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		newErrorResponse(c, status, fallback)
		return
	}
	newErrorResponse(c, status, err.Error())
}

// loadOwnedBike fetches the bike and checks the caller may act on it. On
// failure the response has been written and ok is false.
func loadOwnedBike(
	c *gin.Context,
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	payload *domain.TokenPayload,
	bikeID string,
) (*domain.Bike, bool) {
	bike, err := bikeService.GetBikeByID(c.Request.Context(), bikeID)
	if err != nil {
		logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		handleServiceError(c, err, "Failed to get bike")
		return nil, false
	}

	if !payload.CanAccess(bike.UserID) {
		logger.Warn("Access denied to bike", map[string]interface{}{
			"requester_id": payload.UserID.String(),
			"bike_owner":   bike.UserID.String(),
			"bike_id":      bikeID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return nil, false
	}

	return bike, true
}
