package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type GarageHandler struct {
	garageService ports.GarageService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type GarageResponse struct {
	UserID string `json:"user_id"`
	domain.GarageCondition
}

func NewGarageHandler(garageService ports.GarageService, logger ports.LoggerPort, metrics ports.MetricsPort) *GarageHandler {
	return &GarageHandler{
		garageService: garageService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Состояние гаража
// @Description Средний остаток ресурса активных компонентов по всем байкам и разбивка по группам износа. Администратор может передать user_id
// @Tags garage
// @Security BearerAuth
// @Produce json
// @Param user_id query string false "ID пользователя (только для администратора)"
// @Success 200 {object} GarageResponse "Состояние гаража"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /garage [get]
func (h *GarageHandler) GetGarage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID := payload.UserID.String()
	if requested := c.Query("user_id"); requested != "" && requested != userID {
		if !payload.IsAdmin() {
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return
		}
		userID = requested
	}

	condition, err := h.garageService.GetGarageCondition(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to compute garage condition")
		return
	}

	c.JSON(http.StatusOK, GarageResponse{
		UserID:          userID,
		GarageCondition: *condition,
	})
}
