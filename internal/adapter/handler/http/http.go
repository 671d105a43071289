package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
	users       ports.UserDirectory
}

type BikeRequest struct {
	BikeName      string  `json:"bike_name" example:"Commuter"`
	Model         string  `json:"model" binding:"required" example:"Topstone 105"`
	Type          string  `json:"type" binding:"required" example:"gravel"`
	Year          int     `json:"year" example:"2023"`
	TotalDistance float64 `json:"total_distance" example:"1200"`
}

type UpdateBike struct {
	BikeName *string `json:"bike_name,omitempty" example:"Weekend bike"`
	Model    *string `json:"model,omitempty" example:"New Model"`
	Type     *string `json:"type,omitempty" example:"road"`
	Year     *int    `json:"year,omitempty" example:"2024"`
}

type RecordDistanceRequest struct {
	TotalDistance *float64 `json:"total_distance" binding:"required" example:"1500"`
}

type GetMyBikesResponse struct {
	Bikes []BikeResponse `json:"bikes"`
	Count int            `json:"count"`
}

type DeleteBikeResponse struct {
	Message string `json:"message"`
}

type GetBikeWithComponentsResponse struct {
	BikeResponse
	Components []ComponentResponse `json:"components"`
}

type GetMaintenanceRecordsResponse struct {
	BikeID  string                      `json:"bike_id"`
	Records []MaintenanceRecordResponse `json:"records"`
	Count   int                         `json:"count"`
}

type GetBikeWithUserResponse struct {
	BikeResponse
	User *domain.Owner `json:"user,omitempty"`
}

func NewBikeHandler(
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	users ports.UserDirectory,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
		users:       users,
	}
}

// @Summary Создать байк
// @Description Создание нового байка
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Данные байка"
// @Success 201 {object} BikeResponse "Байк создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateBike", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike := &domain.Bike{
		UserID:        payload.UserID,
		BikeName:      req.BikeName,
		Model:         req.Model,
		Type:          domain.BikeType(strings.ToLower(req.Type)),
		Year:          req.Year,
		TotalDistance: req.TotalDistance,
	}

	createdBike, err := h.bikeService.CreateBike(c.Request.Context(), bike)
	if err != nil {
		handleServiceError(c, err, "Failed to create bike")
		return
	}

	c.JSON(http.StatusCreated, toBikeResponse(createdBike))
}

// @Summary Получить байк
// @Description Получение информации о байке по ID
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} BikeResponse "Байк найден"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toBikeResponse(bike))
}

// @Summary Получить байки пользователя
// @Description Получение всех байков авторизованного пользователя
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} GetMyBikesResponse "Список байков пользователя"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 502 {object} errorResponse "Ошибка хранилища"
// @Router /bikes/my [get]
func (h *BikeHandler) GetMyBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyBikes", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikes, err := h.bikeService.GetBikesByUserID(c.Request.Context(), payload.UserID.String())
	if err != nil {
		handleServiceError(c, err, "Failed to get bikes")
		return
	}

	bikeInfos := make([]BikeResponse, len(bikes))
	for i, bike := range bikes {
		bikeInfos[i] = toBikeResponse(bike)
	}

	c.JSON(http.StatusOK, GetMyBikesResponse{
		Bikes: bikeInfos,
		Count: len(bikeInfos),
	})
}

// @Summary Обновить байк
// @Description Обновление данных байка. Пробег меняется через /bikes/{id}/distance
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body UpdateBike true "Данные для обновления"
// @Success 200 {object} BikeResponse "Байк обновлен"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID)
	if !ok {
		return
	}

	var req UpdateBike
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.BikeName != nil {
		bike.BikeName = *req.BikeName
	}
	if req.Model != nil {
		bike.Model = *req.Model
	}
	if req.Type != nil {
		bike.Type = domain.BikeType(strings.ToLower(*req.Type))
	}
	if req.Year != nil {
		bike.Year = *req.Year
	}

	updatedBike, err := h.bikeService.UpdateBike(c.Request.Context(), bike)
	if err != nil {
		handleServiceError(c, err, "Update failed")
		return
	}

	c.JSON(http.StatusOK, toBikeResponse(updatedBike))
}

// @Summary Удалить байк
// @Description Удаление байка вместе с его компонентами
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} DeleteBikeResponse "Байк удален"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	if err := h.bikeService.DeleteBike(c.Request.Context(), bikeID); err != nil {
		handleServiceError(c, err, "Delete failed")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike deleted successfully", nil)
}

// @Summary Записать пробег
// @Description Новый общий пробег байка. Разница добавляется к активным компонентам
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body RecordDistanceRequest true "Общий пробег"
// @Success 200 {object} BikeResponse "Пробег записан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/distance [put]
func (h *BikeHandler) RecordDistance(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	var req RecordDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike, err := h.bikeService.RecordDistance(c.Request.Context(), bikeID, *req.TotalDistance)
	if err != nil {
		handleServiceError(c, err, "Failed to record distance")
		return
	}

	c.JSON(http.StatusOK, toBikeResponse(bike))
}

// @Summary Получить байк с компонентами
// @Description Байк с активными компонентами и их износом
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} GetBikeWithComponentsResponse "Байк с компонентами"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/with-components [get]
func (h *BikeHandler) GetBikeWithComponents(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, err := h.bikeService.GetBikeWithComponents(c.Request.Context(), bikeID)
	if err != nil {
		handleServiceError(c, err, "Failed to get bike")
		return
	}

	if !payload.CanAccess(bike.UserID) {
		h.logger.Warn("Access denied to bike", map[string]interface{}{
			"requester_id": payload.UserID.String(),
			"bike_owner":   bike.UserID.String(),
			"bike_id":      bikeID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	c.JSON(http.StatusOK, GetBikeWithComponentsResponse{
		BikeResponse: toBikeResponse(bike),
		Components:   toComponentResponses(bike.Components),
	})
}

// @Summary История обслуживания
// @Description Записи обслуживания по всем компонентам байка, новые первыми
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} GetMaintenanceRecordsResponse "Записи обслуживания"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/maintenance [get]
func (h *BikeHandler) GetMaintenanceRecords(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	records, err := h.bikeService.GetMaintenanceRecords(c.Request.Context(), bikeID)
	if err != nil {
		handleServiceError(c, err, "Failed to get maintenance records")
		return
	}

	c.JSON(http.StatusOK, GetMaintenanceRecordsResponse{
		BikeID:  bikeID,
		Records: toRecordResponses(records),
		Count:   len(records),
	})
}

// @Summary Получить байк с пользователем
// @Description Информация о байке и его владельце из user-service
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} GetBikeWithUserResponse "Байк с пользователем"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/with-user [get]
func (h *BikeHandler) GetBikeWithUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, bikeID)
	if !ok {
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))

	// The owner profile is optional: the bike is still returned when the
	// user service is unavailable.
	owner, err := h.users.GetUser(c.Request.Context(), bike.UserID, token)
	if err != nil {
		h.logger.Warn("Failed to get user from user-service", map[string]interface{}{
			"error":   err.Error(),
			"user_id": bike.UserID.String(),
		})
		owner = nil
	}

	c.JSON(http.StatusOK, GetBikeWithUserResponse{
		BikeResponse: toBikeResponse(bike),
		User:         owner,
	})
}
