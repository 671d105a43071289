package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type ComponentHandler struct {
	componentService ports.ComponentService
	bikeService      ports.BikeService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type ComponentRequest struct {
	BikeID              string   `json:"bike_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	ComponentTypeID     string   `json:"component_type_id" binding:"required" example:"0b6a3c1e-0001-4000-8000-000000000001"`
	Brand               string   `json:"brand,omitempty" example:"Shimano"`
	Model               string   `json:"model,omitempty" example:"CN-HG701"`
	ReplacementDistance *float64 `json:"replacement_distance,omitempty" example:"3000"`
	CurrentDistance     *float64 `json:"current_distance,omitempty" example:"0"`
}

type UpdateComponent struct {
	Brand               *string  `json:"brand,omitempty" example:"Shimano"`
	Model               *string  `json:"model,omitempty" example:"XT"`
	ReplacementDistance *float64 `json:"replacement_distance,omitempty" example:"3500"`
}

type ReplaceComponentRequest struct {
	Cost  decimal.NullDecimal `json:"cost" swaggertype:"string" example:"24.99"`
	Notes *string             `json:"notes,omitempty" example:"Chain stretched 0.75%"`
}

type ReplaceComponentResponse struct {
	Retired     ComponentResponse         `json:"retired"`
	Replacement ComponentResponse         `json:"replacement"`
	Record      MaintenanceRecordResponse `json:"record"`
}

type ComponentHistoryResponse struct {
	BikeID          uuid.UUID                   `json:"bike_id"`
	ComponentTypeID uuid.UUID                   `json:"component_type_id"`
	Instances       []ComponentResponse         `json:"instances"`
	Records         []MaintenanceRecordResponse `json:"records"`
}

func NewComponentHandler(
	componentService ports.ComponentService,
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
		bikeService:      bikeService,
		logger:           logger,
		metrics:          metrics,
	}
}

// ownedComponent loads a component and checks the caller owns its bike.
func (h *ComponentHandler) ownedComponent(c *gin.Context, payload *domain.TokenPayload, componentID string) (*domain.BikeComponent, bool) {
	component, err := h.componentService.GetComponentByID(c.Request.Context(), componentID)
	if err != nil {
		handleServiceError(c, err, "Failed to get component")
		return nil, false
	}
	if _, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, component.BikeID.String()); !ok {
		return nil, false
	}
	return component, true
}

// @Summary Добавить компонент
// @Description Установка компонента на байк. Дистанция замены по умолчанию берется из каталога
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ComponentRequest true "Данные компонента"
// @Success 201 {object} ComponentResponse "Компонент создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк или тип не найден"
// @Failure 409 {object} errorResponse "Активный компонент этого типа уже есть"
// @Router /components [post]
func (h *ComponentHandler) AddComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to AddComponent", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add component", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if _, ok := loadOwnedBike(c, h.bikeService, h.logger, payload, req.BikeID); !ok {
		return
	}

	component, err := h.componentService.AddComponent(c.Request.Context(), domain.AddComponentInput{
		BikeID:              req.BikeID,
		ComponentTypeID:     req.ComponentTypeID,
		Brand:               req.Brand,
		Model:               req.Model,
		ReplacementDistance: req.ReplacementDistance,
		CurrentDistance:     req.CurrentDistance,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to add component")
		return
	}

	c.JSON(http.StatusCreated, toComponentResponse(component))
}

// @Summary Получить компонент
// @Description Компонент с текущим износом
// @Tags components
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID компонента"
// @Success 200 {object} ComponentResponse "Компонент"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Компонент не найден"
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	component, ok := h.ownedComponent(c, payload, c.Param("id"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toComponentResponse(component))
}

// @Summary Обновить компонент
// @Description Бренд, модель и дистанция замены
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID компонента"
// @Param request body UpdateComponent true "Данные для обновления"
// @Success 200 {object} ComponentResponse "Компонент обновлен"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Компонент не найден"
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := h.ownedComponent(c, payload, componentID); !ok {
		return
	}

	var req UpdateComponent
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update component", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.componentService.UpdateComponent(c.Request.Context(), domain.UpdateComponentInput{
		ComponentID:         componentID,
		Brand:               req.Brand,
		Model:               req.Model,
		ReplacementDistance: req.ReplacementDistance,
	})
	if err != nil {
		handleServiceError(c, err, "Update failed")
		return
	}

	c.JSON(http.StatusOK, toComponentResponse(updated))
}

// @Summary Заменить компонент
// @Description Выводит компонент из эксплуатации и ставит новый того же типа на текущем пробеге байка
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID активного компонента"
// @Param request body ReplaceComponentRequest false "Стоимость и заметки"
// @Success 201 {object} ReplaceComponentResponse "Компонент заменен"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Активный компонент не найден"
// @Failure 502 {object} errorResponse "Ошибка хранилища"
// @Router /components/{id}/replace [post]
func (h *ComponentHandler) ReplaceComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := h.ownedComponent(c, payload, componentID); !ok {
		return
	}

	var req ReplaceComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("Failed JSON parse in replace component", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	result, err := h.componentService.ReplaceComponent(c.Request.Context(), domain.ReplaceComponentInput{
		ComponentID: componentID,
		Cost:        req.Cost,
		Notes:       req.Notes,
	})
	if err != nil {
		handleServiceError(c, err, "Replace failed")
		return
	}

	c.JSON(http.StatusCreated, ReplaceComponentResponse{
		Retired:     toComponentResponse(result.Retired),
		Replacement: toComponentResponse(result.Replacement),
		Record:      toRecordResponse(result.Record),
	})
}

// @Summary История компонента
// @Description Все экземпляры типа компонента на байке и записи их замен
// @Tags components
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка"
// @Param typeId path string true "ID типа компонента"
// @Success 200 {object} ComponentHistoryResponse "История"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк или тип не найден"
// @Router /bikes/{id}/components/{typeId}/history [get]
func (h *ComponentHandler) GetComponentHistory(c *gin.Context) {
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

	history, err := h.componentService.GetComponentHistory(c.Request.Context(), bikeID, c.Param("typeId"))
	if err != nil {
		handleServiceError(c, err, "Failed to get component history")
		return
	}

	c.JSON(http.StatusOK, ComponentHistoryResponse{
		BikeID:          history.BikeID,
		ComponentTypeID: history.ComponentTypeID,
		Instances:       toComponentResponses(history.Instances),
		Records:         toRecordResponses(history.Records),
	})
}
