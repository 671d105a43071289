package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type ComponentTypeRequest struct {
	Name                       string  `json:"name" binding:"required,max=100" example:"Chain"`
	DefaultReplacementDistance float64 `json:"default_replacement_distance" binding:"required,gt=0" example:"3000"`
}

type ListComponentTypesResponse struct {
	ComponentTypes []*domain.ComponentType `json:"component_types"`
	Count          int                     `json:"count"`
}

func NewCatalogHandler(catalogService ports.CatalogService, logger ports.LoggerPort, metrics ports.MetricsPort) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Каталог компонентов
// @Tags component-types
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListComponentTypesResponse "Типы компонентов"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /component-types [get]
func (h *CatalogHandler) ListComponentTypes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	types, err := h.catalogService.ListComponentTypes(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list component types")
		return
	}

	c.JSON(http.StatusOK, ListComponentTypesResponse{
		ComponentTypes: types,
		Count:          len(types),
	})
}

// @Summary Тип компонента
// @Tags component-types
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID типа компонента"
// @Success 200 {object} domain.ComponentType "Тип компонента"
// @Failure 404 {object} errorResponse "Тип не найден"
// @Router /component-types/{id} [get]
func (h *CatalogHandler) GetComponentType(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentType, err := h.catalogService.GetComponentType(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get component type")
		return
	}

	c.JSON(http.StatusOK, componentType)
}

// @Summary Создать тип компонента
// @Description Только для администраторов
// @Tags component-types
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ComponentTypeRequest true "Тип компонента"
// @Success 201 {object} domain.ComponentType "Тип создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 409 {object} errorResponse "Имя уже занято"
// @Router /component-types [post]
func (h *CatalogHandler) CreateComponentType(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !payload.IsAdmin() {
		h.logger.Warn("Non-admin attempted to create component type", map[string]interface{}{
			"requester_id": payload.UserID.String(),
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return
	}

	var req ComponentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	created, err := h.catalogService.CreateComponentType(c.Request.Context(), &domain.ComponentType{
		Name:                       req.Name,
		DefaultReplacementDistance: req.DefaultReplacementDistance,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create component type")
		return
	}

	c.JSON(http.StatusCreated, created)
}
