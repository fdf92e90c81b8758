package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/audit"
	"github.com/ttsbooking/consult-platform/internal/cache"
	catalogdomain "github.com/ttsbooking/consult-platform/internal/domain/catalog"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/httpresp"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	"github.com/ttsbooking/consult-platform/internal/models"
)

type ServiceHandler struct {
	catalog catalogdomain.Repository
	cache   *cache.ServiceCache
	audit   *audit.Dispatcher
}

func NewServiceHandler(
	catalog catalogdomain.Repository,
	serviceCache *cache.ServiceCache,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		catalog: catalog,
		cache:   serviceCache,
		audit:   audit,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	ConsultantID uint    `json:"consultant_id" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration" binding:"required,min=1"`
	Price        float64 `json:"price" binding:"required"`
	Category     string  `json:"category"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if items, ok := h.cache.GetServices(ctx); ok {
		httpresp.OK(c, gin.H{"services": items})
		return
	}

	items, err := h.catalog.ListActiveServices(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Server error.")
		return
	}

	h.cache.SetServices(ctx, items)

	httpresp.OK(c, gin.H{"services": items})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	detail, err := h.catalog.GetActiveService(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"service": detail})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p := middleware.MustPrincipal(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing required fields.")
		return
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = models.DefaultServiceCategory
	}

	service := models.Service{
		ConsultantID: req.ConsultantID,
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		Price:        req.Price,
		Category:     category,
		IsActive:     true,
	}

	if err := h.catalog.CreateService(c.Request.Context(), &service); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Server error.")
		return
	}

	h.cache.InvalidateServices(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, gin.H{
		"message":    "Service created.",
		"service_id": service.ID,
	})
}
