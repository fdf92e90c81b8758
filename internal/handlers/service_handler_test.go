package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/internal/auth"
	catalogdomain "github.com/ttsbooking/consult-platform/internal/domain/catalog"
	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/handlers"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	"github.com/ttsbooking/consult-platform/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeCatalogRepo struct {
	services    []dto.ServiceListItem
	details     map[uint]*dto.ServiceDetail
	consultants map[uint]*models.Consultant

	createdServices []*models.Service
	avatarUpdates   map[uint]string
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		details:       make(map[uint]*dto.ServiceDetail),
		consultants:   make(map[uint]*models.Consultant),
		avatarUpdates: make(map[uint]string),
	}
}

func (f *fakeCatalogRepo) ListActiveServices(_ context.Context) ([]dto.ServiceListItem, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) GetActiveService(_ context.Context, id uint) (*dto.ServiceDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, catalogdomain.ErrNotFound
	}
	return d, nil
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, s *models.Service) error {
	s.ID = uint(len(f.createdServices) + 1)
	f.createdServices = append(f.createdServices, s)
	return nil
}

func (f *fakeCatalogRepo) ListConsultants(_ context.Context) ([]models.Consultant, error) {
	out := make([]models.Consultant, 0, len(f.consultants))
	for _, c := range f.consultants {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetConsultant(_ context.Context, id uint) (*models.Consultant, error) {
	c, ok := f.consultants[id]
	if !ok {
		return nil, catalogdomain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCatalogRepo) UpdateConsultantAvatar(_ context.Context, id uint, avatarURL string) error {
	if _, ok := f.consultants[id]; !ok {
		return catalogdomain.ErrNotFound
	}
	f.avatarUpdates[id] = avatarURL
	return nil
}

var _ catalogdomain.Repository = (*fakeCatalogRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func serviceRouter(repo catalogdomain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewServiceHandler(repo, nil, nil)

	r := gin.New()
	r.GET("/api/services", h.List)
	r.GET("/api/services/:id", h.Get)
	r.POST("/api/services", asConsultant(7), h.Create)
	return r
}

// asConsultant injects an authenticated consultant so handlers behind
// auth middleware can be tested without minting tokens.
func asConsultant(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, auth.Principal{
			UserID: id,
			Email:  "consultant@example.com",
			Role:   models.RoleConsultant,
		})
		c.Next()
	}
}

// ======================================================
// TESTS
// ======================================================

func TestListServices(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.services = []dto.ServiceListItem{
		{ID: 1, Title: "Tax review", ConsultantName: "Ana Silva", Price: 150},
		{ID: 2, Title: "Career coaching", ConsultantName: "Bruno Costa", Price: 90},
	}
	r := serviceRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool                  `json:"success"`
		Services []dto.ServiceListItem `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Services, 2)
	require.Equal(t, "Ana Silva", body.Services[0].ConsultantName)
}

func TestGetService(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.details[5] = &dto.ServiceDetail{ID: 5, Title: "Tax review", ConsultantBio: "20 years of practice"}
	r := serviceRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/services/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "20 years of practice")
}

func TestGetService_NotFound(t *testing.T) {
	r := serviceRouter(newFakeCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/services/404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "service_not_found")
}

func TestGetService_BadID(t *testing.T) {
	r := serviceRouter(newFakeCatalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/services/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_service_id")
}

func TestCreateService(t *testing.T) {
	repo := newFakeCatalogRepo()
	r := serviceRouter(repo)

	w := postJSON(r, "/api/services", gin.H{
		"consultant_id": 7,
		"title":         "Tax review",
		"duration":      60,
		"price":         150.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ServiceID uint `json:"service_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, uint(1), body.ServiceID)

	require.Len(t, repo.createdServices, 1)
	created := repo.createdServices[0]
	require.Equal(t, models.DefaultServiceCategory, created.Category)
	require.True(t, created.IsActive)
}

func TestCreateService_MissingFields(t *testing.T) {
	repo := newFakeCatalogRepo()
	r := serviceRouter(repo)

	w := postJSON(r, "/api/services", gin.H{"title": "No price"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing_fields")
	require.Empty(t, repo.createdServices)
}
