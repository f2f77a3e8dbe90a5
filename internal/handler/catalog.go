package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shorajtomer/portfolio-backend/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Root handles GET /.
func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"message": "Shoraj Tomer Portfolio API"})
}

// PersonalInfo handles GET /api/personal-info.
func (h *CatalogHandler) PersonalInfo(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.svc.PersonalInfo())
}

// ListCourses handles GET /api/courses.
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.ListCourses(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/courses/{id}.
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.svc.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, course)
}

// Packages handles GET /api/packages.
func (h *CatalogHandler) Packages(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.svc.Packages())
}
