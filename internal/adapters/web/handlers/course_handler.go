package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/ports"
	"github.com/edukit/coursehub/internal/core/services/export"
)

// CourseHandler handles course CRUD and export.
type CourseHandler struct {
	Service ports.CourseService
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{
		Service: service,
	}
}

// HandleCreate creates a course owned by an existing user.
func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateCourseInput
	if !decodeJSON(w, r, &in) {
		return
	}

	course, err := h.Service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

// HandleList returns all courses with creator identity joined in.
func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// HandleExport streams the course listing as a CSV or JSON download.
func (h *CourseHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	courses, err := h.Service.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=courses.csv")
		if err := export.CoursesCSV(w, courses); err != nil {
			writeError(w, err)
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=courses.json")
		if err := export.CoursesJSON(w, courses); err != nil {
			writeError(w, err)
		}
	}
}

// HandleGet returns a single course.
func (h *CourseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	course, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// HandleUpdate applies a partial update and returns the post-update record.
func (h *CourseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in domain.UpdateCourseInput
	if !decodeJSON(w, r, &in) {
		return
	}

	course, err := h.Service.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// HandleDelete removes a course. A missing course still reports success.
func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Course deleted successfully"})
}
