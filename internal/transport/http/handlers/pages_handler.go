package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/transport/http/middleware"
	"github.com/inkwell-blog/inkwell/internal/transport/http/render"
)

type PagesHandler struct {
	pageService *service.PageService
}

func NewPagesHandler(pageService *service.PageService) *PagesHandler {
	return &PagesHandler{pageService: pageService}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	_, authenticated := middleware.UserID(r.Context())
	render.HTML(w, http.StatusOK, "home.html", map[string]any{
		"IsAuthenticated": authenticated,
	})
}

// Author shows another writer's public page. Your own id redirects to the
// dashboard instead.
func (h *PagesHandler) Author(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := middleware.UserID(r.Context())

	authorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	if viewerID == authorID {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	page, err := h.pageService.AuthorPage(r.Context(), viewerID, authorID)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			log.Printf("ERROR author page: %v", err)
		}
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	render.HTML(w, http.StatusOK, "author.html", map[string]any{
		"Page": page,
	})
}

func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	page, err := h.pageService.Dashboard(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			log.Printf("ERROR dashboard: %v", err)
		}
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	render.HTML(w, http.StatusOK, "dashboard.html", map[string]any{
		"Page": page,
	})
}

func (h *PagesHandler) Error(w http.ResponseWriter, r *http.Request) {
	render.HTML(w, http.StatusOK, "error.html", nil)
}
