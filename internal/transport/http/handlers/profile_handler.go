package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/transport/http/middleware"
	"github.com/inkwell-blog/inkwell/internal/transport/http/render"
	"github.com/inkwell-blog/inkwell/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	pageService    *service.PageService
}

func NewProfileHandler(profileService *service.ProfileService, pageService *service.PageService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		pageService:    pageService,
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	page, err := h.pageService.OwnProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Redirect(w, r, "/error", http.StatusSeeOther)
			return
		}
		log.Printf("ERROR profile page: %v", err)
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}

	render.HTML(w, http.StatusOK, "profile.html", map[string]any{
		"Error": "",
		"Page":  page,
	})
}

// UpdateProfile applies the posted fields to the user's own record. Unknown
// field names are rejected outright; empty values mean "unchanged" and are
// dropped before validation.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		if value := r.PostFormValue(name); value != "" {
			fields[name] = value
		}
	}

	if errs := validator.ValidateProfileUpdate(fields); errs.HasErrors() {
		h.rerenderProfile(w, r, userID, errs.First())
		return
	}

	if _, err := h.profileService.Update(r.Context(), userID, fields); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownField):
			http.Error(w, "invalid update property", http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailTaken):
			h.rerenderProfile(w, r, userID, "Email already taken!")
		case errors.Is(err, service.ErrUsernameTaken):
			h.rerenderProfile(w, r, userID, "Username already taken!")
		case errors.Is(err, service.ErrUserNotFound):
			http.Redirect(w, r, "/error", http.StatusSeeOther)
		default:
			log.Printf("ERROR profile update: %v", err)
			http.Error(w, "something went wrong", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ProfileHandler) rerenderProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID, message string) {
	page, err := h.pageService.OwnProfile(r.Context(), userID)
	if err != nil {
		http.Redirect(w, r, "/error", http.StatusSeeOther)
		return
	}
	render.HTML(w, http.StatusUnprocessableEntity, "profile.html", map[string]any{
		"Error": message,
		"Page":  page,
	})
}
