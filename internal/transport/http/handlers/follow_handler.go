package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/service"
	"github.com/inkwell-blog/inkwell/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, h.followService.Follow)
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, h.followService.Unfollow)
}

func (h *FollowHandler) edit(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, followerID, targetID uuid.UUID) (*domain.User, error)) {
	userID, _ := middleware.UserID(r.Context())

	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid user id")
		return
	}

	if _, err := op(r.Context(), userID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			writeError(w, http.StatusUnprocessableEntity, "cannot follow yourself")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusUnprocessableEntity, "user not found")
		default:
			log.Printf("ERROR follow edit: %v", err)
			writeError(w, http.StatusUnprocessableEntity, "could not update follow state")
		}
		return
	}

	http.Redirect(w, r, "/author/"+targetID.String(), http.StatusSeeOther)
}
