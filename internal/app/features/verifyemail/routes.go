package verifyemail

import (
	"github.com/go-chi/chi/v5"

	"github.com/facilitiease/facilitiease/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Post("/", h.ServeIssue)
	r.Post("/confirm", h.ServeConfirm)
	return r
}
