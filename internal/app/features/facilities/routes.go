package facilities

import (
	"github.com/go-chi/chi/v5"

	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleServiceProvider))
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	return r
}
