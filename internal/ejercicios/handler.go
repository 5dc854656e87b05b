package ejercicios

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/decode"
	"github.com/JaimeStill/gym-rutinas/pkg/handlers"
	"github.com/JaimeStill/gym-rutinas/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes spans two path roots: adding nests under the owning routine while
// update and delete address the exercise directly.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags:        []string{"Ejercicios"},
		Description: "Gestión de ejercicios individuales",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/rutinas/{id}/ejercicios", Handler: h.Add, OpenAPI: Spec.Add},
			{Method: "PUT", Pattern: "/ejercicios/{id}", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "/ejercicios/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	rutinaID, err := decode.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	cmd, err := decode.JSON[CreateEjercicioCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.sys.Add(r.Context(), rutinaID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := decode.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	cmd, err := decode.JSON[UpdateEjercicioCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := decode.PathID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
