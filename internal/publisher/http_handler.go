package publisher

import (
	"net/http"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type addForm struct {
	Name string `form:"name" validate:"required,notblank,utf8,max=100"`
}

// Add handles POST /editora
// @Summary Add a publisher
// @Tags publishers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Publisher name"
// @Success 200 {object} View
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /editora [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, "Invalid form body", nil)
		return
	}

	form := addForm{Name: r.FormValue("name")}
	if details := httpx.ValidateStruct(form); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, httpx.DetailsMessage(details), details)
		return
	}

	a, err := h.service.Add(r.Context(), form.Name)
	if err != nil {
		httpx.WriteError(w, err, ErrNotSaved.Message)
		return
	}
	httpx.JSONSuccess(w, Present(a))
}

// List handles GET /editoras
// @Summary List publishers
// @Tags publishers
// @Produce json
// @Success 200 {object} map[string][]View
// @Router /editoras [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, map[string][]View{"publishers": PresentAll(publishers)})
}
