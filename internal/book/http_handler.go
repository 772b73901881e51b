package book

import (
	"net/http"
	"strings"

	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type addForm struct {
	Title       string  `form:"title" validate:"required,notblank,utf8,max=200"`
	PublisherID int64   `form:"publisher_id" validate:"required,gt=0"`
	AuthorIDs   []int64 `form:"author_ids" validate:"dive,gt=0"`
}

// Add handles POST /livro
// @Summary Add a book
// @Tags books
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Book title"
// @Param publication_date formData string false "Publication date (YYYY-MM-DD or RFC 3339)"
// @Param publisher_id formData int true "Publisher ID"
// @Param author_ids formData []int false "Author IDs"
// @Success 200 {object} View
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /livro [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := httpx.ParseForm(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, "Invalid form body", nil)
		return
	}

	publisherID, err := httpx.FormInt64(r, "publisher_id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, err.Error(), nil)
		return
	}
	authorIDs, err := formAuthorIDs(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, err.Error(), nil)
		return
	}
	publicationDate, err := httpx.FormTime(r, "publication_date")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, err.Error(), nil)
		return
	}

	form := addForm{
		Title:       r.FormValue("title"),
		PublisherID: publisherID,
		AuthorIDs:   authorIDs,
	}
	if details := httpx.ValidateStruct(form); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, httpx.DetailsMessage(details), details)
		return
	}

	b, err := h.service.Add(r.Context(), Draft{
		Title:           form.Title,
		PublicationDate: publicationDate,
		PublisherID:     form.PublisherID,
		AuthorIDs:       form.AuthorIDs,
	})
	if err != nil {
		httpx.WriteError(w, err, ErrNotSaved.Message)
		return
	}
	httpx.JSONSuccess(w, Present(b))
}

// formAuthorIDs accepts both author_ids and author_ids[].
func formAuthorIDs(r *http.Request) ([]int64, error) {
	ids, err := httpx.FormInt64List(r, "author_ids")
	if err != nil {
		return nil, err
	}
	bracketed, err := httpx.FormInt64List(r, "author_ids[]")
	if err != nil {
		return nil, err
	}
	return append(ids, bracketed...), nil
}

// List handles GET /livros
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {object} map[string][]View
// @Router /livros [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, map[string][]View{"books": PresentAll(books)})
}

// Find handles GET /livro
// @Summary Find a book by title
// @Tags books
// @Produce json
// @Param title query string true "Exact book title"
// @Success 200 {object} View
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /livro [get]
func (h *HTTPHandler) Find(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if strings.TrimSpace(title) == "" {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, "title is required", nil)
		return
	}

	b, err := h.service.FindByTitle(r.Context(), title)
	if err != nil {
		httpx.WriteError(w, err, ErrNotLoaded.Message)
		return
	}
	httpx.JSONSuccess(w, Present(b))
}

// Delete handles DELETE /livro
// @Summary Delete a book by title
// @Tags books
// @Produce json
// @Param title query string true "Book title, percent-encoded at most twice"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /livro [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("title")
	if strings.TrimSpace(raw) == "" {
		httpx.JSONError(w, http.StatusBadRequest, httpx.CodeValidation, "title is required", nil)
		return
	}

	title, err := h.service.DeleteByTitle(r.Context(), raw)
	if err != nil {
		httpx.WriteError(w, err, ErrNotDeleted.Message)
		return
	}
	httpx.JSONSuccess(w, httpx.MessageResponse{Message: "book removed", Title: title})
}
