package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"docmeister/internal/service"
	"docmeister/pkg/appError"

	"github.com/google/uuid"
)

type DocHandler struct {
	service service.DocService
}

func NewDocHandler(service service.DocService) *DocHandler {
	return &DocHandler{
		service: service,
	}
}

type UploadRequest struct {
	Text  string   `json:"text"`
	Pages int      `json:"pages"`
	Tags  []string `json:"tags"`
}

type UpdateRequest struct {
	// nil means the field was absent and the current tags stay as they are
	Tags *[]string `json:"tags"`
}

func (d *DocHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, appError.Internal())
		return
	}

	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, appError.BadRequest("invalid json"))
		return
	}

	doc, err := d.service.Upload(r.Context(), user, req.Text, req.Pages, req.Tags)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (d *DocHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, appError.Internal())
		return
	}

	query := r.URL.Query()
	list, err := d.service.List(r.Context(), user,
		query.Get("tags"),
		query.Get("page_size"),
		query.Get("page"),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// docIDFromPath pulls the document uuid out of /api/<op>/<uuid>. An
// unparsable id gets the same answer as a missing document.
func docIDFromPath(r *http.Request) (uuid.UUID, error) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) != 4 || parts[3] == "" {
		return uuid.Nil, appError.NotFound("document not found")
	}

	docID, err := uuid.Parse(parts[3])
	if err != nil {
		return uuid.Nil, appError.NotFound("document not found")
	}

	return docID, nil
}

func (d *DocHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, appError.Internal())
		return
	}

	docID, err := docIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, appError.BadRequest("invalid json"))
		return
	}

	doc, err := d.service.UpdateTags(r.Context(), user, docID, req.Tags)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (d *DocHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, appError.Internal())
		return
	}

	docID, err := docIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := d.service.Delete(r.Context(), user, docID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
