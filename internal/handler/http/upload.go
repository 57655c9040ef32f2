package http

import (
	"errors"
	"net/http"

	"github.com/bivekigroup/staff-backend-go/internal/handler/http/response"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/bivekigroup/staff-backend-go/internal/service/file"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type UploadHandler struct {
	fileService file.FileService
}

func NewUploadHandler(fileService file.FileService) *UploadHandler {
	return &UploadHandler{fileService: fileService}
}

// Avatar accepts a multipart "file" part and responds with the public
// URL the client then writes into the employee's avatar field.
func (h *UploadHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file", nil)
		return
	}
	defer f.Close()

	url, err := h.fileService.UploadAvatar(r.Context(), f, header.Filename)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs.ToMap())
			return
		}
		response.InternalServerError(w, "Failed to store file")
		return
	}

	response.Created(w, "Avatar uploaded", map[string]string{"url": url})
}
