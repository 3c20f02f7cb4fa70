package uploads

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/storage"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// allowedImageTypes are the sniffed content types we accept. The client's
// declared type is ignored; only the bytes decide.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Handler stores facility images and hands back their URL.
type Handler struct {
	Store storage.Store
	Errs  *webapi.ErrorLogger
	Log   *zap.Logger
}

func NewHandler(store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Errs:  webapi.NewErrorLogger(logger),
		Log:   logger,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// ServeUpload handles POST /uploads. The multipart field is named "image".
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.Errs.BadRequest(w, r, "upload: parse multipart", err, "Upload must be multipart form data under 10MB.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.Errs.BadRequest(w, r, "upload: missing image field", err, `Multipart field "image" is required.`)
		return
	}
	defer file.Close()

	// Sniff the real content type from the first bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		h.Errs.Internal(w, r, "upload: read file head", err)
		return
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		webapi.Error(w, webapi.CodeValidation, "Only JPEG, PNG, WebP, and GIF images are accepted.")
		return
	}

	// Random object name; never trust the client's filename.
	objectPath := path.Join("facilities", uuid.NewString()+ext)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	body := io.MultiReader(bytes.NewReader(head), file)
	if err := h.Store.Put(ctx, objectPath, body, &storage.PutOptions{ContentType: contentType}); err != nil {
		h.Errs.Internal(w, r, "upload: store object", err)
		return
	}

	h.Log.Info("image uploaded",
		zap.String("account_id", user.ID),
		zap.String("path", objectPath),
		zap.String("content_type", contentType),
		zap.String("original_name", sanitizeFilename(header.Filename)))

	webapi.JSON(w, http.StatusOK, uploadResponse{URL: h.Store.URL(objectPath)})
}

// sanitizeFilename keeps the client's name loggable without path tricks.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if len(name) > 128 {
		name = name[:128]
	}
	return name
}
