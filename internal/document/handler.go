package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"charity/internal/platform/middleware"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

// MaxUploadBytes caps a single document.
const MaxUploadBytes = 10 << 20

const formField = "document"

type Store interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}

type uploadResponse struct {
	Document string `json:"document"`
}

// Handler accepts multipart uploads and returns the stored path.
type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterBeneficiary mounts the beneficiary upload route.
func (h *Handler) RegisterBeneficiary(r chi.Router) {
	r.With(middleware.RequireBeneficiaryAccess("pk", h.logger)).
		Post("/beneficiary/{pk}/documents/", h.handleBeneficiaryUpload)
}

// RegisterCharity mounts the charity upload route. r must already require
// a staff or charity principal.
func (h *Handler) RegisterCharity(r chi.Router) {
	r.Post("/documents/", h.handleCharityUpload)
}

// Serve returns a handler for GET /request_docs/* backed by dir.
func Serve(dir string) http.Handler {
	return http.StripPrefix("/"+PublicPrefix+"/", http.FileServer(http.Dir(dir)))
}

func (h *Handler) handleBeneficiaryUpload(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, "beneficiaries/"+chi.URLParam(r, "pk"))
}

func (h *Handler) handleCharityUpload(w http.ResponseWriter, r *http.Request) {
	folder := "staff"
	if p, ok := requestcontext.PrincipalFrom(r.Context()); ok && !p.IsStaff() {
		folder = "charities/" + strconv.FormatInt(p.CharityID, 10)
	}
	h.upload(w, r, folder)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request, folder string) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes+1<<20)
	file, header, err := r.FormFile(formField)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid document upload", "request_id", requestID, "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "document: The file may not exceed 10 MB."))
			return
		}
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "document: No file was submitted."))
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "document: The file may not exceed 10 MB."))
		return
	}
	if header.Size == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "document: The submitted file is empty."))
		return
	}

	stored, err := h.store.Save(ctx, folder, header.Filename, file)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to store document",
			"request_id", requestID,
			"folder", folder,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "document stored", "request_id", requestID, "path", stored, "bytes", header.Size)
	httputil.WriteJSON(w, http.StatusCreated, uploadResponse{Document: stored})
}
