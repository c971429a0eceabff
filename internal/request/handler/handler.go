// Package handler exposes requests and their sub-records over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity/internal/platform/middleware"
	"charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/platform/httputil"
	"charity/pkg/requestcontext"
)

// Service is the request service as seen by HTTP handlers.
type Service interface {
	Layer1s(ctx context.Context) ([]models.Layer1, error)
	Layer2s(ctx context.Context, layer1ID int64) ([]models.Layer2, error)
	CreateLayer2(ctx context.Context, req *models.Layer2Request) (*models.Layer2, error)

	Create(ctx context.Context, actor models.Actor, beneficiaryID int64, req *models.CreateRequest) (*models.Request, error)
	Get(ctx context.Context, actor models.Actor, id int64) (*models.Detail, error)
	Update(ctx context.Context, actor models.Actor, id int64, req *models.UpdateRequest) (*models.Request, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
	ChangeStage(ctx context.Context, actor models.Actor, id int64, stage string) (*models.Request, error)

	ListForBeneficiary(ctx context.Context, actor models.Actor, q models.ListQuery, p pagination.Params) (pagination.Page[models.Request], error)
	List(ctx context.Context, actor models.Actor, q models.ListQuery, p pagination.Params) (pagination.Page[models.Request], error)
	ListNew(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error)
	ListOldOnetime(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error)
	ListOldOngoing(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error)

	CreateOnetime(ctx context.Context, actor models.Actor, requestID int64, req *models.OnetimeRequest) (*models.Onetime, error)
	UpdateOnetime(ctx context.Context, actor models.Actor, requestID int64, req *models.OnetimeRequest) (*models.Onetime, error)
	DeleteOnetime(ctx context.Context, actor models.Actor, requestID int64) error
	CreateRecurring(ctx context.Context, actor models.Actor, requestID int64, req *models.RecurringRequest) (*models.Recurring, error)
	UpdateRecurring(ctx context.Context, actor models.Actor, requestID int64, req *models.RecurringRequest) (*models.Recurring, error)
	DeleteRecurring(ctx context.Context, actor models.Actor, requestID int64) error

	Histories(ctx context.Context, actor models.Actor, requestID int64) ([]models.History, error)
	History(ctx context.Context, actor models.Actor, requestID, id int64) (*models.History, error)
	CreateHistory(ctx context.Context, actor models.Actor, requestID int64, req *models.HistoryRequest) (*models.History, error)
	UpdateHistory(ctx context.Context, actor models.Actor, requestID, id int64, req *models.HistoryRequest) (*models.History, error)
	DeleteHistory(ctx context.Context, actor models.Actor, requestID, id int64) error

	Children(ctx context.Context, actor models.Actor, requestID int64) ([]models.Child, error)
	Child(ctx context.Context, actor models.Actor, requestID, id int64) (*models.Child, error)
	CreateChild(ctx context.Context, actor models.Actor, requestID int64, req *models.ChildRequest) (*models.Child, error)
	UpdateChild(ctx context.Context, actor models.Actor, requestID, id int64, req *models.ChildRequest) (*models.Child, error)
	DeleteChild(ctx context.Context, actor models.Actor, requestID, id int64) error
	ChangeChildStage(ctx context.Context, actor models.Actor, requestID, id int64, stage string) (*models.Child, error)
}

// scopeFunc resolves who is acting on the request being served.
type scopeFunc func(w http.ResponseWriter, r *http.Request) (models.Actor, bool)

// base holds the handlers shared by the beneficiary and charity route trees.
type base struct {
	service Service
	logger  *slog.Logger
	scope   scopeFunc
}

func (b *base) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	args := append([]any{"request_id", middleware.GetRequestID(ctx), "error", err}, attrs...)
	b.logger.WarnContext(ctx, msg, args...)
	httputil.WriteError(w, err)
}

// principalActor maps staff and charity callers to a charity-side actor.
func principalActor(ctx context.Context) (models.Actor, bool) {
	p, ok := requestcontext.PrincipalFrom(ctx)
	if !ok || !p.IsStaffOrCharity() {
		return models.Actor{}, false
	}
	if p.IsStaff() {
		return models.CharityActor(0), true
	}
	return models.CharityActor(p.CharityID), true
}

// target resolves the actor plus the request id and, when name is set, one more path id.
func (b *base) target(w http.ResponseWriter, r *http.Request, name string) (models.Actor, int64, int64, bool) {
	actor, ok := b.scope(w, r)
	if !ok {
		return models.Actor{}, 0, 0, false
	}
	requestID, err := httputil.PathID(r, "rid")
	if err != nil {
		httputil.WriteError(w, err)
		return models.Actor{}, 0, 0, false
	}
	if name == "" {
		return actor, requestID, 0, true
	}
	id, err := httputil.PathID(r, name)
	if err != nil {
		httputil.WriteError(w, err)
		return models.Actor{}, 0, 0, false
	}
	return actor, requestID, id, true
}

func (b *base) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	d, err := b.service.Get(ctx, actor, rid)
	if err != nil {
		b.fail(ctx, w, "failed to load request", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, d)
}

func (b *base) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	updated, err := b.service.Update(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to update request", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (b *base) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	if err := b.service.Delete(ctx, actor, rid); err != nil {
		b.fail(ctx, w, "failed to delete request", err, "request", rid)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *base) handleCreateOnetime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.OnetimeRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	o, err := b.service.CreateOnetime(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to create onetime info", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, o)
}

func (b *base) handleUpdateOnetime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.OnetimeRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	o, err := b.service.UpdateOnetime(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to update onetime info", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}

func (b *base) handleDeleteOnetime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	if err := b.service.DeleteOnetime(ctx, actor, rid); err != nil {
		b.fail(ctx, w, "failed to delete onetime info", err, "request", rid)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *base) handleCreateRecurring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RecurringRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	rec, err := b.service.CreateRecurring(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to create recurring info", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, rec)
}

func (b *base) handleUpdateRecurring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RecurringRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	rec, err := b.service.UpdateRecurring(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to update recurring info", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (b *base) handleDeleteRecurring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	if err := b.service.DeleteRecurring(ctx, actor, rid); err != nil {
		b.fail(ctx, w, "failed to delete recurring info", err, "request", rid)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *base) handleListHistories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	out, err := b.service.Histories(ctx, actor, rid)
	if err != nil {
		b.fail(ctx, w, "failed to list histories", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (b *base) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, hid, ok := b.target(w, r, "hid")
	if !ok {
		return
	}
	h, err := b.service.History(ctx, actor, rid, hid)
	if err != nil {
		b.fail(ctx, w, "failed to load history", err, "request", rid, "history", hid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h)
}

func (b *base) handleListChildren(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	out, err := b.service.Children(ctx, actor, rid)
	if err != nil {
		b.fail(ctx, w, "failed to list child requests", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (b *base) handleCreateChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, _, ok := b.target(w, r, "")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ChildRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	c, err := b.service.CreateChild(ctx, actor, rid, req)
	if err != nil {
		b.fail(ctx, w, "failed to create child request", err, "request", rid)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (b *base) handleGetChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, cid, ok := b.target(w, r, "cid")
	if !ok {
		return
	}
	c, err := b.service.Child(ctx, actor, rid, cid)
	if err != nil {
		b.fail(ctx, w, "failed to load child request", err, "request", rid, "child", cid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (b *base) handleUpdateChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, cid, ok := b.target(w, r, "cid")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ChildRequest](w, r, b.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	c, err := b.service.UpdateChild(ctx, actor, rid, cid, req)
	if err != nil {
		b.fail(ctx, w, "failed to update child request", err, "request", rid, "child", cid)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (b *base) handleDeleteChild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, rid, cid, ok := b.target(w, r, "cid")
	if !ok {
		return
	}
	if err := b.service.DeleteChild(ctx, actor, rid, cid); err != nil {
		b.fail(ctx, w, "failed to delete child request", err, "request", rid, "child", cid)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// registerShared mounts the routes both trees expose under prefix.
func (b *base) registerShared(r chi.Router, prefix string) {
	r.Get(prefix+"/{rid}/", b.handleGet)
	r.Put(prefix+"/{rid}/", b.handleUpdate)
	r.Patch(prefix+"/{rid}/", b.handleUpdate)
	r.Delete(prefix+"/{rid}/", b.handleDelete)

	r.Post(prefix+"/{rid}/onetime/", b.handleCreateOnetime)
	r.Put(prefix+"/{rid}/onetime/", b.handleUpdateOnetime)
	r.Delete(prefix+"/{rid}/onetime/", b.handleDeleteOnetime)
	r.Post(prefix+"/{rid}/recurring/", b.handleCreateRecurring)
	r.Put(prefix+"/{rid}/recurring/", b.handleUpdateRecurring)
	r.Delete(prefix+"/{rid}/recurring/", b.handleDeleteRecurring)

	r.Get(prefix+"/{rid}/histories/", b.handleListHistories)
	r.Get(prefix+"/{rid}/histories/{hid}/", b.handleGetHistory)

	r.Get(prefix+"/{rid}/children/", b.handleListChildren)
	r.Post(prefix+"/{rid}/children/", b.handleCreateChild)
	r.Get(prefix+"/{rid}/children/{cid}/", b.handleGetChild)
	r.Put(prefix+"/{rid}/children/{cid}/", b.handleUpdateChild)
	r.Delete(prefix+"/{rid}/children/{cid}/", b.handleDeleteChild)
}

// BeneficiaryHandler serves /beneficiary-platform/beneficiary/{pk}/requests/...
type BeneficiaryHandler struct {
	base
}

func NewBeneficiaryHandler(service Service, logger *slog.Logger) *BeneficiaryHandler {
	h := &BeneficiaryHandler{base{service: service, logger: logger}}
	h.scope = beneficiaryScope
	return h
}

// beneficiaryScope acts for the beneficiary in the path. Staff and charities
// reaching these routes keep their charity-side rights, narrowed to that
// beneficiary.
func beneficiaryScope(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	beneficiaryID, err := httputil.PathID(r, "pk")
	if err != nil {
		httputil.WriteError(w, err)
		return models.Actor{}, false
	}
	if actor, ok := principalActor(r.Context()); ok {
		actor.BeneficiaryID = beneficiaryID
		return actor, true
	}
	return models.BeneficiaryActor(beneficiaryID), true
}

func (h *BeneficiaryHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBeneficiaryAccess("pk", h.logger))

		r.Post("/beneficiary/{pk}/requests/", h.handleCreate)
		r.Get("/beneficiary/{pk}/requests/", h.handleList)
		h.registerShared(r, "/beneficiary/{pk}/requests")
	})
}

func (h *BeneficiaryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.scope(w, r)
	if !ok {
		return
	}
	beneficiaryID, _ := httputil.PathID(r, "pk")
	req, ok := httputil.DecodeAndPrepare[models.CreateRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	created, err := h.service.Create(ctx, actor, beneficiaryID, req)
	if err != nil {
		h.fail(ctx, w, "failed to create request", err, "beneficiary_id", beneficiaryID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *BeneficiaryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.scope(w, r)
	if !ok {
		return
	}
	p, err := httputil.PageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.service.ListForBeneficiary(ctx, actor, listQuery(r), p)
	if err != nil {
		h.fail(ctx, w, "failed to list requests", err, "beneficiary_id", actor.BeneficiaryID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func listQuery(r *http.Request) models.ListQuery {
	q := r.URL.Query()
	return models.ListQuery{
		Search:   q.Get("search"),
		Group:    q.Get("group"),
		Ordering: q.Get("ordering"),
	}
}

// LookupHandler serves the request type and choice lookups.
type LookupHandler struct {
	service Service
	logger  *slog.Logger
}

func NewLookupHandler(service Service, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{service: service, logger: logger}
}

func (h *LookupHandler) Register(r chi.Router) {
	r.Get("/lookups/request-type-layer1/", h.handleLayer1)
	r.Get("/lookups/request-type-layer2/", h.handleLayer2)
	r.Post("/lookups/request-type-layer2/", h.handleCreateLayer2)
	r.Get("/lookups/processing-stages/", h.handleStages)
	r.Get("/lookups/durations/", h.handleDurations)
}

func (h *LookupHandler) handleLayer1(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Layer1s(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *LookupHandler) handleLayer2(w http.ResponseWriter, r *http.Request) {
	layer1ID, err := httputil.QueryID(r, "layer1")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out, err := h.service.Layer2s(r.Context(), layer1ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// handleCreateLayer2 is staff only.
func (h *LookupHandler) handleCreateLayer2(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if p, ok := requestcontext.PrincipalFrom(ctx); !ok || !p.IsStaff() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.Layer2Request](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	l, err := h.service.CreateLayer2(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to create request type", "request_id", middleware.GetRequestID(ctx), "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, l)
}

func (h *LookupHandler) handleStages(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.StageChoices())
}

func (h *LookupHandler) handleDurations(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.DurationChoices())
}
