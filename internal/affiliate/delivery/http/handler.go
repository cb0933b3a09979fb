package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/usecase"
	"affiliate-redirect/internal/infra/background"
	"affiliate-redirect/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxTrackClickBody bounds the beacon payload.
const maxTrackClickBody = 4 << 10

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Config holds the request-level settings of the handler
type Config struct {
	ClientIPHeader  string
	CountryHeader   string
	CORSAllowOrigin string
}

// Handler handles HTTP requests for redirects and click tracking
type Handler struct {
	service    *usecase.TrackingService
	supervisor *background.Supervisor
	cfg        Config
	logger     *zap.Logger
	db         Pinger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.TrackingService, supervisor *background.Supervisor, cfg Config, logger *zap.Logger, db Pinger) *Handler {
	return &Handler{
		service:    service,
		supervisor: supervisor,
		cfg:        cfg,
		logger:     logger,
		db:         db,
	}
}

// Redirect handles GET /go/{reference}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(chi.URLParam(r, "reference"))

	product, err := h.service.Resolve(r.Context(), reference)
	if err != nil {
		h.writeLookupError(w, r, reference, err)
		return
	}

	// Capture click context BEFORE redirect (r must not be used by the task)
	cc := h.clickContext(r)

	http.Redirect(w, r, product.DestinationURL, http.StatusMovedPermanently)

	// Fire-and-forget: the redirect has already been written
	h.supervisor.Go("record-click", func(ctx context.Context) error {
		if _, err := h.service.RecordClick(ctx, product, cc); err != nil {
			return fmt.Errorf("record click for product %d: %w", product.ID, err)
		}
		return nil
	})
}

// TrackClick handles POST /api/track-click
func (h *Handler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req TrackClickRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxTrackClickBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			problem := problemdetails.New(
				http.StatusRequestEntityTooLarge,
				problemdetails.TypePayloadTooLarge,
				"Payload Too Large",
				fmt.Sprintf("Request body must not exceed %d bytes", maxTrackClickBody),
			)
			writeProblem(w, problem)
			return
		}
		problem := problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'productId' field",
		)
		writeProblem(w, problem)
		return
	}

	if err := req.Validate(); err != nil {
		writeProblem(w, problemdetails.NewValidation(fieldErrors(err)))
		return
	}

	product, err := h.service.Resolve(r.Context(), string(req.ProductID))
	if err != nil {
		h.writeLookupError(w, r, string(req.ProductID), err)
		return
	}

	cc := h.clickContext(r)
	if req.ArticleID != nil {
		cc.ArticleParam = string(*req.ArticleID)
	}

	if _, err := h.service.RecordClick(r.Context(), product, cc); err != nil {
		h.logger.Error("failed to record click",
			zap.Int64("product_id", product.ID),
			zap.Error(err),
		)
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to track click",
		)
		writeProblem(w, problem)
		return
	}

	writeJSON(w, http.StatusOK, TrackClickResponse{Success: true})
}

// TrackClickPreflight handles OPTIONS /api/track-click
func (h *Handler) TrackClickPreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/stats/{reference}
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(chi.URLParam(r, "reference"))

	stats, err := h.service.Stats(r.Context(), reference)
	if err != nil {
		h.writeLookupError(w, r, reference, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		resp := HealthResponse{
			Status: "unavailable",
			Reason: "database unavailable: " + err.Error(),
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

func (h *Handler) clickContext(r *http.Request) usecase.ClickContext {
	return usecase.ClickContext{
		ArticleParam: r.URL.Query().Get("article"),
		UserAgent:    r.UserAgent(),
		Referrer:     r.Referer(),
		ClientIP:     clientAddress(r, h.cfg.ClientIPHeader),
		Country:      r.Header.Get(h.cfg.CountryHeader),
	}
}

// writeLookupError maps product lookup failures onto problem responses
func (h *Handler) writeLookupError(w http.ResponseWriter, r *http.Request, reference string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		problem := problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"A product reference is required",
		)
		writeProblem(w, problem.WithInstance(r.URL.Path))

	case errors.Is(err, domain.ErrProductNotFound):
		problem := problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			"Product not found: "+reference,
		)
		writeProblem(w, problem.WithInstance(r.URL.Path))

	default:
		h.logger.Error("product lookup failed",
			zap.String("reference", reference),
			zap.Error(err),
		)
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		)
		writeProblem(w, problem.WithInstance(r.URL.Path))
	}
}
