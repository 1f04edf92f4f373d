package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

const dotContentType = "text/vnd.graphviz"

type Handler struct {
	service service.Service
	logger  *zap.Logger
}

func NewHandler(s service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/v1/phone/{number}", h.CheckRisk)

	r.Post("/v1/reports", h.CreateReport)
	r.Get("/v1/reports/top", h.TopSpam)

	r.Route("/v1/users/{user}", func(r chi.Router) {
		r.Get("/blocked", h.ListBlocked)
		r.Post("/blocked", h.Block)
		r.Delete("/blocked/{number}", h.Unblock)
		r.Get("/graph", h.Graph)
	})
}

func (h *Handler) CheckRisk(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.service.Check(r.Context(), chi.URLParam(r, "number"), r.URL.Query().Get("word"))
	if err != nil {
		h.fail(w, "Check", err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.service.Report(r.Context(), req.PhoneNumber)
	if err != nil {
		h.fail(w, "Report", err)
		return
	}

	writeJSON(w, http.StatusAccepted, receipt)
}

func (h *Handler) TopSpam(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	top, err := h.service.TopSpam(r.Context(), limit)
	if err != nil {
		h.fail(w, "TopSpam", err)
		return
	}

	writeJSON(w, http.StatusOK, TopSpamResponse{Numbers: top})
}

func (h *Handler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	blocked, err := h.service.ListBlocked(r.Context(), user)
	if err != nil {
		h.fail(w, "ListBlocked", err)
		return
	}

	writeJSON(w, http.StatusOK, BlockedListResponse{Owner: h.service.NormalizeNumber(user), Blocked: blocked})
}

func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.service.Block(r.Context(), chi.URLParam(r, "user"), req.PhoneNumber)
	if err != nil {
		h.fail(w, "Block", err)
		return
	}

	status := http.StatusCreated
	if !added {
		status = http.StatusOK
	}
	writeJSON(w, status, BlockResponse{PhoneNumber: h.service.NormalizeNumber(req.PhoneNumber), AlreadyBlocked: !added})
}

func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if err := h.service.Unblock(r.Context(), chi.URLParam(r, "user"), number); err != nil {
		h.fail(w, "Unblock", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unblocked", "phone_number": h.service.NormalizeNumber(number)})
}

// Graph answers with Graphviz DOT when asked for it, JSON otherwise.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.BlockGraph(r.Context(), chi.URLParam(r, "user"))
	if err != nil {
		h.fail(w, "BlockGraph", err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), dotContentType) {
		w.Header().Set("Content-Type", dotContentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(g.DOT()))
		return
	}

	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if isInputError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Error("Request failed", zap.String("op", op), zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
