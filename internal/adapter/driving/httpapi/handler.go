package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diillson/aws-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
	"github.com/sirupsen/logrus"
)

// Handler agrupa os endpoints do dashboard.
type Handler struct {
	logger    logrus.FieldLogger
	dashboard *usecase.DashboardUseCase
}

// NewHandler creates the endpoint handlers on top of the dashboard use case.
func NewHandler(logger logrus.FieldLogger, dashboard *usecase.DashboardUseCase) *Handler {
	return &Handler{logger: logger, dashboard: dashboard}
}

type statusResponse struct {
	Status string `json:"status"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Health returns a fixed status payload. It never touches the provider, so it
// stays green even when no credentials were ever supplied.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeResponseAsJSON(h.requestLogger(r), w, http.StatusOK, statusResponse{Status: "ok"})
}

// Resources returns the EC2 instance and S3 bucket counts for the credentials
// in the request body.
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	creds, ok := h.decodeCredentials(logger, w, r)
	if !ok {
		return
	}

	summary, err := h.dashboard.GetResourceSummary(r.Context(), creds)
	if err != nil {
		h.writeError(logger, w, err)
		return
	}
	writeResponseAsJSON(logger, w, http.StatusOK, summary)
}

// Cost returns the trailing 30-day cost grouped by service.
func (h *Handler) Cost(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	creds, ok := h.decodeCredentials(logger, w, r)
	if !ok {
		return
	}

	costs, err := h.dashboard.GetCostBreakdown(r.Context(), creds)
	if err != nil {
		h.writeError(logger, w, err)
		return
	}
	writeResponseAsJSON(logger, w, http.StatusOK, costs)
}

// Trend returns the monthly cost series for the past six months.
func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	creds, ok := h.decodeCredentials(logger, w, r)
	if !ok {
		return
	}

	trend, err := h.dashboard.GetCostTrend(r.Context(), creds)
	if err != nil {
		h.writeError(logger, w, err)
		return
	}
	writeResponseAsJSON(logger, w, http.StatusOK, trend)
}

// Budgets returns the AWS Budgets configured for the account.
func (h *Handler) Budgets(w http.ResponseWriter, r *http.Request) {
	logger := h.requestLogger(r)

	creds, ok := h.decodeCredentials(logger, w, r)
	if !ok {
		return
	}

	budgets, err := h.dashboard.GetBudgets(r.Context(), creds)
	if err != nil {
		h.writeError(logger, w, err)
		return
	}
	writeResponseAsJSON(logger, w, http.StatusOK, budgets)
}

// requestLogger anota o logger com método e path. As credenciais nunca entram
// nos campos de log.
func (h *Handler) requestLogger(r *http.Request) logrus.FieldLogger {
	return h.logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}

func (h *Handler) decodeCredentials(logger logrus.FieldLogger, w http.ResponseWriter, r *http.Request) (types.Credentials, bool) {
	var creds types.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeDetailResponse(logger, w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return types.Credentials{}, false
	}
	return creds, true
}

// writeError maps tagged errors to their HTTP form. Falhas de validação e de
// provider rendem ambas 400 com a mensagem crua, preservando o contrato
// original da API.
func (h *Handler) writeError(logger logrus.FieldLogger, w http.ResponseWriter, err error) {
	var perr *types.ProviderError
	if errors.As(err, &perr) {
		logger.WithError(perr.Err).Warn("provider call failed")
	}
	writeDetailResponse(logger, w, http.StatusBadRequest, err.Error())
}

func writeDetailResponse(logger logrus.FieldLogger, w http.ResponseWriter, code int, detail string) {
	writeResponseAsJSON(logger, w, code, detailResponse{Detail: detail})
}

// writeResponseAsJSON attempts to marshal an arbitrary value to JSON and write
// it to the http.ResponseWriter.
func writeResponseAsJSON(logger logrus.FieldLogger, w http.ResponseWriter, code int, resp interface{}) {
	enc, err := json.Marshal(resp)
	if err != nil {
		logger.WithError(err).Error("failed JSON-encoding HTTP response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(enc); err != nil {
		logger.WithError(err).Error("failed writing HTTP response")
	}
}
