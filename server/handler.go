package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"logtime/logtime"
)

type handler struct {
	reporter ReportBuilder
	logger   *slog.Logger
	clock    func() time.Time
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (h *handler) logtime(w http.ResponseWriter, r *http.Request) {
	login := r.URL.Query().Get("login")
	if login == "" {
		writeError(w, http.StatusBadRequest, "missing login")
		return
	}

	rp, err := h.reporter.BuildReport(r.Context(), login, h.clock())
	if err != nil {
		h.logger.Error("build report", slog.String("login", login), slog.String("err", err.Error()))
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rp)
}

func statusFor(err error) int {
	var malformed *logtime.MalformedSessionError
	switch {
	case errors.Is(err, logtime.ErrEmptyLogin):
		return http.StatusBadRequest
	case errors.As(err, &malformed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, logtime.ErrSourceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
