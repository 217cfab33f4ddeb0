package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/internal/render"
	"github.com/jgoulah/rentaldash/internal/report"
	"github.com/jgoulah/rentaldash/pkg/models"
)

// Handlers contains all HTTP handlers for the dashboard server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{controller: ctrl}
}

type windowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newWindowResponse(w models.DateWindow) windowResponse {
	return windowResponse{
		Start: w.Start.Format(models.DateLayout),
		End:   w.End.Format(models.DateLayout),
	}
}

type summaryResponse struct {
	Window  windowResponse `json:"window"`
	Summary interface{}    `json:"summary"`
}

type reportResponse struct {
	Window    windowResponse    `json:"window"`
	TimeOfDay models.Summary    `json:"time_of_day"`
	Factors   models.DayFactors `json:"day_factors"`
	Weather   models.Summary    `json:"weather"`
}

// build parses the start and end query parameters and summarizes the data
func (h *Handlers) build(req *http.Request) (report.Result, error) {
	q := req.URL.Query()
	return report.Parse(h.controller.source, q.Get("start"), q.Get("end"), h.controller.now())
}

// statusFor maps a build error to an HTTP status: unreadable data is a
// service problem, anything else is a bad request
func statusFor(err error) int {
	var loadErr *loader.LoadError
	if errors.As(err, &loadErr) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.controller.logger.Errorw("error encoding response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusServiceUnavailable {
		h.controller.logger.Errorw("error loading rental data", "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// GetTimeOfDay returns the hourly rentals summed per time-of-day bucket
func (h *Handlers) GetTimeOfDay(w http.ResponseWriter, req *http.Request) {
	res, err := h.build(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryResponse{Window: newWindowResponse(res.Window), Summary: res.TimeOfDay})
}

// GetDayFactors returns the daily rentals split by working day, holiday and weekday
func (h *Handlers) GetDayFactors(w http.ResponseWriter, req *http.Request) {
	res, err := h.build(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryResponse{Window: newWindowResponse(res.Window), Summary: res.Factors})
}

// GetWeather returns the daily rentals summed per weather condition
func (h *Handlers) GetWeather(w http.ResponseWriter, req *http.Request) {
	res, err := h.build(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryResponse{Window: newWindowResponse(res.Window), Summary: res.Weather})
}

// GetReport returns every summary in one response
func (h *Handlers) GetReport(w http.ResponseWriter, req *http.Request) {
	res, err := h.build(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reportResponse{
		Window:    newWindowResponse(res.Window),
		TimeOfDay: res.TimeOfDay,
		Factors:   res.Factors,
		Weather:   res.Weather,
	})
}

// GetSpan returns the first and last day present in the daily data
func (h *Handlers) GetSpan(w http.ResponseWriter, req *http.Request) {
	daily, err := h.controller.source.LoadDailyRecords()
	if err != nil {
		h.writeError(w, err)
		return
	}
	span, ok := loader.DateSpan(daily)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no daily records loaded"})
		return
	}
	h.writeJSON(w, http.StatusOK, newWindowResponse(span))
}

// Healthz reports whether both tables can be loaded
func (h *Handlers) Healthz(w http.ResponseWriter, req *http.Request) {
	src := h.controller.source
	if _, err := src.LoadDailyRecords(); err != nil {
		h.writeError(w, err)
		return
	}
	if _, err := src.LoadHourlyRecords(); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeDashboard renders the interactive dashboard page
func (h *Handlers) ServeDashboard(w http.ResponseWriter, req *http.Request) {
	status := http.StatusOK
	data := render.DashboardData{Interactive: true}

	res, err := h.build(req)
	switch {
	case err == nil:
		data.Window = res.Window
		data.Span = res.Span
		data.TimeOfDay = res.TimeOfDay
		data.Factors = res.Factors
		data.Weather = res.Weather
	case statusFor(err) == http.StatusServiceUnavailable:
		h.controller.logger.Errorw("error loading rental data", "error", err)
		status = http.StatusServiceUnavailable
		data.LoadError = err.Error()
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := render.Dashboard(&buf, data); err != nil {
		h.controller.logger.Errorw("error rendering dashboard", "error", err)
		http.Error(w, "error rendering dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
