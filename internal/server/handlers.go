package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/blackwell-systems/floractl/internal/catalog"
	"github.com/blackwell-systems/floractl/internal/identify"
	"github.com/blackwell-systems/floractl/internal/labels"
	"github.com/blackwell-systems/floractl/internal/prefs"
)

type plantsResponse struct {
	Count  int             `json:"count"`
	Plants []catalog.Plant `json:"plants"`
}

type plantLabels struct {
	Type        string   `json:"type"`
	Danger      string   `json:"danger"`
	DangerLong  string   `json:"dangerLong"`
	DangerClass string   `json:"dangerClass"`
	Habitat     string   `json:"habitat"`
	Controls    []string `json:"controls"`
	Emoji       string   `json:"emoji"`
}

type plantResponse struct {
	catalog.Plant
	ControlDescription string      `json:"controlDescription"`
	IdentificationTips string      `json:"identificationTips"`
	Labels             plantLabels `json:"labels"`
}

type identifyResponse struct {
	Count   int                    `json:"count"`
	Results []identify.MatchResult `json:"results"`
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "floractl",
		"version": s.version,
		"plants":  len(s.plants),
	})
}

func (s *Server) handleListPlants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cat, err := catalog.ParseCategory(q.Get("category"))
	if err != nil {
		detail := err.Error()
		if hint := labels.Suggest(q.Get("category"), categoryNames()); hint != "" {
			detail = fmt.Sprintf("%s (did you mean %q?)", detail, hint)
		}
		BadRequest(w, detail, r.URL.Path)
		return
	}

	plants := catalog.Filter{Query: q.Get("q"), Category: cat}.Apply(s.plants)
	writeJSON(w, http.StatusOK, plantsResponse{Count: len(plants), Plants: plants})
}

func (s *Server) handleGetPlant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p := catalog.ByID(s.plants, id)
	if p == nil {
		NotFound(w, fmt.Sprintf("plant %q not found", id), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, newPlantResponse(*p))
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var sel identify.Selections
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}

	results := identify.Identify(s.plants, sel)
	s.metrics.identifyResults.Observe(float64(len(results)))
	s.logger.Debug("identify",
		zap.String("type", sel.Type),
		zap.String("season", sel.Season),
		zap.String("habitat", sel.Habitat),
		zap.Strings("features", sel.Features),
		zap.Int("results", len(results)),
	)
	writeJSON(w, http.StatusOK, identifyResponse{Count: len(results), Results: results})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	if !s.requirePrefs(w, r) {
		return
	}
	theme, err := prefs.Theme(r.Context(), s.prefs)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	if !s.requirePrefs(w, r) {
		return
	}
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}
	if err := prefs.SetTheme(r.Context(), s.prefs, body.Theme); err != nil {
		BadRequest(w, err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if !s.requirePrefs(w, r) {
		return
	}
	theme, err := prefs.ToggleTheme(r.Context(), s.prefs)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	NotFound(w, "no such endpoint", r.URL.Path)
}

func (s *Server) requirePrefs(w http.ResponseWriter, r *http.Request) bool {
	if s.prefs == nil {
		s.internalError(w, r, errors.New("preference store not configured"))
		return false
	}
	return true
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	InternalError(w, err.Error(), r.URL.Path)
}

func newPlantResponse(p catalog.Plant) plantResponse {
	controls := make([]string, 0, len(p.ControlMethods))
	for _, m := range p.ControlMethods {
		controls = append(controls, labels.Control(m.Type))
	}
	return plantResponse{
		Plant:              p,
		ControlDescription: labels.ControlDescription(p),
		IdentificationTips: labels.IdentificationTips(p),
		Labels: plantLabels{
			Type:        labels.Type(p.Type),
			Danger:      labels.Danger(p.DangerLevel),
			DangerLong:  labels.DangerLong(p.DangerLevel),
			DangerClass: labels.DangerClass(p.DangerLevel),
			Habitat:     labels.Habitat(p.Habitat),
			Controls:    controls,
			Emoji:       labels.Emoji(p),
		},
	}
}

func categoryNames() []string {
	cats := catalog.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
