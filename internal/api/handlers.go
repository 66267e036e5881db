package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/mission-control/internal/catalog"
	"github.com/talgya/mission-control/internal/engine"
	"github.com/talgya/mission-control/internal/theme"
)

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.Scene.Status()
	status := map[string]any{
		"name":           "Mission Control",
		"scene_id":       st.SceneID,
		"frame":          st.Frame,
		"elapsed":        st.Elapsed,
		"clock":          engine.FormatElapsed(st.Elapsed),
		"points":         st.Points,
		"points_human":   humanize.Comma(int64(st.Points)),
		"satellites":     st.Satellites,
		"planets":        st.Planets,
		"next_planet":    st.NextPlanet,
		"filter":         st.Filter,
		"selected":       st.Selected,
		"seeds":          st.Seeds,
		"started":        humanize.Time(s.started),
		"stream_clients": s.streamConns(),
	}
	if s.Eng != nil {
		status["speed"] = s.Eng.Speed()
		status["running"] = s.Eng.Running()
	}
	writeJSON(w, status)
}

// handleFrame returns the current snapshot. ?points=1 includes every
// particle position.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if wantPoints(r) {
		writeJSON(w, s.Scene.FrameWithPoints())
		return
	}
	writeJSON(w, s.Scene.Frame())
}

func wantPoints(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("points"))
	return v
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	filter, err := catalog.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	type ipEntry struct {
		catalog.IP
		StatusColor string `json:"status_color"`
		StatusLabel string `json:"status_label"`
	}
	view := s.Catalog.View(filter)
	out := make([]ipEntry, len(view))
	for i, ip := range view {
		out[i] = ipEntry{IP: ip, StatusColor: catalog.StatusColor(ip), StatusLabel: catalog.StatusLabel(ip)}
	}
	writeJSON(w, map[string]any{
		"filter": filter,
		"counts": map[catalog.Filter]int{
			catalog.FilterAll:        s.Catalog.Count(catalog.FilterAll),
			catalog.FilterSDK:        s.Catalog.Count(catalog.FilterSDK),
			catalog.FilterInvestment: s.Catalog.Count(catalog.FilterInvestment),
		},
		"ips": out,
	})
}

// handleTheme returns an IP's theme, falling back to the default theme
// for unknown ids.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, known := theme.Lookup(id)
	th := theme.For(id)
	writeJSON(w, map[string]any{
		"id":       id,
		"fallback": !known,
		"theme":    th,
		"timing":   theme.Timing(th.Transition),
	})
}

// handleEvents returns recent scene events, oldest first. ?source=db reads
// the stored history instead, newest first.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	if r.URL.Query().Get("source") == "db" {
		if s.DB == nil {
			http.Error(w, "database not available", http.StatusServiceUnavailable)
			return
		}
		events, err := s.DB.RecentEvents(limit)
		if err != nil {
			slog.Error("load events failed", "error", err)
			http.Error(w, "load events failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, events)
		return
	}

	writeJSON(w, s.Scene.Events(limit))
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.Scene.Select(req.ID); err != nil {
		if errors.Is(err, engine.ErrUnknownEntity) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ip, _ := s.Catalog.Get(req.ID)
	writeJSON(w, map[string]any{
		"selected": req.ID,
		"ip":       ip,
		"theme":    theme.For(req.ID),
	})
}

func (s *Server) handleDeselect(w http.ResponseWriter, r *http.Request) {
	s.Scene.Deselect()
	writeJSON(w, map[string]any{"selected": nil})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filter string `json:"filter"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.Scene.SetFilter(catalog.Filter(req.Filter)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f := s.Scene.Frame()
	writeJSON(w, map[string]any{
		"filter":     f.Filter,
		"satellites": len(f.Satellites),
		"selected":   f.Selected,
	})
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	s.Scene.PointerMove(req.X, req.Y)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleContainer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size float64 `json:"size"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.Scene.SetContainerSize(req.Size); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]float64{"size": req.Size})
}

func (s *Server) handlePlanets(w http.ResponseWriter, r *http.Request) {
	list, next := s.Scene.Planets()
	writeJSON(w, map[string]any{
		"planets": list,
		"next_id": next,
	})
}

func (s *Server) handleAddPlanet(w http.ResponseWriter, r *http.Request) {
	p := s.Scene.AddPlanet()
	writeJSONStatus(w, http.StatusCreated, p)
}

func (s *Server) handleRemovePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid planet id", http.StatusBadRequest)
		return
	}
	if err := s.Scene.RemovePlanet(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if s.Eng == nil {
		http.Error(w, "frame engine not available", http.StatusServiceUnavailable)
		return
	}
	if r.Method == http.MethodPost {
		var req struct {
			Speed float64 `json:"speed"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Speed < 0 || req.Speed > 10 {
			http.Error(w, "speed must be 0-10", http.StatusBadRequest)
			return
		}
		s.Eng.SetSpeed(req.Speed)
		slog.Info("speed changed", "speed", req.Speed)
	}

	writeJSON(w, map[string]float64{"speed": s.Eng.Speed()})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	if err := s.DB.SaveScene(s.Scene); err != nil {
		slog.Error("snapshot save failed", "error", err)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"frame":   s.Scene.Status().Frame,
		"took":    time.Since(start).String(),
		"message": "snapshot saved",
	})
}
