package tasktype

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// /api/tasktypes  (collection)
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, h.registry.All())
		return

	case http.MethodPost:
		var in struct {
			Name  string `json:"name"`
			Emoji string `json:"emoji"`
			Color string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		types, err := h.registry.Add(in.Name, in.Emoji, in.Color)
		if err != nil {
			writeErr(w, 400, err.Error())
			return
		}
		writeJSON(w, 201, types)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}
