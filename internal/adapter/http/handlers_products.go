package adapthttp

import (
	"net/http"

	"nutrilog/internal/domain"
)

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		products, err := s.catalog.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": products})
	case http.MethodPost:
		var body domain.Product
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.catalog.AddProduct(r.Context(), body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"added": true, "name": body.Name})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
