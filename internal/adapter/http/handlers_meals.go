package adapthttp

import (
	"fmt"
	"net/http"
	"strings"

	"nutrilog/internal/domain"
)

type mealBody struct {
	Name     string            `json:"name"`
	Items    []domain.MealItem `json:"items"`
	Servings float64           `json:"servings"`
}

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listMeals(w, r)
	case http.MethodPost:
		s.addMeal(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := s.meals.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	catalog, err := s.catalog.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	type mealView struct {
		Index    int               `json:"index"`
		Name     string            `json:"name"`
		Items    []domain.MealItem `json:"items"`
		Servings float64           `json:"servings"`
		Totals   domain.Totals     `json:"totals"`
	}
	items := make([]mealView, 0, len(meals))
	for i, m := range meals {
		items = append(items, mealView{
			Index: i, Name: m.Name, Items: m.Items, Servings: m.Servings,
			Totals: m.Totals(catalog),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) addMeal(w http.ResponseWriter, r *http.Request) {
	var body mealBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Unknown products are rejected here, at composition time; the
	// composer itself stores whatever it is given.
	missing, err := s.meals.Unknown(r.Context(), body.Items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("unknown products: %s; add them to the catalog first", strings.Join(missing, ", ")))
		return
	}

	meal, totals, err := s.meals.AddMeal(r.Context(), body.Name, body.Items, body.Servings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"added":  true,
		"name":   meal.Name,
		"totals": totals,
	})
}
