package adapthttp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nutrilog/internal/app"
)

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.viewLogs(w, r)
	case http.MethodPost:
		s.logMeal(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) viewLogs(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")
	if username == "" {
		writeError(w, http.StatusBadRequest, errors.New("user query parameter is required"))
		return
	}
	reports, err := s.logs.History(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": username, "days": reports})
}

func (s *Server) logMeal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string    `json:"username"`
		Day       string    `json:"day"`
		MealIndex *int      `json:"mealIndex"`
		Meal      *mealBody `json:"meal"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Username == "" {
		writeError(w, http.StatusBadRequest, errors.New("username is required"))
		return
	}

	day, err := dayOrToday(body.Day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch {
	case body.Meal != nil:
		// One-off custom meal: logged once, never added to the composer.
		missing, err := s.meals.Unknown(r.Context(), body.Meal.Items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if len(missing) > 0 {
			writeError(w, http.StatusBadRequest,
				fmt.Errorf("unknown products: %s; add them to the catalog first", strings.Join(missing, ", ")))
			return
		}
		meal := app.NewCustomMeal(body.Meal.Name, body.Meal.Items, body.Meal.Servings)
		if err := s.logs.LogMeal(r.Context(), body.Username, day, meal); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"logged": true, "day": day, "meal": meal.Name})
	case body.MealIndex != nil:
		meal, err := s.logs.LogSavedMeal(r.Context(), body.Username, day, *body.MealIndex)
		if errors.Is(err, app.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"logged": true, "day": day, "meal": meal.Name})
	default:
		writeError(w, http.StatusBadRequest, errors.New("either mealIndex or meal must be provided"))
	}
}
