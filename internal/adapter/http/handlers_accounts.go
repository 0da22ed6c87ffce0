package adapthttp

import (
	"errors"
	"net/http"

	"nutrilog/internal/app"
	"nutrilog/internal/domain"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Name   string  `json:"name"`
		Age    int     `json:"age"`
		Sex    string  `json:"sex"`
		Height float64 `json:"height"`
		Weight float64 `json:"weight"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	u := domain.User{Name: body.Name, Age: body.Age, Sex: body.Sex, Height: body.Height, Weight: body.Weight}
	if err := s.accounts.SignUp(r.Context(), u); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"registered": true, "name": u.Name})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := s.accounts.Login(r.Context(), body.Name)
	if errors.Is(err, app.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
