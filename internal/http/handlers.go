package http

import (
	"net/http"
	"strings"

	"dailyeat/internal/core"
	"dailyeat/internal/log"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /foods?type=Main&category=Lunch
func (s *Server) handleListFoods(w http.ResponseWriter, r *http.Request) {
	var (
		typ      core.FoodType
		category core.MealSlot
		err      error
	)
	if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
		if typ, err = core.ParseFoodType(v); err != nil {
			respondError(w, r, err)
			return
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("category")); v != "" {
		if category, err = core.ParseMealSlot(v); err != nil {
			respondError(w, r, err)
			return
		}
	}
	foods := s.today.Catalog().Filter(typ, category)
	if foods == nil {
		foods = []core.Food{}
	}
	respondJSON(w, http.StatusOK, foods)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.today.Status())
}

type addFoodRequest struct {
	Slot string `json:"slot"`
	Food string `json:"food"`
}

func (s *Server) handleAddFood(w http.ResponseWriter, r *http.Request) {
	var req addFoodRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	slot, err := core.ParseMealSlot(req.Slot)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if _, err := s.today.AddFood(r.Context(), slot, req.Food); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.today.Status())
}

type suggestRequest struct {
	Slot string `json:"slot"`
	Type string `json:"type"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	slot, err := core.ParseMealSlot(req.Slot)
	if err != nil {
		respondError(w, r, err)
		return
	}
	typ, err := core.ParseFoodType(req.Type)
	if err != nil {
		respondError(w, r, err)
		return
	}
	food, err := s.today.Suggest(slot, typ)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, food)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.today.Reset(r.Context())
	respondJSON(w, http.StatusOK, s.today.Status())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	rec, err := s.today.SaveToday(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	log.FromContext(r.Context()).InfoContext(r.Context(), "Day saved over HTTP",
		log.FieldDate, rec.Date,
		log.FieldCalories, rec.TotalCalories)
	respondJSON(w, http.StatusCreated, rec)
}

type targetRequest struct {
	Target int `json:"target"`
}

func (s *Server) handleSetTarget(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.today.SetTarget(req.Target); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.today.Status())
}

// GET /calendar?year=2024&month=2&target=2000
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	m, err := parseYearMonth(r, s.today.Now())
	if err != nil {
		respondError(w, r, err)
		return
	}
	target, err := parseTarget(r, s.today.Target())
	if err != nil {
		respondError(w, r, err)
		return
	}
	view, err := s.history.Month(r.Context(), m, target)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// GET /logs?date=07/02/2024
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = core.FormatDateKey(s.today.Now())
	}
	target, err := parseTarget(r, s.today.Target())
	if err != nil {
		respondError(w, r, err)
		return
	}
	view, err := s.history.Day(r.Context(), date, target)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
