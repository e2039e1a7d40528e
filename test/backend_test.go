//go:build integration

package test

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
)

const (
	testEmail    = "serj@example.com"
	testPassword = "testpass"
	testToken    = "integration-token"
)

var (
	testGroups = api.ExerciseGroupsDoc{
		ID: "doc-1",
		Categories: []api.GroupCategory{
			{ID: "cat-1", CategoryName: "Push", Exercises: []api.GroupExercise{
				{ID: "ex-1", ExerciseName: "Bench press", Description: "flat bench"},
				{ID: "ex-2", ExerciseName: "Dips"},
			}},
		},
	}
	testLogs = []api.Log{
		{ID: "log-1", ExerciseID: "ex-1", ExerciseName: "Bench press", Category: "Push", Date: "2026-10-18", Reps: 12, Count: 3},
	}
	testWater = 1.5
)

// newFakeBackend serves a read-only REST backend for one user.
func newFakeBackend() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != testPassword {
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"message":"Invalid credentials"}`), http.StatusUnauthorized)
			return
		}
		writeJSON(w, api.AuthResponse{
			User:  api.User{ID: "user-1", Firstname: "Serj", Lastname: "Tubin", Email: req.Email},
			Token: testToken,
		})
	}).Methods(http.MethodPost)

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"message":"Unauthorized"}`), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	authed.HandleFunc("/exercise-groups/user", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, testGroups)
	}).Methods(http.MethodGet)
	authed.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		logs := []api.Log{}
		for _, lg := range testLogs {
			if lg.Date == r.URL.Query().Get("date") {
				logs = append(logs, lg)
			}
		}
		writeJSON(w, logs)
	}).Methods(http.MethodGet)
	authed.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, api.EnhancedStatsResponse{
			Exercises: []api.ExerciseStats{{
				ExerciseName:        "Bench press",
				Totals:              api.DailyStats{Reps: 36, Count: 3},
				ExpectedFromAverage: api.DailyStats{Reps: 30, Count: 3},
				DaysInPeriod:        7,
			}},
			Overall: &api.OverallStats{CurrentStreak: 1, LongestStreak: 4, TotalWorkoutDays: 1, TotalExercises: 1},
		})
	}).Methods(http.MethodGet)
	authed.HandleFunc("/log-essentials/all", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []api.LogEssential{{ID: "ess-1", Date: "2026-10-18", EssentialFields: api.EssentialFields{WaterIntake: &testWater}}})
	}).Methods(http.MethodGet)
	authed.HandleFunc("/log-essentials", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "2026-10-18" {
			writeJSON(w, nil)
			return
		}
		writeJSON(w, api.LogEssential{ID: "ess-1", Date: "2026-10-18", EssentialFields: api.EssentialFields{WaterIntake: &testWater}})
	}).Methods(http.MethodGet)
	authed.HandleFunc("/profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, api.Profile{Firstname: "Serj", Lastname: "Tubin", Email: testEmail, Goals: []string{"Run a marathon"}})
	}).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}
