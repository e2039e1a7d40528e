package cli_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/pkg"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an in-memory REST backend covering the routes the commands use.
type fakeBackend struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	nextID     int
	token      string
	authHits   []string
	groups     *api.ExerciseGroupsDoc
	exercises  []api.Exercise
	logs       []api.Log
	essentials map[string]map[string]any
	profile    api.Profile
	noProfile  bool
	stats      api.EnhancedStatsResponse
	statsHits  []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	f := &fakeBackend{
		t:          t,
		token:      token,
		essentials: map[string]map[string]any{},
		profile:    api.Profile{Firstname: "Serj", Lastname: "Tubin", Email: "serj@example.com", Goals: []string{}},
		stats: api.EnhancedStatsResponse{
			Exercises: []api.ExerciseStats{
				{
					ExerciseName:        "Curls",
					Totals:              api.DailyStats{Reps: 130, Count: 10},
					ExpectedFromAverage: api.DailyStats{Reps: 100, Count: 8},
					DaysInPeriod:        7,
				},
			},
			Overall: &api.OverallStats{CurrentStreak: 3, LongestStreak: 5, TotalWorkoutDays: 4, TotalExercises: 1},
		},
	}

	r := mux.NewRouter()
	sub := r.PathPrefix("/api").Subrouter()
	sub.HandleFunc("/auth/login", f.handleLogin).Methods(http.MethodPost)
	sub.HandleFunc("/auth/register", f.handleLogin).Methods(http.MethodPost)
	sub.HandleFunc("/exercise-groups/user", f.handleGetGroups).Methods(http.MethodGet)
	sub.HandleFunc("/exercise-groups/upsert", f.handleUpsertGroups).Methods(http.MethodPost)
	sub.HandleFunc("/exercises", f.handleGetExercises).Methods(http.MethodGet)
	sub.HandleFunc("/exercises", f.handleCreateExercise).Methods(http.MethodPost)
	sub.HandleFunc("/exercises/{id}", f.handleDeleteExercise).Methods(http.MethodDelete)
	sub.HandleFunc("/logs", f.handleGetLogs).Methods(http.MethodGet)
	sub.HandleFunc("/logs", f.handleCreateLog).Methods(http.MethodPost)
	sub.HandleFunc("/logs/{id}", f.handleUpdateLog).Methods(http.MethodPut)
	sub.HandleFunc("/logs/{id}", f.handleDeleteLog).Methods(http.MethodDelete)
	sub.HandleFunc("/log-essentials", f.handleGetEssential).Methods(http.MethodGet)
	sub.HandleFunc("/log-essentials", f.handleUpsertEssential).Methods(http.MethodPost)
	sub.HandleFunc("/profile", f.handleGetProfile).Methods(http.MethodGet)
	sub.HandleFunc("/profile", f.handleUpdateProfile).Methods(http.MethodPut)
	sub.HandleFunc("/stats", f.handleStats).Methods(http.MethodGet)
	sub.HandleFunc("/ai/suggestions", f.handleAISuggestions).Methods(http.MethodPost)
	r.Use(f.recordAuth)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBackend) URL() string {
	return f.server.URL + "/api"
}

func (f *fakeBackend) recordAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authHits = append(f.authHits, r.Header.Get("Authorization"))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeBackend) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) decode(r *http.Request, v any) {
	assert.NoError(f.t, json.NewDecoder(r.Body).Decode(v))
}

func (f *fakeBackend) writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	assert.NoError(f.t, err)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}

func (f *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	f.decode(r, &req)
	if req["password"] == "wrong" {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"message":"Invalid credentials"}`), http.StatusUnauthorized)
		return
	}
	f.writeJSON(w, api.AuthResponse{
		User:  api.User{ID: "user-1", Firstname: "Serj", Lastname: "Tubin", Email: req["email"]},
		Token: f.token,
	})
}

func (f *fakeBackend) handleGetGroups(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeJSON(w, f.groups)
}

func (f *fakeBackend) handleUpsertGroups(w http.ResponseWriter, r *http.Request) {
	doc := &api.ExerciseGroupsDoc{}
	f.decode(r, doc)

	f.mu.Lock()
	defer f.mu.Unlock()
	if doc.ID == "" {
		doc.ID = f.id("doc")
	}
	for ci := range doc.Categories {
		for ei := range doc.Categories[ci].Exercises {
			if doc.Categories[ci].Exercises[ei].ID == "" {
				doc.Categories[ci].Exercises[ei].ID = f.id("ex")
			}
		}
	}
	f.groups = doc
	f.writeJSON(w, doc)
}

func (f *fakeBackend) handleGetExercises(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category := r.URL.Query().Get("category")
	list := []api.Exercise{}
	for _, ex := range f.exercises {
		if category == "" || ex.Category == category {
			list = append(list, ex)
		}
	}
	f.writeJSON(w, list)
}

func (f *fakeBackend) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ex := api.Exercise{}
	f.decode(r, &ex)
	f.mu.Lock()
	defer f.mu.Unlock()
	ex.ID = f.id("flat")
	f.exercises = append(f.exercises, ex)
	f.writeJSON(w, ex)
}

func (f *fakeBackend) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := mux.Vars(r)["id"]
	kept := f.exercises[:0:0]
	for _, ex := range f.exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	f.exercises = kept
	f.writeJSON(w, map[string]string{"message": "deleted"})
}

func (f *fakeBackend) handleGetLogs(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := r.URL.Query()
	list := []api.Log{}
	for _, lg := range f.logs {
		if lg.Date == q.Get("date") && lg.Category == q.Get("category") {
			list = append(list, lg)
		}
	}
	f.writeJSON(w, list)
}

func (f *fakeBackend) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	lg := api.Log{}
	f.decode(r, &lg)
	f.mu.Lock()
	defer f.mu.Unlock()
	lg.ID = f.id("log")
	f.logs = append(f.logs, lg)
	f.writeJSON(w, lg)
}

func (f *fakeBackend) handleUpdateLog(w http.ResponseWriter, r *http.Request) {
	update := api.LogUpdate{}
	f.decode(r, &update)
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.logs {
		if f.logs[i].ID != mux.Vars(r)["id"] {
			continue
		}
		if update.Reps != nil {
			f.logs[i].Reps = *update.Reps
		}
		if update.Count != nil {
			f.logs[i].Count = *update.Count
		}
		f.writeJSON(w, f.logs[i])
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"message":"Log not found"}`), http.StatusNotFound)
}

func (f *fakeBackend) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.logs[:0:0]
	for _, lg := range f.logs {
		if lg.ID != mux.Vars(r)["id"] {
			kept = append(kept, lg)
		}
	}
	f.logs = kept
	f.writeJSON(w, map[string]string{"message": "deleted"})
}

func (f *fakeBackend) handleGetEssential(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.essentials[r.URL.Query().Get("date")]
	if !ok {
		f.writeJSON(w, nil)
		return
	}
	f.writeJSON(w, record)
}

func (f *fakeBackend) handleUpsertEssential(w http.ResponseWriter, r *http.Request) {
	update := map[string]any{}
	f.decode(r, &update)
	date, _ := update["date"].(string)

	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.essentials[date]
	if !ok {
		record = map[string]any{"_id": f.id("ess"), "date": date}
		f.essentials[date] = record
	}
	for k, v := range update {
		record[k] = v
	}
	f.writeJSON(w, record)
}

func (f *fakeBackend) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.noProfile {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"message":"Profile not found"}`), http.StatusNotFound)
		return
	}
	f.writeJSON(w, f.profile)
}

func (f *fakeBackend) RemoveProfile() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noProfile = true
}

func (f *fakeBackend) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	p := api.Profile{}
	f.decode(r, &p)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
	f.writeJSON(w, p)
}

func (f *fakeBackend) handleStats(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsHits = append(f.statsHits, r.URL.RawQuery)
	f.writeJSON(w, f.stats)
}

// handleAISuggestions answers with one category named after the request.
func (f *fakeBackend) handleAISuggestions(w http.ResponseWriter, r *http.Request) {
	req := api.AISuggestionRequest{}
	f.decode(r, &req)
	f.writeJSON(w, api.AISuggestionResponse{
		Categories: []api.GroupCategory{{
			CategoryName: req.UserInput,
			Exercises:    []api.GroupExercise{{ExerciseName: "squats"}, {ExerciseName: "lunges"}},
		}},
	})
}

func (f *fakeBackend) Groups() *api.ExerciseGroupsDoc {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groups.Clone()
}

func (f *fakeBackend) Logs() []api.Log {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Log(nil), f.logs...)
}

func (f *fakeBackend) Exercises() []api.Exercise {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Exercise(nil), f.exercises...)
}

func (f *fakeBackend) Essential(date, field string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.essentials[date][field]
}

func (f *fakeBackend) Profile() api.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile
}

func (f *fakeBackend) StatsHits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.statsHits...)
}

func (f *fakeBackend) AuthHits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.authHits...)
}
