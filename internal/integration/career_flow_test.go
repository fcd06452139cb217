package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type careerMatchItem struct {
	CareerID   string  `json:"career_id"`
	Name       string  `json:"name"`
	MatchScore float64 `json:"match_score"`
}

type gapReportPayload struct {
	CareerID   string `json:"career_id"`
	CareerName string `json:"career_name"`
	Analysis   struct {
		TotalRequired int      `json:"total_required"`
		KnownCount    int      `json:"known_count"`
		PartialCount  int      `json:"partial_count"`
		MissingCount  int      `json:"missing_count"`
		Missing       []string `json:"missing"`
	} `json:"analysis"`
	Readiness struct {
		Overall float64 `json:"overall"`
		Grade   string  `json:"grade"`
	} `json:"readiness"`
}

type baselinePayload struct {
	Career    string `json:"career"`
	Readiness struct {
		Overall float64 `json:"overall"`
	} `json:"readiness"`
	LearningTimeWeeks float64 `json:"learning_time_weeks"`
}

type scenarioPayload struct {
	Type      string `json:"type"`
	Career    string `json:"career"`
	Readiness struct {
		Overall float64 `json:"overall"`
	} `json:"readiness"`
	Changes struct {
		ScoreChange float64 `json:"score_change"`
	} `json:"changes"`
}

type dailyPlanPayload struct {
	CareerID   string `json:"career_id"`
	CareerName string `json:"career_name"`
	Tasks      []struct {
		Skill    string `json:"skill"`
		Priority int    `json:"priority"`
	} `json:"tasks"`
	Estimate struct {
		TotalHours  float64 `json:"total_hours"`
		WeeksNeeded int     `json:"weeks_needed"`
	} `json:"estimate"`
}

func TestIntegration_Profile_Recommendation_Simulation_Plan(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	store := loadTestCatalog(t)
	cfg := testConfig()
	app := newTestApp(t, cfg, db, store)

	email := "flow-" + uuid.NewString() + "@example.com"
	defer cleanupUser(t, ctx, db, email)

	tok := registerAndGetJWT(t, app, email)
	if tok == "" {
		t.Fatalf("register: empty access_token")
	}

	skills := []string{"Python", "SQL", "Statistics"}

	saveProfile(t, app, tok, skills)

	matches := callRecommend(t, app, skills)
	if len(matches) == 0 {
		t.Fatalf("recommend: expected non-empty matches")
	}
	assertNoDuplicateCareers(t, matches)
	assertSortedByMatchDesc(t, matches)
	for _, m := range matches {
		if m.MatchScore < 0 || m.MatchScore > 100 {
			t.Fatalf("recommend: match_score out of range: %v", m.MatchScore)
		}
	}

	report := callGap(t, app, "data_analyst", skills)
	if report.CareerID != "data_analyst" {
		t.Fatalf("gap: expected career_id data_analyst, got %s", report.CareerID)
	}
	a := report.Analysis
	if a.TotalRequired != a.KnownCount+a.PartialCount+a.MissingCount {
		t.Fatalf("gap: counts do not add up: %d != %d+%d+%d", a.TotalRequired, a.KnownCount, a.PartialCount, a.MissingCount)
	}
	if report.Readiness.Overall < 0 || report.Readiness.Overall > 100 {
		t.Fatalf("gap: readiness out of range: %v", report.Readiness.Overall)
	}

	base := callBaseline(t, app, tok, "data_analyst", skills)
	if base.Career == "" {
		t.Fatalf("baseline: empty career name")
	}

	scen := callScenario(t, app, tok, map[string]any{
		"type":   "add_skills",
		"skills": []string{"Machine Learning"},
	})
	if scen.Type != "add_skills" {
		t.Fatalf("scenario: expected type add_skills, got %s", scen.Type)
	}
	if scen.Readiness.Overall+1e-9 < base.Readiness.Overall {
		t.Fatalf("scenario: adding a skill should not lower readiness: %v -> %v", base.Readiness.Overall, scen.Readiness.Overall)
	}

	plan := callDailyPlan(t, app, tok)
	if plan.CareerID != "data_analyst" {
		t.Fatalf("plan: expected career_id data_analyst, got %s", plan.CareerID)
	}
	if len(plan.Tasks) == 0 {
		t.Fatalf("plan: expected tasks for missing skills")
	}
	if plan.Estimate.TotalHours <= 0 {
		t.Fatalf("plan: expected positive total_hours, got %v", plan.Estimate.TotalHours)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CAREERCOMPASS_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	dbcfg := config.DatabaseConfig{
		DBHost:         host,
		DBPort:         port,
		DBName:         name,
		DBUser:         user,
		DBPassword:     pass,
		DBSSLMode:      ssl,
		ConnectTimeout: 5 * time.Second,
	}

	db, err := dbpostgres.Connect(ctx, dbcfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveRootDir(t, "migrations")}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func loadTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.Load(resolveRootDir(t, "data"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return store
}

func resolveRootDir(t *testing.T, sub string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve %s dir: runtime.Caller failed", sub)
	}

	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	dir := filepath.Join(root, sub)

	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("resolve %s dir: not found or not a dir: %s", sub, dir)
	}
	return dir
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "CareerCompass", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
			RefreshSecret:    stringsOrDefault(os.Getenv("CAREERCOMPASS_TEST_JWT_REFRESH_SECRET"), "test-refresh-secret"),
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func newTestApp(t *testing.T, cfg config.Config, db database.DB, store *catalog.Store) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware(zap.NewNop())
	app.Use(errMw.Middleware())

	deps := v1.Deps{
		Config:  cfg,
		DB:      db,
		Catalog: store,
		Cache:   cache.NewRedis(zap.NewNop()),
		Logger:  zap.NewNop(),
	}
	if err := routes.NewRegistry(deps).Register(app); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	return app
}

func cleanupUser(t *testing.T, ctx context.Context, db database.DB, email string) {
	t.Helper()

	_, _ = db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id IN (SELECT id FROM users WHERE email = $1)`, email)
	_, _ = db.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
}

func registerAndGetJWT(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := map[string]string{"name": "Flow Tester", "email": email, "password": "password123"}
	data := postJSON(t, app, "/api/v1/auth/register", "", body)

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("register: data unmarshal error: %v", err)
	}
	var token string
	if raw, ok := m["access_token"]; ok {
		_ = json.Unmarshal(raw, &token)
	}
	return token
}

func saveProfile(t *testing.T, app *fiber.App, jwt string, skills []string) {
	t.Helper()

	body := map[string]any{
		"skills":           skills,
		"interests":        "data analysis",
		"target_career_id": "data_analyst",
		"learning_pace":    "moderate",
		"daily_hours":      2,
	}
	data := requestJSON(t, app, "PUT", "/api/v1/users/me/profile", jwt, body)

	var got struct {
		TargetCareerID string   `json:"target_career_id"`
		Skills         []string `json:"skills"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("profile: data unmarshal error: %v", err)
	}
	if got.TargetCareerID != "data_analyst" {
		t.Fatalf("profile: expected target_career_id data_analyst, got %s", got.TargetCareerID)
	}
	if len(got.Skills) == 0 {
		t.Fatalf("profile: expected normalized skills")
	}
}

func callRecommend(t *testing.T, app *fiber.App, skills []string) []careerMatchItem {
	t.Helper()

	data := postJSON(t, app, "/api/v1/careers/recommend", "", map[string]any{
		"skills":    skills,
		"interests": "data analysis",
		"top_n":     5,
	})

	var items []careerMatchItem
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("recommend: data unmarshal error: %v", err)
	}
	return items
}

func callGap(t *testing.T, app *fiber.App, careerID string, skills []string) gapReportPayload {
	t.Helper()

	data := postJSON(t, app, "/api/v1/careers/"+careerID+"/gap", "", map[string]any{"skills": skills})

	var report gapReportPayload
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("gap: data unmarshal error: %v", err)
	}
	return report
}

func callBaseline(t *testing.T, app *fiber.App, jwt, careerID string, skills []string) baselinePayload {
	t.Helper()

	data := postJSON(t, app, "/api/v1/simulations/baseline", jwt, map[string]any{
		"career_id": careerID,
		"skills":    skills,
	})

	var base baselinePayload
	if err := json.Unmarshal(data, &base); err != nil {
		t.Fatalf("baseline: data unmarshal error: %v", err)
	}
	return base
}

func callScenario(t *testing.T, app *fiber.App, jwt string, body map[string]any) scenarioPayload {
	t.Helper()

	data := postJSON(t, app, "/api/v1/simulations/scenarios", jwt, body)

	var scen scenarioPayload
	if err := json.Unmarshal(data, &scen); err != nil {
		t.Fatalf("scenario: data unmarshal error: %v", err)
	}
	return scen
}

func callDailyPlan(t *testing.T, app *fiber.App, jwt string) dailyPlanPayload {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/plans/daily", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("plan request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("plan decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("plan: expected status=200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var plan dailyPlanPayload
	if err := json.Unmarshal(sr.Data, &plan); err != nil {
		t.Fatalf("plan: data unmarshal error: %v", err)
	}
	return plan
}

func postJSON(t *testing.T, app *fiber.App, path, jwt string, body any) json.RawMessage {
	t.Helper()
	return requestJSON(t, app, "POST", path, jwt, body)
}

func requestJSON(t *testing.T, app *fiber.App, method, path, jwt string, body any) json.RawMessage {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("%s %s: marshal error: %v", method, path, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	if sr.Status != 200 {
		t.Fatalf("%s %s: expected status=200, got %d (message=%s)", method, path, sr.Status, sr.Message)
	}
	if sr.Message != "ok" {
		t.Fatalf("%s %s: expected message=ok, got %s", method, path, sr.Message)
	}
	return sr.Data
}

func assertSortedByMatchDesc(t *testing.T, items []careerMatchItem) {
	t.Helper()

	for i := 1; i < len(items); i++ {
		if items[i].MatchScore > items[i-1].MatchScore {
			t.Fatalf("recommend: expected match_score descending at idx=%d: prev=%v cur=%v", i, items[i-1].MatchScore, items[i].MatchScore)
		}
	}
}

func assertNoDuplicateCareers(t *testing.T, items []careerMatchItem) {
	t.Helper()

	seen := map[string]struct{}{}
	for i, it := range items {
		if it.CareerID == "" {
			t.Fatalf("recommend: idx=%d has empty career_id", i)
		}
		if _, ok := seen[it.CareerID]; ok {
			t.Fatalf("recommend: duplicate career_id=%s", it.CareerID)
		}
		seen[it.CareerID] = struct{}{}
	}
}

func stringsOrDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
