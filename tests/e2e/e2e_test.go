package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bura/internal/config"
	"bura/internal/database"
	"bura/internal/domain/lead"
	"bura/internal/phone"
	"bura/internal/server"
	"bura/internal/submission"
	"bura/internal/wizard"
)

type E2ETestSuite struct {
	router *gin.Engine
	repo   lead.Repository
}

type TestResponse struct {
	Success bool            `json:"success"`
	Slug    string          `json:"slug,omitempty"`
	Token   string          `json:"token,omitempty"`
	Link    string          `json:"link,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:          "test",
		Port:            "0",
		DatabaseURL:     ":memory:",
		CoachWhatsApp:   "254746110624",
		WhatsAppBaseURL: "https://wa.me",
		FailurePolicy:   submission.FailOpen,
		ReturnPlanSlug:  true,
		HandoffTTL:      time.Minute,
		HandoffCapacity: 64,
		LeadsToken:      "export-token",
		LogLevel:        "info",
	}
}

func setupTestSuite(t *testing.T, cfg *config.Config) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	deps := server.Deps{Config: cfg}
	s := &E2ETestSuite{}
	if cfg.StoreConfigured() {
		db, err := database.Connect(cfg.DatabaseURL, nil)
		require.NoError(t, err, "Failed to connect to test database")
		require.NoError(t, database.Migrate(db, &lead.Lead{}))
		s.repo = lead.NewRepository(db)
		deps.LeadRepo = s.repo
	}
	s.router = server.NewRouter(deps)
	return s
}

func (s *E2ETestSuite) request(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func TestScenarioA_TrunkPrefix(t *testing.T) {
	got, err := phone.Normalize("0712345678")
	require.NoError(t, err)
	assert.Equal(t, "+254712345678", got)
}

func TestScenarioB_CountryCodeWithoutPlus(t *testing.T) {
	got, err := phone.Normalize("254712345678")
	require.NoError(t, err)
	assert.Equal(t, "+254712345678", got)
}

func TestScenarioC_TooShort(t *testing.T) {
	got, err := phone.Normalize("071234")
	assert.ErrorIs(t, err, phone.ErrInvalid)
	assert.Empty(t, got)
}

func TestScenarioD_GymFourToFiveDaysIsPushPullLegs(t *testing.T) {
	s := setupTestSuite(t, testConfig())

	w, resp := s.request(t, http.MethodPost, "/api/submit",
		`{"name":"Kamau","phone":"0712345678","flow":"plan","formData":{"goal":"muscle_building","activityLevel":"intermediate","daysAvailable":"4-5","trainingLocation":"gym","hasInjuries":false}}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, resp.Success)
	require.Len(t, resp.Slug, lead.SlugLength)

	w, resp = s.request(t, http.MethodGet, "/api/v1/plans/"+resp.Slug, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plan struct {
		Title string `json:"title"`
		Split struct {
			Type string `json:"type"`
		} `json:"split"`
		Schedule []struct {
			Day     string `json:"day"`
			Workout string `json:"workout"`
		} `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &plan))
	assert.Equal(t, "push_pull_legs", plan.Split.Type)
	require.NotEmpty(t, plan.Schedule)
	assert.Equal(t, "Push Day", plan.Schedule[0].Workout)
	assert.Equal(t, "Muscle Building Program - Gym Training", plan.Title)
}

func TestScenarioE_EmptyBody(t *testing.T) {
	s := setupTestSuite(t, testConfig())

	w, resp := s.request(t, http.MethodPost, "/api/submit", "", map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	_, count, err := s.repo.List(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Zero(t, count, "a rejected request never persists")
}

func TestUnconfiguredStoreFailsFast(t *testing.T) {
	cfg := testConfig()
	cfg.DatabaseURL = ""
	s := setupTestSuite(t, cfg)

	w, resp := s.request(t, http.MethodPost, "/api/submit", `{"name":"A","phone":"0712345678","formData":{}}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server configuration error", resp.Error)

	w, _ = s.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storeConfigured":false`)
}

func TestHandoffAndExport(t *testing.T) {
	s := setupTestSuite(t, testConfig())

	w, resp := s.request(t, http.MethodPost, "/api/v1/handoff",
		`{"name":"Achieng","flow":"coach","formData":{"goal":"fat_loss","selectedProgram":"12_week_muscle","hasInjuries":true}}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.Token)

	w, taken := s.request(t, http.MethodGet, "/api/v1/handoff/"+resp.Token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.Link, taken.Link)

	w, _ = s.request(t, http.MethodGet, "/internal/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.request(t, http.MethodGet, "/internal/leads", "", map[string]string{"Authorization": "Bearer export-token"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.request(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bura_handoffs_total")
}

// A finished questionnaire posted through the submission client lands in
// the store with a canonical phone.
func TestQuizAgainstAPI(t *testing.T) {
	s := setupTestSuite(t, testConfig())
	api := httptest.NewServer(s.router)
	defer api.Close()

	client := submission.NewClient(api.URL, submission.FailClosed, nil, api.Client())
	sess := wizard.NewSession(wizard.CoachFlow)
	answers := map[string]string{
		wizard.FieldGender: "female", wizard.FieldAge: "27", wizard.FieldHeight: "168", wizard.FieldWeight: "63",
		wizard.FieldGoal: "body_toning", wizard.FieldActivityLevel: "beginner", wizard.FieldDaysAvailable: "2-3",
		wizard.FieldHasUsedTrainer: "false", wizard.FieldPreferredMethod: "home_workouts",
		wizard.FieldHasInjuries: "false", wizard.FieldHasEquipment: "true",
		wizard.FieldCommitmentLevel: "medium", wizard.FieldSelectedProgram: "21_day_abs",
		wizard.FieldName: "Njeri", wizard.FieldPhone: "0112 345 678",
	}
	for k, v := range answers {
		require.NoError(t, sess.Answer(k, v), k)
	}
	final, err := sess.Finalize()
	require.NoError(t, err)
	form, err := final.FormData()
	require.NoError(t, err)

	res, err := client.Submit(context.Background(), submission.Request{
		Name: final.Name, Phone: final.Phone, FormData: form, Flow: wizard.FlowCoach,
	})
	require.NoError(t, err)
	assert.True(t, res.Saved)

	leads, _, err := s.repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "+254112345678", leads[0].Phone)
	assert.Equal(t, "coach", leads[0].Flow)
	assert.Len(t, leads[0].PlanID, lead.SlugLength)

	answered, err := leads[0].Answers()
	require.NoError(t, err)
	assert.Equal(t, "21_day_abs", answered.SelectedProgram)
}
