package handlers

import (
	"context"
	"net/http"
	"time"

	"gasmeter"
	"gasmeter/internal/aga8"
	"gasmeter/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockGasReport struct {
	rec         gasmeter.ReportRecord
	genErr      error
	ev          aga8.ZEvaluation
	evErr       error
	genCalls    int
	evCalls     int
	lastParams  service.ReportParams
	lastZParams service.ReportParams
}

func (m *mockGasReport) Generate(ctx context.Context, p service.ReportParams) (gasmeter.ReportRecord, error) {
	m.genCalls++
	m.lastParams = p
	return m.rec, m.genErr
}
func (m *mockGasReport) EvaluateZ(ctx context.Context, p service.ReportParams) (aga8.ZEvaluation, error) {
	m.evCalls++
	m.lastZParams = p
	return m.ev, m.evErr
}

type mockHistory struct {
	records    []gasmeter.ReportRecord
	listErr    error
	rec        gasmeter.ReportRecord
	getErr     error
	latest     gasmeter.ReportRecord
	latestErr  error
	lastFilter service.HistoryFilter
	lastGetID  string
}

func (m *mockHistory) List(ctx context.Context, f service.HistoryFilter) ([]gasmeter.ReportRecord, error) {
	m.lastFilter = f
	return m.records, m.listErr
}
func (m *mockHistory) Get(ctx context.Context, id string) (gasmeter.ReportRecord, error) {
	m.lastGetID = id
	return m.rec, m.getErr
}
func (m *mockHistory) Latest(ctx context.Context) (gasmeter.ReportRecord, error) {
	return m.latest, m.latestErr
}

type mockRetention struct{}

func (m *mockRetention) Run(ctx context.Context, tick time.Duration) {}
func (m *mockRetention) PruneOnce(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func sampleRecord() gasmeter.ReportRecord {
	return gasmeter.ReportRecord{
		ID:              "rec-1",
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Strategy:        "cubic",
		PressureBarg:    20,
		TemperatureDegC: 25,
		Composition:     map[string]float64{"methane": 94.5, "ethane": 3.2, "propane": 1.1, "n-butane": 0.3, "nitrogen": 0.7, "carbon_dioxide": 0.2},
		Report: gasmeter.Report{
			BasicProperties: gasmeter.BasicProperties{
				MolecularWeight:       17.07,
				SpecificGravity:       0.589,
				CompressibilityFactor: 0.953,
				DensityKgM3:           15.9,
			},
			Compliance: gasmeter.Compliance{
				Method:   "AGA8-92DC (simplified)",
				Strategy: "cubic",
			},
		},
	}
}
