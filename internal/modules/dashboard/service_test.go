package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"barbercrm/internal/cache"
	"barbercrm/internal/domain"
	"barbercrm/internal/submission"
	"barbercrm/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockCounts struct {
	mock.Mock
}

func (m *mockCounts) CountForMonth(ctx context.Context, branchID int64, start, end time.Time) (map[string]int, error) {
	args := m.Called(ctx, branchID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type mockBranchRepo struct {
	mock.Mock
}

func (m *mockBranchRepo) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *mockBranchRepo) SetGoalOverrides(ctx context.Context, id int64, overrides map[string]int) error {
	args := m.Called(ctx, id, overrides)
	return args.Error(0)
}

var march2026 = tracking.Month{Year: 2026, Month: time.March}

func newTestService(t *testing.T, counts *mockCounts, branches *mockBranchRepo, bs BreakerSettings) *Service {
	t.Helper()
	c := cache.NewLocalCache(time.Minute, nil)
	t.Cleanup(func() { _ = c.Close() })

	svc := NewService(counts, branches, tracking.MustDefaultRegistry(), c, time.Minute, bs, NewHub(), nil)
	svc.now = func() time.Time { return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Summary_AppliesBranchOverrides(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Branch{ID: 1, Name: "Юг", GoalOverrides: map[string]int{tracking.MetricReviews: 50}}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(map[string]int{tracking.MetricReviews: 25, tracking.MetricFieldVisits: 4}, nil)

	svc := newTestService(t, counts, branches, BreakerSettings{})
	got, err := svc.Summary(context.Background(), 1, march2026)

	require.NoError(t, err)
	assert.False(t, got.Degraded)
	assert.Equal(t, "2026-03", got.Month)
	assert.Equal(t, "Март 2026", got.MonthLabel)
	require.Len(t, got.Metrics, 7)

	reviews := got.Metrics[tracking.MetricReviews]
	assert.Equal(t, 50, reviews.Goal)
	assert.Equal(t, 50.0, reviews.Percentage)
	assert.Equal(t, tracking.StatusBehind, reviews.Status)

	visits := got.Metrics[tracking.MetricFieldVisits]
	assert.Equal(t, 100.0, visits.Percentage)
	assert.Equal(t, tracking.StatusMet, visits.Status)

	assert.Equal(t, 0, got.Metrics[tracking.MetricOneOnOne].Current)
}

func TestService_Summary_QueriesMonthRange(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	counts.On("CountForMonth", mock.Anything, int64(1), start, end).Return(map[string]int{}, nil)

	svc := newTestService(t, counts, branches, BreakerSettings{})
	_, err := svc.Summary(context.Background(), 1, march2026)

	require.NoError(t, err)
	counts.AssertExpectations(t)
}

func TestService_Summary_CachesCounts(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(map[string]int{tracking.MetricMorningEvents: 8}, nil).Once()

	svc := newTestService(t, counts, branches, BreakerSettings{})
	first, err := svc.Summary(context.Background(), 1, march2026)
	require.NoError(t, err)
	second, err := svc.Summary(context.Background(), 1, march2026)
	require.NoError(t, err)

	assert.Equal(t, 8, first.Metrics[tracking.MetricMorningEvents].Current)
	assert.Equal(t, 8, second.Metrics[tracking.MetricMorningEvents].Current)
	assert.Equal(t, 50.0, second.Metrics[tracking.MetricMorningEvents].Percentage)
	counts.AssertNumberOfCalls(t, "CountForMonth", 1)
}

func TestService_Summary_DegradesToZeros(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := newTestService(t, counts, branches, BreakerSettings{})
	got, err := svc.Summary(context.Background(), 1, march2026)

	require.NoError(t, err)
	assert.True(t, got.Degraded)
	require.Len(t, got.Metrics, 7)
	for key, snap := range got.Metrics {
		assert.Equal(t, 0, snap.Current, key)
		assert.Equal(t, 0.0, snap.Percentage, key)
		assert.Positive(t, snap.Goal, key)
	}
}

func TestService_Summary_BreakerStopsQuerying(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	svc := newTestService(t, counts, branches, BreakerSettings{MaxFailures: 2, OpenTimeout: time.Hour})
	for i := 0; i < 4; i++ {
		got, err := svc.Summary(context.Background(), 1, march2026)
		require.NoError(t, err)
		assert.True(t, got.Degraded)
	}

	counts.AssertNumberOfCalls(t, "CountForMonth", 2)
}

func TestService_Summary_BranchNotFound(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(t, counts, branches, BreakerSettings{})
	_, err := svc.Summary(context.Background(), 5, march2026)

	assert.ErrorIs(t, err, ErrBranchNotFound)
	counts.AssertNotCalled(t, "CountForMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RecordsSubmitted_InvalidatesCurrentMonth(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(map[string]int{tracking.MetricReviews: 1}, nil).Once()
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(map[string]int{tracking.MetricReviews: 3}, nil).Once()

	svc := newTestService(t, counts, branches, BreakerSettings{})
	ctx := context.Background()

	before, err := svc.Summary(ctx, 1, svc.CurrentMonth())
	require.NoError(t, err)
	svc.RecordsSubmitted(ctx, 1, "Юг", submission.KindReview, 2)
	after, err := svc.Summary(ctx, 1, svc.CurrentMonth())
	require.NoError(t, err)

	assert.Equal(t, 1, before.Metrics[tracking.MetricReviews].Current)
	assert.Equal(t, 3, after.Metrics[tracking.MetricReviews].Current)
}

func TestService_UpdateGoals(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]int
		wantErr   error
	}{
		{"valid", map[string]int{tracking.MetricReviews: 52}, nil},
		{"clear", map[string]int{}, nil},
		{"unknown metric", map[string]int{"haircuts": 3}, tracking.ErrUnknownMetric},
		{"zero target", map[string]int{tracking.MetricReviews: 0}, tracking.ErrInvalidGoalTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branches := new(mockBranchRepo)
			if tt.wantErr == nil {
				branches.On("SetGoalOverrides", mock.Anything, int64(1), tt.overrides).Return(nil)
			}

			svc := newTestService(t, new(mockCounts), branches, BreakerSettings{})
			view, err := svc.UpdateGoals(context.Background(), 1, tt.overrides)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				branches.AssertNotCalled(t, "SetGoalOverrides", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			for k, v := range tt.overrides {
				assert.Equal(t, v, view.Goals[k])
			}
			assert.Equal(t, 16, view.Defaults[tracking.MetricMorningEvents])
			branches.AssertExpectations(t)
		})
	}
}

func TestService_Goals_ReportsOverrides(t *testing.T) {
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Branch{ID: 1, GoalOverrides: map[string]int{tracking.MetricFieldVisits: 5}}, nil)

	svc := newTestService(t, new(mockCounts), branches, BreakerSettings{})
	view, err := svc.Goals(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 5, view.Goals[tracking.MetricFieldVisits])
	assert.Equal(t, 4, view.Defaults[tracking.MetricFieldVisits])
	assert.Equal(t, map[string]int{tracking.MetricFieldVisits: 5}, view.Overrides)
	assert.Equal(t, "Полевые выходы", view.Labels[tracking.MetricFieldVisits])
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("branch_id", int64(1))
		c.Set("branch_name", "south")
		c.Next()
	})
	NewHandler(svc, svc.hub, nil).RegisterRoutes(g)
	return r
}

func TestHandler_GetSummary(t *testing.T) {
	counts := new(mockCounts)
	branches := new(mockBranchRepo)
	branches.On("GetByID", mock.Anything, int64(1)).Return(&domain.Branch{ID: 1}, nil)
	counts.On("CountForMonth", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(map[string]int{tracking.MetricOneOnOne: 3}, nil)

	r := newTestRouter(newTestService(t, counts, branches, BreakerSettings{}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard-summary/south?month=2026-02", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"month":"2026-02"`)
	assert.Contains(t, w.Body.String(), `"one_on_one":{"current":3,"goal":6,"percentage":50`)
}

func TestHandler_GetSummary_BadMonth(t *testing.T) {
	r := newTestRouter(newTestService(t, new(mockCounts), new(mockBranchRepo), BreakerSettings{}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard-summary/south?month=2026-13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_MONTH")
	assert.Contains(t, w.Body.String(), "YYYY-MM or «Март 2026»")
}

func TestHandler_UpdateGoals_UnknownMetric(t *testing.T) {
	branches := new(mockBranchRepo)
	r := newTestRouter(newTestService(t, new(mockCounts), branches, BreakerSettings{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/goals/south", strings.NewReader(`{"overrides":{"haircuts":3}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_METRIC")
	branches.AssertNotCalled(t, "SetGoalOverrides", mock.Anything, mock.Anything, mock.Anything)
}
