package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReload(t *testing.T) {
	okBefore := testutil.ToFloat64(ReloadsTotal.WithLabelValues(StatusSuccess))
	failBefore := testutil.ToFloat64(ReloadsTotal.WithLabelValues(StatusFailure))

	RecordReload(nil, 10*time.Millisecond)
	RecordReload(errors.New("boom"), time.Millisecond)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ReloadsTotal.WithLabelValues(StatusSuccess)))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(ReloadsTotal.WithLabelValues(StatusFailure)))
}

func TestRecordSnapshotAndSkipped(t *testing.T) {
	RecordSnapshot(map[string]int{"fish": 12, "trash": 3}, 7)
	assert.Equal(t, float64(12), testutil.ToFloat64(ContentEntries.WithLabelValues("fish")))
	assert.Equal(t, float64(3), testutil.ToFloat64(ContentEntries.WithLabelValues("trash")))
	assert.Equal(t, float64(7), testutil.ToFloat64(FishTraits))

	before := testutil.ToFloat64(RowsSkipped.WithLabelValues("too_few_fields"))
	RecordSkipped(map[string]int{"too_few_fields": 2, "bad_number": 0})
	assert.Equal(t, before+2, testutil.ToFloat64(RowsSkipped.WithLabelValues("too_few_fields")))
}

func TestRecordEvaluation(t *testing.T) {
	before := testutil.ToFloat64(EvaluationsTotal.WithLabelValues("treasure", OutcomeNothing))
	RecordEvaluation("treasure", false)
	assert.Equal(t, before+1, testutil.ToFloat64(EvaluationsTotal.WithLabelValues("treasure", OutcomeNothing)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/api/v1/catch/{pool}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/catch/{pool}", "202")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catch/fish", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
