package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStatusTransition(t *testing.T) {
	before := testutil.ToFloat64(statusTransitions.WithLabelValues("DRAFT", "SUBMITTED"))
	RecordStatusTransition("DRAFT", "SUBMITTED")
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransitions.WithLabelValues("DRAFT", "SUBMITTED")))
}

func TestRecordDocumentUpload(t *testing.T) {
	before := testutil.ToFloat64(documentUploads.WithLabelValues("Site Plan", "true"))
	RecordDocumentUpload("Site Plan", true)
	assert.Equal(t, before+1, testutil.ToFloat64(documentUploads.WithLabelValues("Site Plan", "true")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveRequest(http.MethodGet, "/v1/ping", "200", 0.01)
	RecordApplicationCreated()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "permit_tracker_http_requests_total"))
	assert.True(t, strings.Contains(body, "permit_tracker_applications_created_total"))
}
