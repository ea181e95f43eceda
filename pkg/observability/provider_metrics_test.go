package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordProviderCall(t *testing.T) {
	counter := providerRequestsTotal.WithLabelValues("v3", "get_agreement", "200")
	before := testutil.ToFloat64(counter)

	RecordProviderCall("v3", "get_agreement", "200", 0.12)
	RecordProviderCall("v3", "get_agreement", "200", 0.08)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecordTokenFetch(t *testing.T) {
	success := tokenFetchesTotal.WithLabelValues("ecomm", "success")
	failure := tokenFetchesTotal.WithLabelValues("ecomm", "failure")
	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	RecordTokenFetch("ecomm", true)
	RecordTokenFetch("ecomm", false)
	RecordTokenFetch("ecomm", false)

	assert.Equal(t, beforeSuccess+1, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+2, testutil.ToFloat64(failure))
}
