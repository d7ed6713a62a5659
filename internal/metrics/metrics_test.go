package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLedgerMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCodeIssued()
	m.RecordScan(ResultOK, 150)
	m.RecordScan(ResultRejected, 0)
	m.RecordTicketClaimed()
	m.RecordRedemption(ResultOK)
	m.RecordSwept("purchases", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CodesIssuedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansTotal.WithLabelValues(ResultRejected)))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.PointsCreditedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TicketsClaimedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RedemptionsTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsSweptTotal.WithLabelValues("purchases")))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
