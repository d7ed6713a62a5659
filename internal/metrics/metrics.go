package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// LedgerMetrics counts ledger traffic.
type LedgerMetrics struct {
	CodesIssuedTotal    prometheus.Counter
	ScansTotal          *prometheus.CounterVec
	PointsCreditedTotal prometheus.Counter
	TicketsClaimedTotal prometheus.Counter
	RedemptionsTotal    *prometheus.CounterVec
	RowsSweptTotal      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *LedgerMetrics {
	factory := promauto.With(reg)
	return &LedgerMetrics{
		CodesIssuedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_codes_issued_total",
			Help: "Purchase codes issued at the point of sale",
		}),
		ScansTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_scans_total",
			Help: "Purchase code scans by outcome",
		}, []string{"result"}),
		PointsCreditedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_points_credited_total",
			Help: "Points credited to client balances",
		}),
		TicketsClaimedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_tickets_claimed_total",
			Help: "Reward tickets issued to clients",
		}),
		RedemptionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_redemptions_total",
			Help: "Reward ticket redemptions by outcome",
		}, []string{"result"}),
		RowsSweptTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_rows_swept_total",
			Help: "Expired rows removed by the retention sweeper",
		}, []string{"kind"}),
	}
}

func (m *LedgerMetrics) RecordCodeIssued() {
	m.CodesIssuedTotal.Inc()
}

func (m *LedgerMetrics) RecordScan(result string, points int) {
	m.ScansTotal.WithLabelValues(result).Inc()
	if points > 0 {
		m.PointsCreditedTotal.Add(float64(points))
	}
}

func (m *LedgerMetrics) RecordTicketClaimed() {
	m.TicketsClaimedTotal.Inc()
}

func (m *LedgerMetrics) RecordRedemption(result string) {
	m.RedemptionsTotal.WithLabelValues(result).Inc()
}

func (m *LedgerMetrics) RecordSwept(kind string, rows int64) {
	m.RowsSweptTotal.WithLabelValues(kind).Add(float64(rows))
}
