package metrics

import "time"

// RecordReload records the outcome and latency of one content reload.
func RecordReload(err error, took time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	ReloadsTotal.WithLabelValues(status).Inc()
	ReloadDuration.Observe(took.Seconds())
}

// RecordSnapshot publishes the size of a newly published snapshot.
func RecordSnapshot(poolSizes map[string]int, traits int) {
	for pool, n := range poolSizes {
		ContentEntries.WithLabelValues(pool).Set(float64(n))
	}
	FishTraits.Set(float64(traits))
}

// RecordSkipped counts raw rows dropped during parsing, keyed by reason.
func RecordSkipped(skipped map[string]int) {
	for reason, n := range skipped {
		if n > 0 {
			RowsSkipped.WithLabelValues(reason).Add(float64(n))
		}
	}
}

// RecordEvaluation counts one draw against a pool.
func RecordEvaluation(pool string, caught bool) {
	outcome := OutcomeNothing
	if caught {
		outcome = OutcomeCaught
	}
	EvaluationsTotal.WithLabelValues(pool, outcome).Inc()
}

// RecordItemLookup counts one cached item lookup.
func RecordItemLookup(hit bool) {
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	ItemLookupsTotal.WithLabelValues(result).Inc()
}
