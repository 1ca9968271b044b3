package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllSeries(t *testing.T) {
	IncEvaluationStarted()
	IncEvaluationCompleted()
	IncEvaluationFailed()
	IncParseFailure()
	ObserveOracleDurationMs(1234)

	out := Render()
	for _, series := range []string{
		"evaluation_started_total",
		"evaluation_completed_total",
		"evaluation_failed_total",
		"oracle_parse_failure_total",
		"oracle_call_duration_ms_bucket",
		"oracle_call_duration_ms_sum",
		"oracle_call_duration_ms_count",
	} {
		if !strings.Contains(out, series) {
			t.Fatalf("missing series %q in output:\n%s", series, out)
		}
	}
}

func TestObserveClampsNegativeDurations(t *testing.T) {
	before := oracleDuration.Snapshot()
	ObserveOracleDurationMs(-50)
	after := oracleDuration.Snapshot()
	if after.count != before.count+1 {
		t.Fatalf("expected observation recorded")
	}
	if after.sum < before.sum {
		t.Fatalf("negative value should be clamped to zero")
	}
}
