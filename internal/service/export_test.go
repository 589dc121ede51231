package service

import (
	"testing"
	"time"
)

// SetReportTimeout подменяет срок отчёта о предупреждении на время теста.
func SetReportTimeout(t testing.TB, d time.Duration) {
	old := reportTimeout
	reportTimeout = d
	t.Cleanup(func() { reportTimeout = old })
}
