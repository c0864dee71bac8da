package telemetry

// Batcher exposes the span's internal batcher for testing.
func (s *OTelSpan) Batcher() *Batcher {
	return s.batcher
}
