package recorder

import "github.com/Arushi221/got-trading-bot/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTrade(_ *model.Transaction) error    { return nil }
func (n *NoopRecorder) RecordSignals(_ *SignalSnapshot) error     { return nil }
func (n *NoopRecorder) RecordValuation(_ *ValuationRecord) error  { return nil }
func (n *NoopRecorder) Close() error                              { return nil }
