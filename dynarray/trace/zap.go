package trace

import "go.uber.org/zap"

var _ Recorder = &ZapRecorder{}

// ZapRecorder logs every event through a zap.Logger. Error latches are
// logged at Warn, every other transition at Debug.
type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(logger *zap.Logger) *ZapRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapRecorder{logger: logger}
}

func (r *ZapRecorder) Record(ev Event) {
	fields := []zap.Field{
		zap.String("arrayId", ev.ArrayID),
		zap.Uint64("handle", ev.Handle),
		zap.String("kind", string(ev.Kind)),
		zap.String("op", ev.Op),
		zap.Uint64("oldCap", ev.OldCap),
		zap.Uint64("newCap", ev.NewCap),
		zap.Uint64("size", ev.Size),
		zap.Any("span", ev.Span),
	}
	if ev.Reason != "" {
		fields = append(fields, zap.String("reason", ev.Reason))
	}

	switch ev.Kind {
	case KindError:
		r.logger.Warn("dynamic array error latched", fields...)
	default:
		r.logger.Debug("dynamic array capacity event", fields...)
	}
}
