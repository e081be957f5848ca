package extensibility

import (
	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/core"
)

// NewLoggingListener returns a listener that logs every notified state at Info level.
func NewLoggingListener(logger *zap.Logger) core.Listener {
	return func(s *core.GraphState) {
		fields := []zap.Field{
			zap.String("state", string(s.Key)),
			zap.Any("selection", s.Selection),
			zap.String("item", s.ItemID),
			zap.Bool("available", s.Available),
		}
		if s.Price != nil {
			fields = append(fields, zap.Float64("price", s.Price.Value), zap.Bool("priceNotUnique", s.Price.NotUnique))
		}
		logger.Info("selection state", fields...)
	}
}
