// Package notify implementa el puerto Notifier. La versión actual escribe al
// log estructurado; el frontend consume los resultados por polling.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agenciaflow/agencia-api/internal/application/review"
)

var _ review.Notifier = (*LogNotifier)(nil)

// LogNotifier notificador respaldado por zerolog.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

// Notify registra el evento. Nunca falla ni bloquea al llamador.
func (n *LogNotifier) Notify(_ context.Context, event, message string) {
	n.log.Info().Str("event", event).Msg(message)
}
