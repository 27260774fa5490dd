package paymentservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учёт длительности исходящих вызовов
type Metrics interface {
	ObserveIntegration(service, operation string, started time.Time, err error)
}
