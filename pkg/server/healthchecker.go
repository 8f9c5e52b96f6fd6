package server

import "context"

// HealthChecker reports whether a dependency is ready to serve.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. Used when the service runs
// without external dependencies.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(_ context.Context) bool {
	return true
}

// PingHealthChecker adapts any ping-style dependency check.
type PingHealthChecker struct {
	ping func(ctx context.Context) error
}

func NewPingHealthChecker(ping func(ctx context.Context) error) *PingHealthChecker {
	return &PingHealthChecker{ping: ping}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	return hc.ping(ctx) == nil
}
