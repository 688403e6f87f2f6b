package mocks

import (
	"context"

	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// MockScanEngine is a mock implementation of domain.ScanEngine
type MockScanEngine struct {
	EvaluateFunc    func(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error)
	HealthCheckFunc func(ctx context.Context) error
}

// Evaluate mocks the Evaluate method
func (m *MockScanEngine) Evaluate(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, scanID, dataSourceYAML, checksYAML)
	}
	return &entity.ScanResults{}, nil
}

// HealthCheck mocks the HealthCheck method
func (m *MockScanEngine) HealthCheck(ctx context.Context) error {
	if m.HealthCheckFunc != nil {
		return m.HealthCheckFunc(ctx)
	}
	return nil
}
