package mocks

import (
	"context"
	"testing"

	"github.com/monokpe/james-ecom/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockEmailService struct {
	mock.Mock
}

func NewMockEmailService(t *testing.T) *MockEmailService {
	m := &MockEmailService{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	return m.Called(ctx, req).Error(0)
}
