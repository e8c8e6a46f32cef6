package processor

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter("pos-test", "error", io.Discard)
	os.Exit(m.Run())
}

type MockEstadisticasService struct {
	mock.Mock
}

func (m *MockEstadisticasService) GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Estadisticas), args.Error(1)
}

func (m *MockEstadisticasService) ResumenDelDia(ctx context.Context) (float64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func TestReportScheduler_StartRunsSummaryImmediately(t *testing.T) {
	// Arrange
	statsSvc := new(MockEstadisticasService)
	statsSvc.On("ResumenDelDia", mock.Anything).Return(350.0, int64(12), nil)
	scheduler := NewReportScheduler(statsSvc)
	defer scheduler.Stop()

	// Act
	err := scheduler.Start(context.Background(), "30 23 * * *")

	// Assert
	require.NoError(t, err)
	assert.Len(t, scheduler.GetEntries(), 1)
	statsSvc.AssertNumberOfCalls(t, "ResumenDelDia", 1)
}

func TestReportScheduler_StartInvalidSchedule(t *testing.T) {
	// Arrange
	statsSvc := new(MockEstadisticasService)
	scheduler := NewReportScheduler(statsSvc)

	// Act
	err := scheduler.Start(context.Background(), "not a cron spec")

	// Assert
	assert.Error(t, err)
	assert.Empty(t, scheduler.GetEntries())
	statsSvc.AssertNotCalled(t, "ResumenDelDia", mock.Anything)
}

func TestReportScheduler_SummaryErrorDoesNotPanic(t *testing.T) {
	// Arrange
	statsSvc := new(MockEstadisticasService)
	statsSvc.On("ResumenDelDia", mock.Anything).Return(0.0, int64(0), errors.New("db down"))
	scheduler := NewReportScheduler(statsSvc)
	defer scheduler.Stop()

	// Act
	err := scheduler.Start(context.Background(), "30 23 * * *")

	// Assert
	require.NoError(t, err)
	statsSvc.AssertNumberOfCalls(t, "ResumenDelDia", 1)
}

func TestReportScheduler_Stop(t *testing.T) {
	// Arrange
	statsSvc := new(MockEstadisticasService)
	statsSvc.On("ResumenDelDia", mock.Anything).Return(0.0, int64(0), nil)
	scheduler := NewReportScheduler(statsSvc)
	require.NoError(t, scheduler.Start(context.Background(), "@every 1h"))

	// Act
	scheduler.Stop()

	// Assert: only the startup run happened, nothing fires after Stop.
	statsSvc.AssertNumberOfCalls(t, "ResumenDelDia", 1)
}
