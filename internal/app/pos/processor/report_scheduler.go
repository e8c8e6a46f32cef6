package processor

import (
	"context"

	"github.com/robfig/cron/v3"

	"rostipos/internal/app/pos/service"
	"rostipos/pkg/logger"
)

// ReportScheduler logs the day's sales summary on a cron schedule,
// normally once per night after closing.
type ReportScheduler struct {
	cron     *cron.Cron
	statsSvc service.EstadisticasServiceInterface
}

func NewReportScheduler(statsSvc service.EstadisticasServiceInterface) *ReportScheduler {
	return &ReportScheduler{
		cron:     cron.New(),
		statsSvc: statsSvc,
	}
}

func (s *ReportScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("Starting report scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		s.logResumenDelDia(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()

	// Run once at startup so a restart mid-day still surfaces the numbers.
	s.logResumenDelDia(ctx)

	return nil
}

func (s *ReportScheduler) logResumenDelDia(ctx context.Context) {
	total, pedidos, err := s.statsSvc.ResumenDelDia(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute daily sales summary")
		return
	}

	logger.Info().
		Float64("total_ventas", total).
		Int64("pedidos", pedidos).
		Msg("Daily sales summary")
}

func (s *ReportScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Report scheduler stopped")
}

func (s *ReportScheduler) GetEntries() []cron.Entry {
	return s.cron.Entries()
}
