// Package reports manages generated reports.
package reports

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/report"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// Service owns report generation.
type Service struct {
	store       storage.ReportStore
	initiatives storage.InitiativeStore
	generator   ai.Generator
	log         *logrus.Logger
}

// New constructs the reports service.
func New(store storage.ReportStore, initiatives storage.InitiativeStore, generator ai.Generator, log *logrus.Logger) *Service {
	return &Service{store: store, initiatives: initiatives, generator: generator, log: log}
}

// List returns every report.
func (s *Service) List(ctx context.Context) ([]report.Report, error) {
	return s.store.ListReports(ctx)
}

// GenerateProgress builds a progress report over the current initiative
// portfolio: AI insights plus the initiative snapshot they were derived
// from. Insight generation failure degrades to the fixed fallback text.
func (s *Service) GenerateProgress(ctx context.Context) (report.Report, error) {
	initiatives, err := s.initiatives.ListInitiatives(ctx)
	if err != nil {
		return report.Report{}, err
	}

	start := time.Now()
	insights, genErr := s.generator.SummarizeProgress(ctx, initiatives)
	metrics.RecordGeneratorCall("summarize_progress", time.Since(start), genErr)
	if genErr != nil {
		s.log.WithError(genErr).Warn("progress insight generation failed")
		insights = ai.FallbackProgressInsights
	}

	rep := report.Report{
		Title: "Отчет за прогрес на инициативи",
		Type:  report.TypeProgress,
		Content: report.Content{
			Progress: &report.ProgressContent{
				Insights:    insights,
				Initiatives: initiatives,
				GeneratedAt: time.Now().UTC(),
			},
		},
		GeneratedBy: user.SystemID,
	}
	if err := rep.Validate(); err != nil {
		return report.Report{}, err
	}

	created, err := s.store.CreateReport(ctx, rep)
	if err != nil {
		return report.Report{}, err
	}
	s.log.WithField("report_id", created.ID).Info("progress report generated")
	return created, nil
}
