package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/user"
)

// Seed installs the default dashboard user and a handful of sample
// initiatives. Intended for local development and demos; calling it twice
// fails on the duplicate ids.
func (s *Store) Seed(ctx context.Context) error {
	if _, err := s.CreateUser(ctx, user.User{
		ID:       user.SystemID,
		Username: "ivan.petrov",
		Password: "password",
		Role:     user.DefaultRole,
	}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	samples := []initiative.Initiative{
		{
			ID:          "init-1",
			Title:       "Автоматизация на процеси",
			Description: "Внедряване на автоматизирани процеси в организацията",
			Status:      initiative.StatusActive,
			Progress:    76,
			Priority:    initiative.PriorityHigh,
			StartDate:   date(2024, time.January, 1),
			EndDate:     date(2024, time.December, 31),
		},
		{
			ID:          "init-2",
			Title:       "Цифрова стратегия",
			Description: "Разработване на цифрова стратегия за компанията",
			Status:      initiative.StatusActive,
			Progress:    45,
			Priority:    initiative.PriorityHigh,
			StartDate:   date(2024, time.February, 1),
			EndDate:     date(2024, time.November, 30),
		},
		{
			ID:          "init-3",
			Title:       "Обучение на персонала",
			Description: "Обучение на служителите за дигитални технологии",
			Status:      initiative.StatusActive,
			Progress:    92,
			Priority:    initiative.PriorityMedium,
			StartDate:   date(2024, time.March, 1),
			EndDate:     date(2024, time.August, 31),
		},
		{
			ID:          "init-4",
			Title:       "Модернизация на ИТ",
			Description: "Обновяване на ИТ инфраструктурата",
			Status:      initiative.StatusActive,
			Progress:    23,
			Priority:    initiative.PriorityHigh,
			StartDate:   date(2024, time.April, 1),
			EndDate:     date(2025, time.March, 31),
		},
	}

	for _, in := range samples {
		if _, err := s.CreateInitiative(ctx, in); err != nil {
			return fmt.Errorf("seed initiative %s: %w", in.ID, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
