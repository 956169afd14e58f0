package resolving

import (
	"testing"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHistory(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Filtra ruído e preserva a ordem do upstream", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Actor: "Ana", Action: "create_ad_set"},
			{Timestamp: ts, Actor: "Ana", Action: "like_page"},
			{Timestamp: ts, Actor: "Bruno", Action: "update_ad_set_budget", Details: "daily_budget: 1500 -> 2000"},
		}

		changes := ClassifyHistory(entries)

		require.Len(t, changes, 2)
		assert.Equal(t, domain.ChangeCategoryCreated, changes[0].Category)
		assert.Equal(t, "Adset created", changes[0].Title)
		assert.Equal(t, "Ana", changes[0].Actor)
		assert.Equal(t, domain.ChangeCategoryBudget, changes[1].Category)
		assert.Equal(t, "Budget updated", changes[1].Title)
		assert.Equal(t, "Bruno", changes[1].Actor)
	})

	t.Run("Cronograma tem prioridade sobre orçamento na titulação", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Action: "update_ad_set_run_status", Details: "end_time: 2024-06-30 -> 2024-07-15"},
			{Timestamp: ts, Action: "update_ad_set_duration", Details: "budget unchanged"},
		}

		changes := ClassifyHistory(entries)

		require.Len(t, changes, 2)
		assert.Equal(t, domain.ChangeCategorySchedule, changes[0].Category)
		assert.Equal(t, "Schedule updated", changes[0].Title)
		assert.Equal(t, domain.ChangeCategorySchedule, changes[1].Category)
		assert.Equal(t, "Schedule updated", changes[1].Title)
	})

	t.Run("Orçamento tem prioridade sobre renomeação na titulação", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Action: "update_ad_set_name", Details: "daily_budget: 1500 -> 2000"},
		}

		changes := ClassifyHistory(entries)

		require.Len(t, changes, 1)
		assert.Equal(t, domain.ChangeCategoryBudget, changes[0].Category)
		assert.Equal(t, "Budget updated", changes[0].Title)
	})

	t.Run("Criação é testada só contra a ação", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Action: "update_ad_set_budget", Details: "created by automation"},
		}

		changes := ClassifyHistory(entries)

		require.Len(t, changes, 1)
		assert.Equal(t, domain.ChangeCategoryBudget, changes[0].Category)
	})

	t.Run("Palavras que apenas contêm create não casam", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Action: "recreate_audience"},
			{Timestamp: ts, Action: "update_creative"},
		}

		assert.Empty(t, ClassifyHistory(entries))
	})

	t.Run("Detalhes também contam para orçamento e cronograma", func(t *testing.T) {
		entries := []domain.HistoryEntry{
			{Timestamp: ts, Action: "edit", Details: "lifetime_budget: 50000 -> 60000"},
			{Timestamp: ts, Action: "edit", Details: "start_time moved"},
		}

		changes := ClassifyHistory(entries)

		require.Len(t, changes, 2)
		assert.Equal(t, domain.ChangeCategoryBudget, changes[0].Category)
		assert.Equal(t, domain.ChangeCategorySchedule, changes[1].Category)
	})

	t.Run("Lista ausente degrada para resultado vazio", func(t *testing.T) {
		assert.Empty(t, ClassifyHistory(nil))
		assert.Empty(t, ClassifyHistory([]domain.HistoryEntry{}))
	})
}
