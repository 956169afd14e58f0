package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/alikitto/ad-dash/internal/config"
)

func TestMetaIntegrator_ListAdsets(t *testing.T) {
	insights := []metadomain.AdsetInsight{
		{
			AccountID:   "100",
			AdsetID:     "AD001",
			AdsetName:   "Conjunto A",
			Spend:       "150.00",
			Impressions: "10000",
		},
		{
			AccountID:   "100",
			AdsetID:     "AD002",
			AdsetName:   "Conjunto B",
			Spend:       "80.00",
			Impressions: "4000",
		},
	}

	t.Run("Linhas carregam o status de veiculação de cada conjunto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockClient(ctrl)
		integrator := New(&config.Config{}, mockClient)

		mockClient.EXPECT().
			GetAdsetInsightsByAccountID("100", nil).
			Return(insights, nil)

		mockClient.EXPECT().
			GetAdsetStatusesByAccountID("100").
			Return(map[string]string{
				"AD001": "ACTIVE",
				"AD002": "PAUSED",
			}, nil)

		rows, err := integrator.ListAdsets("100", nil)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ACTIVE", rows[0].Status)
		assert.Equal(t, "PAUSED", rows[1].Status)

		// O status também entra no registro bruto, como fonte de fallback
		// da resolução quando o registro de detalhes não responde
		assert.Equal(t, "ACTIVE", rows[0].Raw["status"])
	})

	t.Run("Falha na consulta de status não derruba a listagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockClient(ctrl)
		integrator := New(&config.Config{}, mockClient)

		mockClient.EXPECT().
			GetAdsetInsightsByAccountID("100", nil).
			Return(insights, nil)

		mockClient.EXPECT().
			GetAdsetStatusesByAccountID("100").
			Return(nil, assert.AnError)

		rows, err := integrator.ListAdsets("100", nil)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Empty(t, rows[0].Status)
		assert.NotContains(t, rows[0].Raw, "status")
	})

	t.Run("Conjunto sem status conhecido mantém a linha sem estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockClient(ctrl)
		integrator := New(&config.Config{}, mockClient)

		mockClient.EXPECT().
			GetAdsetInsightsByAccountID("100", nil).
			Return(insights, nil)

		mockClient.EXPECT().
			GetAdsetStatusesByAccountID("100").
			Return(map[string]string{"AD001": "ACTIVE"}, nil)

		rows, err := integrator.ListAdsets("100", nil)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ACTIVE", rows[0].Status)
		assert.Empty(t, rows[1].Status)
	})
}
