package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

func TestParseDueDate(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	got, err := entity.ParseDueDate("2024-05-31", sp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, sp), got)

	// 01:00Z ainda é dia 30 em São Paulo
	got, err = entity.ParseDueDate("2024-05-31T01:00:00Z", sp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 30, 0, 0, 0, 0, sp), got)
}

func TestParseDueDateMissingOrInvalid(t *testing.T) {
	_, err := entity.ParseDueDate("", time.UTC)
	assert.ErrorIs(t, err, entity.ErrDueDateMissing)

	_, err = entity.ParseDueDate("   ", time.UTC)
	assert.ErrorIs(t, err, entity.ErrDueDateMissing)

	_, err = entity.ParseDueDate("31/05/2024", time.UTC)
	assert.ErrorIs(t, err, entity.ErrDueDateInvalid)
}

func TestDelivered(t *testing.T) {
	assert.True(t, entity.Order{StatusNFFiscal: "Entregue"}.Delivered())
	assert.False(t, entity.Order{StatusNFFiscal: "entregue"}.Delivered())
	assert.False(t, entity.Order{}.Delivered())
}

func TestRunReportCount(t *testing.T) {
	r := entity.RunReport{Outcomes: []entity.DispatchOutcome{
		{Status: entity.DispatchSent}, {Status: entity.DispatchFailed}, {Status: entity.DispatchSent},
	}}

	assert.Equal(t, 2, r.Count(entity.DispatchSent))
	assert.Equal(t, 1, r.Count(entity.DispatchFailed))
	assert.Equal(t, 0, r.Count(entity.DispatchSkipped))
}
