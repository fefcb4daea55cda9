package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDueDateString(t *testing.T) {
	native := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", dueDateString(nil))
	assert.Equal(t, "2024-05-31", dueDateString("2024-05-31"))
	assert.Equal(t, "2024-05-31", dueDateString(primitive.NewDateTimeFromTime(native)))
	assert.Equal(t, "2024-05-31", dueDateString(native))
	assert.Equal(t, "", dueDateString(int32(20240531)))
}

func TestOrderDocToEntity(t *testing.T) {
	d := orderDoc{
		NumeroPedido:    int32(1042),
		Fornecedor:      "Distribuidora Sul",
		StatusNFFiscal:  "Pendente",
		DataVencimento:  "2024-06-01",
		NomeColaborador: "Ana",
	}

	o := d.toEntity()

	assert.Equal(t, "1042", o.NumeroPedido)
	assert.Equal(t, "2024-06-01", o.DataVencimento)
	assert.Equal(t, "Ana", o.NomeColaborador)
}
