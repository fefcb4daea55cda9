//go:build integration
// +build integration

package mongodb

/*
	Para rodar: go test -tags=integration -v ./internal/infra/mongodb -count=1
*/

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRepositories_Integration_ReadOrdersAndDirectory(t *testing.T) {
	ctx := context.Background()

	mongoC, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tc.TerminateContainer(mongoC) })

	uri, err := mongoC.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewMongoClient(uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	db := client.Database("alertas_test")

	_, err = db.Collection(OrdersCollection).InsertMany(ctx, []any{
		bson.M{"numeroPedido": "P-1", "fornecedor": "Acme", "statusNFFiscal": "Pendente", "dataVencimento": "2024-05-31", "nomeColaborador": "Ana"},
		bson.M{"numeroPedido": 77, "fornecedor": "Beta", "statusNFFiscal": "Entregue", "dataVencimento": time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), "nomeColaborador": "Bruno"},
		bson.M{"numeroPedido": "P-3", "fornecedor": "Gama", "nomeColaborador": "Ana"},
	})
	require.NoError(t, err)

	_, err = db.Collection(CollaboratorsCollection).InsertMany(ctx, []any{
		bson.M{"_id": "a-compras", "nome": "Compras", "items": bson.A{
			bson.M{"nome": "Ana", "email": "ana@x.com"},
		}},
		bson.M{"_id": "b-financeiro", "nome": "Financeiro", "items": bson.A{
			bson.M{"nome": "Bruno"},
		}},
	})
	require.NoError(t, err)

	orders, err := NewOrderRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	byID := map[string]string{}
	for _, o := range orders {
		byID[o.NumeroPedido] = o.DataVencimento
	}
	assert.Equal(t, "2024-05-31", byID["P-1"])
	assert.Equal(t, "2024-06-02", byID["77"])
	assert.Equal(t, "", byID["P-3"])

	units, err := NewCollaboratorRepository(db).FindAllUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Compras", units[0].Nome)
	assert.Equal(t, "ana@x.com", units[0].Items[0].Email)
	assert.Empty(t, units[1].Items[0].Email)
}
