package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(OrdersCollection)}
}

// orderDoc aceita dataVencimento como string ou como data nativa do Mongo; datas
// nativas valem pelo dia em UTC, que é como o painel grava o campo.
type orderDoc struct {
	NumeroPedido    any    `bson:"numeroPedido"`
	Fornecedor      string `bson:"fornecedor"`
	StatusNFFiscal  string `bson:"statusNFFiscal"`
	DataVencimento  any    `bson:"dataVencimento"`
	NomeColaborador string `bson:"nomeColaborador"`
}

func (d orderDoc) toEntity() entity.Order {
	return entity.Order{
		NumeroPedido:    stringify(d.NumeroPedido),
		Fornecedor:      d.Fornecedor,
		StatusNFFiscal:  d.StatusNFFiscal,
		DataVencimento:  dueDateString(d.DataVencimento),
		NomeColaborador: d.NomeColaborador,
	}
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}
	defer cur.Close(ctx)

	list := []entity.Order{}
	for cur.Next(ctx) {
		var d orderDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("erro ao decodificar pedido: %w", err)
		}
		list = append(list, d.toEntity())
	}
	return list, cur.Err()
}

func dueDateString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case primitive.DateTime:
		return t.Time().UTC().Format("2006-01-02")
	case time.Time:
		return t.UTC().Format("2006-01-02")
	default:
		return ""
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
