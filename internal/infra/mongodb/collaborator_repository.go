package mongodb

import (
	"context"
	"fmt"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CollaboratorRepository struct {
	coll *mongo.Collection
}

func NewCollaboratorRepository(db *mongo.Database) *CollaboratorRepository {
	return &CollaboratorRepository{coll: db.Collection(CollaboratorsCollection)}
}

func (r *CollaboratorRepository) FindAllUnits(ctx context.Context) ([]entity.CollaboratorUnit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar colaboradores: %w", err)
	}
	defer cur.Close(ctx)

	units := []entity.CollaboratorUnit{}
	for cur.Next(ctx) {
		var u entity.CollaboratorUnit
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("erro ao decodificar setor: %w", err)
		}
		units = append(units, u)
	}
	return units, cur.Err()
}
