package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const registrationsCollection = "registros"

type RegistrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{coll: db.Collection(registrationsCollection)}
}

// Exists: ¿ya hay un registro para este email Y este imei? Tienen que
// coincidir los dos campos: el mismo cliente puede haber registrado otro
// equipo y aún deberle el registro a este.
func (r *RegistrationRepository) Exists(ctx context.Context, customerEmail, imei string) (bool, error) {
	filter := bson.D{
		{Key: "customerEmail", Value: customerEmail},
		{Key: "imei1", Value: imei},
	}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error al consultar registros: %w", err)
	}

	return count > 0, nil
}
