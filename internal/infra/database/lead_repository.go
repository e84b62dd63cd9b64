package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/registroimeimultibanda/lead-followup/internal/entity"
)

const leadsCollection = "leads"

type LeadRepository struct {
	coll   *mongo.Collection
	minAge time.Duration
	maxAge time.Duration
}

func NewLeadRepository(db *mongo.Database, minAge, maxAge time.Duration) *LeadRepository {
	return &LeadRepository{
		coll:   db.Collection(leadsCollection),
		minAge: minAge,
		maxAge: maxAge,
	}
}

// FindEligible trae los leads pendientes dentro de la ventana, del más
// nuevo al más viejo. Mongo resuelve el rango compuesto en el servidor,
// así que no hace falta el post-filtro local que necesitaba Firestore.
func (r *LeadRepository) FindEligible(ctx context.Context, now time.Time) ([]*entity.Lead, error) {
	filter := eligibleFilter(now, r.minAge, r.maxAge)
	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("error al buscar leads elegibles: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*entity.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("error al leer leads: %w", err)
	}

	return leads, nil
}

// MarkFollowUpSent setea el flag y nada más. No hay vuelta atrás: un lead
// marcado queda fuera de todas las corridas futuras.
func (r *LeadRepository) MarkFollowUpSent(ctx context.Context, id string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "followUpSent", Value: true}}}}

	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("error al marcar lead %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead %s no existe", id)
	}

	return nil
}

// eligibleFilter: followUpSent=false y createdAt en [now-maxAge, now-minAge].
// Ambos bordes son inclusivos: justo 1h de edad ya entra ($lte) y justo
// 2 días todavía entra ($gte).
func eligibleFilter(now time.Time, minAge, maxAge time.Duration) bson.D {
	return bson.D{
		{Key: "followUpSent", Value: false},
		{Key: "createdAt", Value: bson.D{
			{Key: "$lte", Value: now.Add(-minAge)},
			{Key: "$gte", Value: now.Add(-maxAge)},
		}},
	}
}
