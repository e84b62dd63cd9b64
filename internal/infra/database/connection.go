package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrMongoUnavailable = errors.New("no se pudo conectar a Mongo")

// NewConnection abre el cliente de Mongo y hace Ping antes de devolverlo.
// Reintenta hasta 3 veces: el job corre agendado y abortar por un parpadeo
// de red significa esperar una hora hasta la próxima corrida.
func NewConnection(ctx context.Context, connString string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(connString).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(10).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(5 * time.Minute)

	for i := 0; i < 3; i++ {
		client, err := mongo.Connect(opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		time.Sleep(2 * time.Second)
	}

	return nil, ErrMongoUnavailable
}
