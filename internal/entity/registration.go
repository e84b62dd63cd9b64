package entity

import "context"

// Registration: registro de dispositivo completado (colección "registros").
// Lo escribe el flujo de compra; para este servicio es solo lectura.
type Registration struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	CustomerEmail string `bson:"customerEmail" json:"customer_email"`
	IMEI1         string `bson:"imei1" json:"imei1"`
}

type RegistrationRepositoryInterface interface {

	// Exists verifica si ya hay un registro para ese email Y ese imei.
	// El email solo no alcanza: un cliente puede registrar varios equipos
	// y el lead apunta a uno en particular.
	Exists(ctx context.Context, customerEmail, imei string) (bool, error)
}
