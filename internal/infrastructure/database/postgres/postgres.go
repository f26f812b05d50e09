package postgres

import (
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Connect opens a sqlx handle. The service keeps two of these: the local
// identity database and the read-only payroll database. Outside of test
// runs the driver is wrapped with otelsql so queries show up as spans.
func Connect(user, password, host, port, dbName, environment string) (*sqlx.DB, error) {
	driverName := "postgres"

	if environment != "test" {
		registered, err := otelsql.Register("postgres",
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		)
		if err != nil {
			return nil, err
		}
		driverName = registered
	}

	db, err := sqlx.Connect(driverName, fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName))
	if err != nil {
		return nil, err
	}

	return db, nil
}
