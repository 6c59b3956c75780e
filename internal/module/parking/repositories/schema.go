package repositories

import "parking-service/internal/pkg/database"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS parking_slots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slot_number INTEGER UNIQUE NOT NULL,
	vehicle_type TEXT NOT NULL,
	is_occupied BOOLEAN NOT NULL DEFAULT 0,
	vehicle_number TEXT,
	vehicle_owner TEXT,
	in_time TEXT,
	out_time TEXT,
	payment_status TEXT,
	amount REAL
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS parking_slots (
	id SERIAL PRIMARY KEY,
	slot_number INTEGER UNIQUE NOT NULL,
	vehicle_type TEXT NOT NULL,
	is_occupied BOOLEAN NOT NULL DEFAULT FALSE,
	vehicle_number TEXT,
	vehicle_owner TEXT,
	in_time TEXT,
	out_time TEXT,
	payment_status TEXT,
	amount DOUBLE PRECISION
)`

func schemaFor(driver string) string {
	if driver == database.DriverPostgres {
		return postgresSchema
	}
	return sqliteSchema
}
