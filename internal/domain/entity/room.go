package entity

import "time"

// Climatización de la habitación.
const (
	ClimateAC  = "AC"  // aire acondicionado
	ClimateFAN = "FAN" // ventilador
)

// Room representa una habitación del hotel. Number es un string único pero
// se ordena numéricamente en el dashboard ("2" antes que "10").
type Room struct {
	ID            string
	Number        string
	Climate       string // ClimateAC | ClimateFAN
	IsMaintenance bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Bed representa una cama dentro de una habitación. Label es único dentro de
// la habitación (ej: "A", "B"). Una cama admite a lo sumo una reserva viva.
type Bed struct {
	ID        string
	RoomID    string
	Label     string
	CreatedAt time.Time
}
