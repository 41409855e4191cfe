package importer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros crudos del datastore remoto, con sus ids UUID originales y las
// referencias entre ellos también por UUID. El importador los traduce a
// entidades locales vía el mapeador de ids.

type UserRecord struct {
	ID          string
	UserName    string
	Email       string
	Password    string
	Role        string
	CountryCode string
	Mobile      string
	Status      bool
	CreatedAt   time.Time
}

type CompanyRecord struct {
	ID         string
	Name       string
	LocationID *string
	Status     bool
	CreatedAt  time.Time
}

type VehicleRecord struct {
	ID        string
	Number    string
	CompanyID string
	Status    bool
	CreatedAt time.Time
}

type ProductRecord struct {
	ID           string
	CompanyID    string
	VehicleID    string
	SlipNumber   string
	PurchaseDate string
	Bag          int
	Price        decimal.Decimal
	Weight       decimal.Decimal
	NetWeight    decimal.Decimal
	TotalPrice   decimal.Decimal
	FinalPrice   decimal.Decimal
	CreatedAt    time.Time
}

type OrderRecord struct {
	ID        string
	ProductID string
	Status    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

type TransactionRecord struct {
	ID          string
	Type        string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

type CityRecord struct {
	ID        string
	Name      string
	Status    bool
	CreatedAt time.Time
}

type AlertRecord struct {
	ID        string
	Type      string
	Message   string
	Resolved  bool
	CreatedAt time.Time
}
