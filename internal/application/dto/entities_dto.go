package dto

import "github.com/shopspring/decimal"

// Requests de creación y actualización por recurso. Los updates usan punteros
// para distinguir "campo ausente" de "campo en cero".

type CreateUserRequest struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email_address"`
	Password    string `json:"password"`
	Role        string `json:"type"`
	CountryCode string `json:"country_code"`
	Mobile      string `json:"mobile_number"`
	Status      bool   `json:"status"`
}

type UpdateUserRequest struct {
	UserName    *string `json:"user_name"`
	Email       *string `json:"email_address"`
	Password    *string `json:"password"`
	Role        *string `json:"type"`
	CountryCode *string `json:"country_code"`
	Mobile      *string `json:"mobile_number"`
	Status      *bool   `json:"status"`
}

type CreateCompanyRequest struct {
	Name       string `json:"name"`
	LocationID *int64 `json:"location_id"`
	Status     bool   `json:"status"`
}

type UpdateCompanyRequest struct {
	Name       *string `json:"name"`
	LocationID *int64  `json:"location_id"`
	Status     *bool   `json:"status"`
}

type CreateVehicleRequest struct {
	Number    string `json:"number"`
	CompanyID int64  `json:"company_id"`
	Status    bool   `json:"status"`
}

type UpdateVehicleRequest struct {
	Number    *string `json:"number"`
	CompanyID *int64  `json:"company_id"`
	Status    *bool   `json:"status"`
}

type CreateProductRequest struct {
	CompanyID    int64           `json:"company_id"`
	VehicleID    int64           `json:"vehicle_id"`
	SlipNumber   string          `json:"slip_number"`
	PurchaseDate string          `json:"purchase_date"`
	Bag          int             `json:"bag"`
	Price        decimal.Decimal `json:"price"`
	Weight       decimal.Decimal `json:"weight"`
	NetWeight    decimal.Decimal `json:"net_weight"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
}

type UpdateProductRequest struct {
	CompanyID    *int64           `json:"company_id"`
	VehicleID    *int64           `json:"vehicle_id"`
	SlipNumber   *string          `json:"slip_number"`
	PurchaseDate *string          `json:"purchase_date"`
	Bag          *int             `json:"bag"`
	Price        *decimal.Decimal `json:"price"`
	Weight       *decimal.Decimal `json:"weight"`
	NetWeight    *decimal.Decimal `json:"net_weight"`
	TotalPrice   *decimal.Decimal `json:"total_price"`
	FinalPrice   *decimal.Decimal `json:"final_price"`
}

type CreateOrderRequest struct {
	ProductID int64           `json:"product_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
}

type UpdateOrderRequest struct {
	ProductID *int64           `json:"product_id"`
	Status    *string          `json:"status"`
	Amount    *decimal.Decimal `json:"amount"`
}

type CreateCityRequest struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

type UpdateCityRequest struct {
	Name   *string `json:"name"`
	Status *bool   `json:"status"`
}

type CreateAlertRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
