package dto

// DashboardScope alcance de una consulta del dashboard.
type DashboardScope struct {
	HotelID string `query:"hotel_id"` // vacío = todos los hoteles
}

// InvoiceListRequest parámetros para GET /api/dashboard/invoices.
type InvoiceListRequest struct {
	HotelID string `query:"hotel_id"`
	Status  string `query:"status"` // paid|pending|overdue; vacío = todas
}

// TopHotelsRequest parámetros para GET /api/dashboard/top-hotels.
type TopHotelsRequest struct {
	Limit int `query:"limit"` // default 3, máx 20
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
