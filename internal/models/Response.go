package models

// Response is the body returned by the digest endpoint on success.
type Response struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"📍 Лимассол — погода на 05.03.2024 (прогноз)"`
	DryRun  bool   `json:"dryRun" example:"false"`
}

// ErrorResponse is the body returned on any failure.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid LATITUDE/LONGITUDE"`
}
