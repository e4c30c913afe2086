package handlers

import "github.com/onyxtech/onyx-invoice/services/company/domain/models"

// CompanyResponse is one directory entry. The tax id travels as idCode.
type CompanyResponse struct {
	ID      string `json:"id"      example:"3f1c2a9e-5b7d-4e8a-9c1f-2d3e4f5a6b7c"`
	Name    string `json:"name"    example:"TOYOTA CAUCASUS LLC"`
	TaxID   string `json:"idCode"  example:"404567890"`
	Address string `json:"address" example:"Tbilisi, Georgia"`
} // @name CompanyResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"company not found"`
} // @name ErrorResponse

// SuccessResponse acknowledges a mutation with no other payload.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
} // @name SuccessResponse

func toResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address}
}

func toResponses(companies []*models.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		out[i] = toResponse(c)
	}
	return out
}
