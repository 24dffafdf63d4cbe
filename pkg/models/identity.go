package models

// Role carries the machine code of a user role together with the label
// shown in the interface.
type Role struct {
	Code         string `json:"code"`
	DisplayValue string `json:"displayValue"`
}

// Identity is the authenticated user as reported by the warehouse API.
type Identity struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}
