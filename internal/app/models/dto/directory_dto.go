package dto

// DepartmentResponse resolves a department row to its display name
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CentreResponse resolves a centre row to its display name
type CentreResponse struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// PersonResponse carries a person with their linked username
type PersonResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username,omitempty"`
}
