package dto

type EmployeeResponse struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Branch    string `json:"branch"`
}

type RamalResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
}
