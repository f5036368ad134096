package handler

// --- Request / Response types ---

// employeeRequest is the JSON body of POST and PUT. It deliberately carries no
// id field: a body id on PUT is ignored, the path id is authoritative.
type employeeRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName"  validate:"required,max=50"`
	Email     string `json:"email"     validate:"required,email,max=50"`
}

type employeeResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
