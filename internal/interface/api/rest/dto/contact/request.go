package contact

type Request struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BornDate  string `json:"born_date"`
	AddData   string `json:"add_data"`
}
