package bankdto

type CreateBankInput struct {
	Name string  `json:"name" validate:"required,max=200"`
	Logo *string `json:"logo" validate:"omitempty,max=500"`
}

// UpdateBankInput replaces every mutable field of the bank.
type UpdateBankInput struct {
	ID   int64   `json:"id" validate:"gt=0"`
	Name string  `json:"name" validate:"required,max=200"`
	Logo *string `json:"logo" validate:"omitempty,max=500"`
}
