package dto

import "innkeep/internal/domains/customer/model"

type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
}
