package user

import (
	"github.com/frahmantamala/travel-budget/internal/core/common/validation"
)

type RegisterDTO struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Password     string `json:"password"`
	HomeCurrency string `json:"home_currency,omitempty"`
	Locale       string `json:"locale,omitempty"`
}

func (dto *RegisterDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().Email()
	v.Field("name", dto.Name).Required()
	v.Field("password", dto.Password).Required().MinLength(8)
	v.Field("home_currency", dto.HomeCurrency).CurrencyCode()

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
