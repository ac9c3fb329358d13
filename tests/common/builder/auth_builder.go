//go:build unit || e2e

package builder

import (
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
)

type AuthBuilder struct {
	Email    string
	Password string
	Name     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "budi@example.com",
		Password: "password123",
		Name:     "Budi Santoso",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
	}
}

func (a *AuthBuilder) BuildLoginInput() commands.LoginInput {
	return commands.LoginInput{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildRegisterInput() commands.RegisterInput {
	return commands.RegisterInput{Email: a.Email, Password: a.Password, Name: a.Name}
}
