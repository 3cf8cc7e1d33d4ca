package business

import (
	"errors"
	"strings"
)

var (
	ErrInvalidBusiness  = errors.New("displayName required")
	ErrBusinessNotFound = errors.New("business not found")
)

type RegisterRequest struct {
	DisplayName    string
	Message        string
	PaymentType    string
	PaymentDetails map[string]any
}

func ValidateRegisterRequest(r RegisterRequest) error {
	if strings.TrimSpace(r.DisplayName) == "" {
		return ErrInvalidBusiness
	}
	return nil
}
