// Package validation wires go-playground/validator into Echo so handlers
// can rely on `validate` struct tags for request DTOs.
package validation

import (
    "github.com/go-playground/validator/v10"
)

type Validator struct {
    v *validator.Validate
}

func New() *Validator {
    return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
    return v.v.Struct(i)
}
