package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DateTag is the validation tag for dd-MM-yyyy dates.
const DateTag = "ddmmyyyy"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom validation tags on Gin's validator.
// Gin's validator is process-wide, so only the first call does any work.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation(DateTag, validateDate)
	})
	return registerErr
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := valueobject.ParseDate(fl.Field().String())
	return err == nil
}
