package validatorx

import (
	"reflect"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/sanitary-shop/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("category", validateCategory)
}

func validateCategory(fl gpvalidator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return constant.Category(field.String()).Valid()
}

func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
