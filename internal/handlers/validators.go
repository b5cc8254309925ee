package handlers

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// pucCode accepts the digit-only PUC codes: class (1), group (2), account (4),
// subaccount (6) and auxiliaries (8 or more).
func pucCode(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl.Field())
	if !ok {
		return false
	}
	switch n := len(s); {
	case n == 1, n == 2, n == 4, n == 6, n >= 8 && n <= 12:
	default:
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func docType(fl validator.FieldLevel) bool {
	s, ok := stringValue(fl.Field())
	return ok && domain.IsValidDocumentType(domain.DocumentType(s))
}

func stringValue(v reflect.Value) (string, bool) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String {
		return "", false
	}
	return v.String(), true
}

// RegisterValidators adds the custom binding tags to gin's validator engine.
// It must run before any route binds a request.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("puc_code", pucCode); err != nil {
		return err
	}
	return v.RegisterValidation("doc_type", docType)
}
