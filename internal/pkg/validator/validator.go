package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zhytomyr-tourism/internal/cluster"
	"github.com/zhytomyr-tourism/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках поля называются так же, как в запросе
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	// cluster - идентификатор кластера или unknown, регистр учитывается
	if err := validate.RegisterValidation("cluster", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		return raw == string(domain.CategoryUnknown) || cluster.Classify(raw) != domain.CategoryUnknown
	}); err != nil {
		panic(err)
	}
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
