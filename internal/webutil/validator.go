// internal/webutil/validator.go
package webutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

func init() {
	Validator = validator.New()

	// エラーメッセージにはJSONタグのフィールド名を使う
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct はリクエストDTOを検証し、最初の違反を AppError として返します。
func ValidateStruct(req interface{}) *model.AppError {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		msg := fmt.Sprintf("%s の検証に失敗しました (%s)", firstErr.Field(), firstErr.Tag())
		return model.NewAppError("VALIDATION_ERROR", msg, firstErr.Field(), model.ErrInvalidInput)
	}

	return model.NewAppError("VALIDATION_ERROR", "リクエストの検証に失敗しました", "", model.ErrInvalidInput)
}
