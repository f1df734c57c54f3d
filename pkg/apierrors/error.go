package apierrors

import (
	"fmt"
	"tasklist/pkg/translator"

	"go.uber.org/zap"
)

// JsonErr is the body of every API error response.
type JsonErr struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Message: GetTransErrorMsg(msgKey, lang), Code: code}
}

// CreateErrorWithDetails is CreateError plus an untranslated detail, such as
// the field that failed validation.
func CreateErrorWithDetails(code int, msgKey string, lang string, details string) JsonErr {
	jsonErr := CreateError(code, msgKey, lang)
	jsonErr.Details = details
	return jsonErr
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	msg, err := translator.Localize(lang, msgKey)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
