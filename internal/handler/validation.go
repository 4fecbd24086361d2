package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
)

// bindError converts gin binding failures into the common error shape,
// surfacing the first failed validation rule when available.
func bindError(err error) *appErrors.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("field %s failed on rule %s", fe.Field(), fe.Tag()))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request payload")
}
