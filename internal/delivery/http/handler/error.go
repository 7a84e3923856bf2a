package handler

import (
	"net/http"

	"mos3ef-api/pkg/apperror"
	"mos3ef-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// writeError maps an application error kind to its HTTP status. Anything
// that is not an *apperror.Error is reported as a 500 without detail.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error, fallback string) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Errorf("Unhandled error: %+v", err)
		response.InternalServerError(w, fallback)
		return
	}

	switch appErr.Kind {
	case apperror.KindNotFound:
		response.NotFound(w, appErr.Message)
	case apperror.KindBadRequest:
		response.BadRequest(w, appErr.Message)
	case apperror.KindValidation:
		response.ValidationError(w, appErr.Fields)
	case apperror.KindForbidden:
		response.Forbidden(w, appErr.Message)
	case apperror.KindConflict:
		response.Conflict(w, appErr.Message)
	default:
		log.Errorf("Internal error: %+v", err)
		response.InternalServerError(w, fallback)
	}
}
