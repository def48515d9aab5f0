package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krupanka/studentms/internal/app/models/dto"
	"github.com/krupanka/studentms/internal/pkg/apperrors"
)

// HandleAPIError maps an application error to its status code and error
// envelope. Every error is terminal for the request; no partial mutation
// is ever reported as success.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classify(err)
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, err.Error())))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrRoleRequired):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed

	case errors.Is(err, apperrors.ErrEmailAlreadyRegistered),
		errors.Is(err, apperrors.ErrSubjectAlreadyAssigned):
		return http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists

	case errors.Is(err, apperrors.ErrSubjectCapacityReached):
		return http.StatusBadRequest, dto.ErrorCodeCapacityExceeded

	case errors.Is(err, apperrors.ErrInvalidAdminPassword),
		errors.Is(err, apperrors.ErrInvalidPrincipalPassword),
		errors.Is(err, apperrors.ErrInvalidTeacherLogin),
		errors.Is(err, apperrors.ErrInvalidStudentLogin),
		errors.Is(err, apperrors.ErrInvalidTeacherPassword),
		errors.Is(err, apperrors.ErrUnknownTeacherEmail):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials

	case errors.Is(err, apperrors.ErrTeacherNotApproved),
		errors.Is(err, apperrors.ErrTeacherRejected):
		return http.StatusForbidden, dto.ErrorCodeNotApproved

	case errors.Is(err, apperrors.ErrDepartmentMismatch):
		return http.StatusForbidden, dto.ErrorCodeDepartmentMismatch

	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusForbidden, dto.ErrorCodeInvalidRole

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}
