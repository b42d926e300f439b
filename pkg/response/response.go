package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vectra777/module-intervenants/pkg/apperror"
)

// ErrorBody corps d'erreur uniforme renvoyé par l'API.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// CodeValidation code renvoyé pour les rejets du pré-filtre (binding/normalisation),
// distinct des trois kinds métier.
const CodeValidation = "validation_error"

// ── Réponses de succès ──

// OK 200 avec l'entité telle quelle.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 avec l'entité créée.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 sans corps.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── Réponses d'erreur ──

// Error réponse d'erreur générique.
func Error(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, ErrorBody{Message: message, Code: code})
}

// BadRequest 400 pour les rejets de validation du pré-filtre.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeValidation, message)
}

// InternalError 500 opaque, sans détail de stockage.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, string(apperror.KindInternal), "Erreur interne du serveur")
}

// AppError mappe une erreur métier typée sur son statut HTTP.
// Toute erreur non reconnue est rendue opaque.
func AppError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		Error(c, appErr.Kind.HTTPStatus(), string(appErr.Kind), appErr.Message)
		return
	}
	InternalError(c)
}
