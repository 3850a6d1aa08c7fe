package errors

import (
	"fmt"
	"net/http"

	"tradefood/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are shown to shoppers as is.
var (
	// Session and authentication
	ErrSessionRequired = NewBaseError(
		http.StatusBadRequest,
		"SESSION_REQUIRED",
		"Session introuvable",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Veuillez vous connecter pour continuer",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email ou mot de passe incorrect",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	// Cart
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Votre panier est vide",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"La quantité doit être supérieure à zéro",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusConflict,
		"PRODUCT_UNAVAILABLE",
		"Ce produit n'est plus disponible",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Ce produit n'est pas dans votre panier",
		"",
	)

	// Addresses
	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"Veuillez sélectionner une adresse de facturation et une adresse de livraison",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Adresse introuvable",
		"",
	)

	ErrDefaultAddressExists = NewBaseError(
		http.StatusConflict,
		"DEFAULT_ADDRESS_EXISTS",
		"Une adresse par défaut existe déjà",
		"",
	)

	ErrDefaultAddressRequired = NewBaseError(
		http.StatusConflict,
		"DEFAULT_ADDRESS_REQUIRED",
		"Définissez d'abord une adresse par défaut",
		"",
	)

	ErrClientRequired = NewBaseError(
		http.StatusBadRequest,
		"CLIENT_REQUIRED",
		"Veuillez sélectionner un client",
		"",
	)

	// Checkout
	ErrInvalidCheckoutStep = NewBaseError(
		http.StatusConflict,
		"INVALID_CHECKOUT_STEP",
		"Cette action n'est pas possible à cette étape de la commande",
		"",
	)

	ErrCheckoutBusy = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_BUSY",
		"Une opération est déjà en cours",
		"",
	)

	ErrShippingMethodRequired = NewBaseError(
		http.StatusBadRequest,
		"SHIPPING_METHOD_REQUIRED",
		"Veuillez choisir un mode de livraison",
		"",
	)

	ErrShippingUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"SHIPPING_UNAVAILABLE",
		"Aucun mode de livraison disponible pour cette adresse",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_CREATION_FAILED",
		"La création de la commande a échoué, veuillez réessayer",
		"",
	)

	ErrPaymentSheetFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_SHEET_FAILED",
		"Impossible d'initialiser le paiement",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"Le paiement a échoué",
		"",
	)

	ErrPaymentVerificationFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_VERIFICATION_FAILED",
		"Le paiement n'a pas pu être vérifié",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Données saisies invalides",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne",
		"",
	)
)

// BackendError is a failed call to the TradeFood backend, implementing the AppError interface.
// Status is zero when the request never got a response (network error, timeout).
type BackendError struct {
	err     error
	status  int
	code    string
	message string
}

// NewBackendError creates a backend-related error.
func NewBackendError(err error, status int, code, message string) *BackendError {
	return &BackendError{
		err:     err,
		status:  status,
		code:    code,
		message: message,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	msg := e.message
	if msg == "" && e.err != nil {
		msg = e.err.Error()
	}
	if e.status == 0 {
		return "backend unreachable: " + msg
	}

	return fmt.Sprintf("backend returned %d: %s", e.status, msg)
}

// Unwrap exposes the transport error, if any.
func (e *BackendError) Unwrap() error {
	return e.err
}

// Status returns the HTTP status the backend answered with, 0 when unreachable.
func (e *BackendError) Status() int {
	return e.status
}

// Unreachable reports a network or timeout failure.
func (e *BackendError) Unreachable() bool {
	return e.status == 0
}

// HTTPCode maps the backend status onto the status returned to the storefront.
func (e *BackendError) HTTPCode() int {
	switch {
	case e.status == 0:
		return http.StatusServiceUnavailable
	case e.status == http.StatusUnauthorized, e.status == http.StatusForbidden, e.status == http.StatusNotFound, e.status == http.StatusConflict:
		return e.status
	case e.status >= 400 && e.status < 500:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	if e.status == 0 {
		return "BACKEND_UNAVAILABLE"
	}
	if e.code != "" {
		return e.code
	}
	if e.status >= 400 && e.status < 500 {
		return "BACKEND_REJECTED"
	}

	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	if e.status == 0 {
		return "Le service est momentanément indisponible, veuillez réessayer"
	}
	if e.status < 500 && e.message != "" {
		return e.message
	}

	return "Une erreur est survenue, veuillez réessayer"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.Error()
}
