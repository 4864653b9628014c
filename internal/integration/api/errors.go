package api

import (
	"net/http"

	"github.com/goccy/go-json"

	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/integration/api/dto"
)

// codeSentinels maps API error codes onto domain sentinels so callers can
// use errors.Is without knowing wire codes.
var codeSentinels = map[domainerror.Code]error{
	domainerror.CodeEmailExists:            domainerror.ErrEmailAlreadyExists,
	domainerror.CodeTermsNotAccepted:       domainerror.ErrTermsNotAccepted,
	domainerror.CodeWeakPassword:           domainerror.ErrWeakPassword,
	domainerror.CodeInvalidCredentials:     domainerror.ErrInvalidCredentials,
	domainerror.CodeInvalidToken:           domainerror.ErrInvalidToken,
	domainerror.CodeExpiredToken:           domainerror.ErrExpiredToken,
	domainerror.CodeEventNotFound:          domainerror.ErrEventNotFound,
	domainerror.CodeEventNotJoinable:       domainerror.ErrEventNotJoinable,
	domainerror.CodeOwnEvent:               domainerror.ErrOwnEvent,
	domainerror.CodeJoinRequestNotFound:    domainerror.ErrJoinRequestNotFound,
	domainerror.CodeAlreadyRequested:       domainerror.ErrAlreadyRequested,
	domainerror.CodeRequestAlreadyAnswered: domainerror.ErrRequestAlreadyAnswered,
	domainerror.CodeNotEventHost:           domainerror.ErrNotEventHost,
}

// decodeAPIError turns an error response body into an APIError carrying the
// matching domain sentinel.
func decodeAPIError(status int, body []byte) error {
	var payload dto.ErrorResponse
	_ = json.Unmarshal(body, &payload)

	code := domainerror.Code(payload.Code)
	sentinel, known := codeSentinels[code]
	if !known {
		sentinel = statusSentinel(status)
	}

	message := payload.Error
	if message == "" {
		message = http.StatusText(status)
	}

	return &domainerror.APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     sentinel,
	}
}

// statusSentinel picks a fallback sentinel for responses without a known
// error code.
func statusSentinel(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domainerror.ErrInvalidToken
	case http.StatusNotFound:
		return domainerror.ErrEventNotFound
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return domainerror.ErrUnavailable
	default:
		return domainerror.ErrUnexpectedResponse
	}
}
