package dto

// ErrorResponse cuerpo de error HTTP. Message es apto para mostrarse al usuario.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
