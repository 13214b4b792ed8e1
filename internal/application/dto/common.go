package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Notification toast para la app móvil: tipo, título y mensaje.
// Equivale al notify(kind, message) de la superficie de notificaciones;
// el cliente no devuelve nada al respecto (fire-and-forget).
type Notification struct {
	Type    string `json:"type"` // success, error, info
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SuccessNotification construye el toast de éxito con el título estándar.
func SuccessNotification(message string) Notification {
	return Notification{Type: "success", Title: "¡Éxito!", Message: message}
}

// ErrorNotification construye el toast de error con el título estándar.
func ErrorNotification(message string) Notification {
	return Notification{Type: "error", Title: "Error", Message: message}
}

// InfoNotification construye un toast informativo.
func InfoNotification(message string) Notification {
	return Notification{Type: "info", Title: "Info", Message: message}
}
