package dto

// ChatRequest pregunta del usuario para el asistente del CRM.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Response string `json:"response"`
}
