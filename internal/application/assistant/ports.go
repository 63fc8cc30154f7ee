package assistant

import "context"

// LLMService define el puerto de salida hacia un modelo de lenguaje externo.
// Cualquier adaptador (Anthropic, Gemini, Ollama, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
// El puerto es OPCIONAL: sin adaptador configurado el asistente responde en
// modo offline por palabras clave.
type LLMService interface {
	// Reply responde la pregunta del usuario usando el contexto de negocio de
	// la organización. El contexto debe llevar timeout para no bloquear el
	// servidor en llamadas externas.
	Reply(ctx context.Context, question string, snap Snapshot) (string, error)
}
