package handler

type SimplifyRequest struct {
	Sentence string `json:"sentence" binding:"required"`
}

type SimplifyResponse struct {
	Original   string   `json:"original"`
	Simplified []string `json:"simplified"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
