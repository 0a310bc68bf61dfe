package api

// TokenRequest обмен API ключа на access token
type TokenRequest struct {
	Name   string `json:"name"`    // имя, попадающее в registered_by
	APIKey string `json:"api_key"` // API ключ в открытом виде
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда Bearer
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// HealthResponse состояние сервера
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	OCR      string `json:"ocr"`
	Auth     bool   `json:"auth"`
}
