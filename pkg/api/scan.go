package api

import (
	"github.com/iudanet/cardkeeper/internal/cardparse"
	"github.com/iudanet/cardkeeper/internal/scan"
)

// ScanReport ответ POST /api/scan
type ScanReport = scan.Report

// ParseRequest тело POST /api/scan/parse
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse результат разбора текста визитки
type ParseResponse struct {
	Levels map[cardparse.Field]cardparse.ConfidenceLevel `json:"levels"`
	Fields cardparse.Fields                              `json:"fields"`
	Score  float64                                       `json:"score"`
}

// NewParseResponse собирает ответ из разобранных полей
func NewParseResponse(f cardparse.Fields) ParseResponse {
	return ParseResponse{Fields: f, Levels: f.Levels(), Score: f.Score()}
}
