package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Recommendation string

const (
	Recommendation_Buy  Recommendation = "BUY"
	Recommendation_Hold Recommendation = "HOLD"
	Recommendation_Sell Recommendation = "SELL"
)

// CategoryScore is the aggregated 0-100 score for one GRPV dimension. Score
// is nil when no factor in the category was supplied, in which case
// DataSufficient is false and the category is excluded from the composite.
type CategoryScore struct {
	Category              Category `json:"category"`
	Score                 *float64 `json:"score"`
	ContributingFactorIDs []string `json:"contributingFactorIds"`
	DataSufficient        bool     `json:"dataSufficient"`
}

// GRPVAnalysis is the single current analysis for one (user, symbol) pair.
// The factor snapshot that produced the scores is persisted alongside them
// so every stored result can be reproduced from its inputs.
type GRPVAnalysis struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Symbol               string
	CompanyName          string
	FactorSnapshot       []FactorInput
	CategoryScores       map[Category]CategoryScore
	OverallScore         *float64
	Recommendation       *Recommendation
	RecommendationReason string
	TargetPrice          decimal.Decimal
	StopLossPrice        decimal.Decimal
	CurrentPrice         decimal.Decimal
	AnalysisDate         time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int32

	// Stale marks an analysis returned from the store after a provider
	// failure, rather than freshly computed. Never persisted.
	Stale bool
}

// Quote is the market snapshot the factor data provider returns alongside
// raw factors.
type Quote struct {
	Symbol       string
	CompanyName  string
	CurrentPrice decimal.Decimal
}

type SymbolSearchResult struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"companyName"`
}
