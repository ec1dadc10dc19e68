package model

// Claim is a claim record as rendered to the user (cards).
type Claim struct {
	ClaimID           string   `json:"claim_id"`
	PolicyID          string   `json:"policy_id"`
	Status            string   `json:"status"`
	Vehicle           string   `json:"vehicle,omitempty"`
	DamageDescription string   `json:"damage_description,omitempty"`
	Photos            []string `json:"photos,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
}

// Policy is a policy record as rendered to the user.
type Policy struct {
	PolicyID          string  `json:"policy_id"`
	UserID            string  `json:"user_id"`
	Plan              string  `json:"plan"`
	Deductible        float64 `json:"deductible"`
	CollisionCoverage float64 `json:"collision_coverage"`
	Premium           float64 `json:"premium"`
	Status            string  `json:"status,omitempty"`
}

// PremiumQuote is a premium comparison for a coverage change.
type PremiumQuote struct {
	PolicyID       string  `json:"policy_id"`
	CurrentPremium float64 `json:"current_premium"`
	NewPremium     float64 `json:"new_premium"`
}

// KnowledgeResult is a retrieval answer: ranked snippets plus a
// parallel list of source labels.
type KnowledgeResult struct {
	Results []string `json:"results"`
	Sources []string `json:"sources"`
	Query   string   `json:"query"`
}
