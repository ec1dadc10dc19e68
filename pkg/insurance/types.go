package insurance

// Claim is the backend's claim record.
type Claim struct {
	ClaimID           string   `json:"claim_id"`
	PolicyID          string   `json:"policy_id"`
	Status            string   `json:"status"`
	Vehicle           string   `json:"vehicle"`
	DamageDescription string   `json:"damage_description"`
	Photos            []string `json:"photos"`
	CreatedAt         string   `json:"created_at"`
}

// SubmitClaimRequest is the body for POST /insurance/claims.
type SubmitClaimRequest struct {
	PolicyID          string   `json:"policy_id"`
	Vehicle           string   `json:"vehicle"`
	DamageDescription string   `json:"damage_description"`
	Photos            []string `json:"photos"`
}

// Policy is the backend's policy record.
type Policy struct {
	PolicyID          string  `json:"policy_id"`
	UserID            string  `json:"user_id"`
	Plan              string  `json:"plan"`
	Deductible        float64 `json:"deductible"`
	CollisionCoverage float64 `json:"collision_coverage"`
	Premium           float64 `json:"premium"`
	Status            string  `json:"status"`
}

// PremiumRequest is the body for POST /insurance/premium.
type PremiumRequest struct {
	PolicyID        string  `json:"policy_id"`
	CurrentCoverage float64 `json:"current_coverage"`
	NewCoverage     float64 `json:"new_coverage"`
}

// PremiumQuote is the backend's answer to a coverage change.
type PremiumQuote struct {
	PolicyID       string  `json:"policy_id"`
	CurrentPremium float64 `json:"current_premium"`
	NewPremium     float64 `json:"new_premium"`
}
