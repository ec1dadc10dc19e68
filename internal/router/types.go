package router

// Intent represents the user's classified task category.
type Intent string

const (
	IntentKnowledgeLookup  Intent = "KNOWLEDGE_LOOKUP"
	IntentClaimStatus      Intent = "CLAIM_STATUS"
	IntentSubmitClaim      Intent = "SUBMIT_CLAIM"
	IntentCalculatePremium Intent = "CALCULATE_PREMIUM"
	IntentPolicyLookup     Intent = "POLICY_LOOKUP"
	IntentFallback         Intent = "FALLBACK"
)

// Route is the coarse handler path a turn takes.
type Route string

const (
	RouteKnowledge Route = "kb"
	RouteAction    Route = "action"
	RouteFallback  Route = "fallback"
)

// RouterOutput is the structured classification result.
type RouterOutput struct {
	Intent    Intent
	Route     Route
	Reasoning string

	// ResetPending is set when a fresh submission supersedes a stale
	// unconfirmed action for the session.
	ResetPending bool
}
