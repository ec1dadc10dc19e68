package usecase

// User-facing message text. Routing and e2e tests assert these strings
// verbatim; change them only together with the tests.
const (
	msgFallback       = "I can help with claims, premiums, or policy info."
	msgCancelled      = "Okay, cancelled."
	msgReplyYesNo     = "Please reply yes or no to proceed."
	msgAskClaimID     = "Please provide your claim ID (alphanumeric, up to 10 characters)."
	msgInvalidClaimID = "Please provide a valid claim ID (alphanumeric, up to 10 characters, include at least one number)."
	msgNoKnowledge    = "I couldn't find relevant information."
	msgPremiumTooLow  = "New coverage must be greater than current coverage."
	msgUnsupportedOp  = "Operation not supported yet."
	msgAmountRetry    = "Please provide a number, e.g. 50000."
)

// Slot names double as wire keys inside the session snapshot.
const (
	slotClaimID           = "claim_id"
	slotPolicyID          = "policy_id"
	slotVehicle           = "vehicle"
	slotDamageDescription = "damage_description"
	slotUserID            = "user_id"
	slotCurrentCoverage   = "current_coverage"
	slotNewCoverage       = "new_coverage"
)

// maxUpstreamDetail caps upstream error text echoed into a turn.
const maxUpstreamDetail = 200
