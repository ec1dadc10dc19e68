package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Knowledge-base keywords (rule 4). Checked against the lowercased
// utterance after the action rules have had their turn.
var knowledgeKeywords = []string{"policy", "coverage", "deductible", "faq"}

// Classification reasons, returned for observability.
const (
	ReasonPendingConfirmation = "pending confirmation or bare approval token"
	ReasonSubmissionTrigger   = "submission verb plus 'claim'"
	ReasonActionToken         = "short digit-bearing token present"
	ReasonKnowledgeKeyword    = "knowledge-base keyword"
	ReasonActionKeyword       = "claim/premium keyword"
	ReasonFallback            = "no rule matched"
)
