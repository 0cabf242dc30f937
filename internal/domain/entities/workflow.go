package entities

// Workflow is a directed graph of allowed status transitions keyed by the source status code.
type Workflow map[string][]string

// DefaultWorkflow returns the permit application workflow.
//
//	DRAFT -> SUBMITTED | WITHDRAWN
//	SUBMITTED -> UNDER_REVIEW | WITHDRAWN | REJECTED
//	UNDER_REVIEW -> ADDITIONAL_INFO_REQUIRED | APPROVED | REJECTED
//	ADDITIONAL_INFO_REQUIRED -> UNDER_REVIEW | WITHDRAWN
func DefaultWorkflow() Workflow {
	return Workflow{
		StatusDraft:                  {StatusSubmitted, StatusWithdrawn},
		StatusSubmitted:              {StatusUnderReview, StatusWithdrawn, StatusRejected},
		StatusUnderReview:            {StatusAdditionalInfoRequired, StatusApproved, StatusRejected},
		StatusAdditionalInfoRequired: {StatusUnderReview, StatusWithdrawn},
		StatusApproved:               nil,
		StatusRejected:               nil,
		StatusWithdrawn:              nil,
	}
}

// CanTransition reports whether from -> to is an edge of the graph.
func (w Workflow) CanTransition(from, to string) bool {
	from, to = NormalizeStatusCode(from), NormalizeStatusCode(to)
	for _, next := range w[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next lists the statuses reachable from code in one step.
func (w Workflow) Next(code string) []string {
	next := w[NormalizeStatusCode(code)]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether code has no outgoing transitions.
func (w Workflow) IsTerminal(code string) bool {
	return len(w[NormalizeStatusCode(code)]) == 0
}
