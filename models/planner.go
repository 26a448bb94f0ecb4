package models

// PlanForm is the raw planner form as submitted by the browser.
type PlanForm struct {
	Destination  string   `json:"destination" form:"destination"`
	Duration     string   `json:"duration" form:"duration"`
	BudgetAmount string   `json:"budgetAmount" form:"budgetAmount"`
	BudgetType   string   `json:"budgetType" form:"budgetType"`
	FiatCurrency string   `json:"fiatCurrency" form:"fiatCurrency"`
	CoinID       string   `json:"coinId" form:"coinId"`
	CoinSymbol   string   `json:"coinSymbol" form:"coinSymbol"`
	CoinName     string   `json:"coinName" form:"coinName"`
	Interests    []string `json:"interests" form:"interests"`
}

// SubmissionState is a step of the per-session submission state machine.
type SubmissionState string

const (
	StateIdle           SubmissionState = "idle"
	StateResolvingPrice SubmissionState = "resolving_price"
	StateGeneratingPlan SubmissionState = "generating_plan"
	StateDone           SubmissionState = "done"
	StateFailed         SubmissionState = "failed"
)

// Busy reports whether a submission is in flight in this state.
func (s SubmissionState) Busy() bool {
	return s == StateResolvingPrice || s == StateGeneratingPlan
}

// Label is the submit-button text shown for the state.
func (s SubmissionState) Label() string {
	switch s {
	case StateResolvingPrice:
		return "Verifying price..."
	case StateGeneratingPlan:
		return "Generating plan..."
	default:
		return "Generate My Plan"
	}
}

// SessionStatus is what the page polls while a submission runs.
type SessionStatus struct {
	State SubmissionState `json:"state"`
	Busy  bool            `json:"busy"`
	Label string          `json:"label"`
}

// PlanOutcome is returned for every submission attempt. FormError is shown in
// the budget/form section, PlanError in the result panel.
type PlanOutcome struct {
	State             SubmissionState  `json:"state"`
	BudgetDescription string           `json:"budgetDescription,omitempty"`
	FormError         string           `json:"formError,omitempty"`
	PlanError         string           `json:"planError,omitempty"`
	Result            *ItineraryResult `json:"result,omitempty"`
	Blocks            []Block          `json:"blocks,omitempty"`
}
