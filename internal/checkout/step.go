package checkout

// Step is the wizard position of a checkout session.
type Step string

const (
	StepCustomerInfo Step = "customer_info"
	StepPayment      Step = "payment"
	StepConfirmed    Step = "confirmed"
)

func (s Step) IsTerminal() bool {
	return s == StepConfirmed
}

func (s Step) String() string {
	return string(s)
}

// allowedTransitions maps a step to the steps reachable from it. Confirmed
// is terminal; going back from payment to customer info is allowed and must
// preserve entered fields.
var allowedTransitions = map[Step][]Step{
	StepCustomerInfo: {StepPayment},
	StepPayment:      {StepCustomerInfo, StepConfirmed},
	StepConfirmed:    {},
}

func canTransition(from, to Step) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
