// Package bot implements the conversation flow: classifying inbound events
// into conversation steps, composing the reply template for each step, and
// dispatching composed replies through the delivery gateway.
package bot

// Step is a position in the shopping-assistant conversation flow. There is
// no server-side session: every inbound event is classified independently,
// and the flow state travels in the payload tokens the platform echoes back.
type Step int

const (
	// StepWelcome introduces the assistant and its three entry options.
	StepWelcome Step = iota
	// StepSearchIntent asks for the user's region.
	StepSearchIntent
	// StepRegionSelect asks for the user's state.
	StepRegionSelect
	// StepStateSelect asks for a product category.
	StepStateSelect
	// StepCategorySelect shows the product carousel for a category.
	StepCategorySelect
	// StepProductList shows the product carousel directly.
	StepProductList
	// StepReceipt shows a demo order receipt.
	StepReceipt
	// StepGreeting is the default plain-text reply for unmatched text.
	StepGreeting
)

// String returns the step name used in logs and metrics labels.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepSearchIntent:
		return "search_intent"
	case StepRegionSelect:
		return "region_select"
	case StepStateSelect:
		return "state_select"
	case StepCategorySelect:
		return "category_select"
	case StepProductList:
		return "product_list"
	case StepReceipt:
		return "receipt"
	case StepGreeting:
		return "greeting"
	default:
		return "unknown"
	}
}
