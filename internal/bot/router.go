package bot

import (
	"strings"

	"github.com/achabot/messenger-shopbot-go/internal/messenger"
)

// Payload tokens understood by the router. The prefix grammar is
// PREFIX[_SUFFIX]; only the prefix routes, the suffix rides along.
const (
	TokenSearchProducts = "SEARCH_PRODUCTS"
	TokenPrefixRegion   = "REGION"
	TokenPrefixState    = "STATE"
	TokenPrefixCategory = "CATEGORY"
)

// Route classifies an inbound event into a conversation step. The second
// return value is false only for fallback events, which get no reply.
//
// Rules are evaluated in order, first match wins. The prefixes are disjoint
// so order only matters between the exact SEARCH_PRODUCTS match and the
// prefix matches. Note the asymmetry between the two text rules: "Step1" is
// matched exactly while "recibo" matches any casing. That mismatch is
// intentional and load-bearing for existing conversations; do not unify.
func Route(ev messenger.InboundEvent) (Step, bool) {
	switch ev.Kind {
	case messenger.KindText:
		switch {
		case ev.Text == "Step1":
			return StepWelcome, true
		case strings.ToLower(ev.Text) == "recibo":
			return StepReceipt, true
		default:
			return StepGreeting, true
		}

	case messenger.KindQuickReply, messenger.KindPostback:
		token := ev.Token()
		switch {
		case token == TokenSearchProducts:
			return StepSearchIntent, true
		case strings.HasPrefix(token, TokenPrefixRegion):
			return StepRegionSelect, true
		case strings.HasPrefix(token, TokenPrefixState):
			return StepStateSelect, true
		case strings.HasPrefix(token, TokenPrefixCategory):
			return StepCategorySelect, true
		default:
			// Unknown token: treat like unmatched text rather than dropping
			// the event silently, so the user still gets a reply.
			return StepGreeting, true
		}

	default:
		return 0, false
	}
}
