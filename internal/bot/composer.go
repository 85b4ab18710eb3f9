package bot

import (
	"math/rand"
	"strconv"

	"github.com/achabot/messenger-shopbot-go/internal/messenger"
)

// Composer builds the reply template for each conversation step from a
// static content table. Composition is pure except for the receipt's demo
// order number, which is randomized per receipt.
type Composer struct {
	content   Content
	cardCount int
}

// NewComposer returns a Composer over the given content. cardCount is the
// number of product cards in the carousel; values below 1 fall back to 1.
func NewComposer(content Content, cardCount int) *Composer {
	if cardCount < 1 {
		cardCount = 1
	}

	return &Composer{
		content:   content,
		cardCount: cardCount,
	}
}

// Compose returns the outbound template for a step.
func (c *Composer) Compose(step Step) messenger.Template {
	switch step {
	case StepWelcome:
		return messenger.QuickReplyMessage{
			Text:    c.content.WelcomeText,
			Options: c.content.WelcomeOptions,
		}

	case StepSearchIntent:
		return messenger.QuickReplyMessage{
			Text:    c.content.RegionPrompt,
			Options: c.content.RegionOptions,
		}

	case StepRegionSelect:
		return messenger.QuickReplyMessage{
			Text:    c.content.StatePrompt,
			Options: c.content.StateOptions,
		}

	case StepStateSelect:
		return messenger.QuickReplyMessage{
			Text:    c.content.CategoryPrompt,
			Options: c.content.CategoryOptions,
		}

	case StepCategorySelect, StepProductList:
		cards := make([]messenger.Card, c.cardCount)
		for i := range cards {
			cards[i] = c.content.ProductCard
		}
		return messenger.GenericTemplate{Cards: cards}

	case StepReceipt:
		receipt := c.content.Receipt
		receipt.OrderNumber = "order-" + strconv.Itoa(rand.Intn(1000))
		return receipt

	default:
		return messenger.TextMessage{Text: c.content.GreetingText}
	}
}
