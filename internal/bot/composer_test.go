package bot

import (
	"strconv"
	"strings"
	"testing"

	"github.com/achabot/messenger-shopbot-go/internal/messenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeWelcome(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepWelcome)
	msg, ok := tpl.(messenger.QuickReplyMessage)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "assistente da OLX")

	require.Len(t, msg.Options, 3)
	assert.Equal(t, "Procurar produtos", msg.Options[0].Label)
	assert.Equal(t, "Desapegar", msg.Options[1].Label)
	assert.Equal(t, "Tirar dúvidas", msg.Options[2].Label)
	for _, opt := range msg.Options {
		assert.Equal(t, TokenSearchProducts, opt.Payload)
	}
}

func TestComposeSearchIntent(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepSearchIntent)
	msg, ok := tpl.(messenger.QuickReplyMessage)
	require.True(t, ok)
	assert.Equal(t, "Ótimo! Escolha a região onde você vive!", msg.Text)

	require.Len(t, msg.Options, 6)
	assert.True(t, msg.Options[0].Location)
	for _, opt := range msg.Options[1:] {
		assert.True(t, strings.HasPrefix(opt.Payload, TokenPrefixRegion), "payload %q", opt.Payload)
	}
}

func TestComposeRegionSelect(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepRegionSelect)
	msg, ok := tpl.(messenger.QuickReplyMessage)
	require.True(t, ok)
	assert.Equal(t, "Agora escolha o estado onde você vive!", msg.Text)

	require.Len(t, msg.Options, 4)
	for _, opt := range msg.Options {
		assert.True(t, strings.HasPrefix(opt.Payload, TokenPrefixState), "payload %q", opt.Payload)
	}
}

func TestComposeStateSelect(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepStateSelect)
	msg, ok := tpl.(messenger.QuickReplyMessage)
	require.True(t, ok)

	require.Len(t, msg.Options, 9)
	for i, opt := range msg.Options {
		assert.Equal(t, "CATEGORY_"+strconv.Itoa(i+1), opt.Payload)
	}
}

func TestComposeCarouselCardCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 3, 5} {
		composer := NewComposer(DefaultContent(), count)
		tpl := composer.Compose(StepCategorySelect)
		carousel, ok := tpl.(messenger.GenericTemplate)
		require.True(t, ok)
		assert.Len(t, carousel.Cards, count)
	}

	// Product list composes the same carousel.
	composer := NewComposer(DefaultContent(), 2)
	tpl := composer.Compose(StepProductList)
	carousel, ok := tpl.(messenger.GenericTemplate)
	require.True(t, ok)
	assert.Len(t, carousel.Cards, 2)
}

func TestComposeCarouselCardContent(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	carousel := composer.Compose(StepCategorySelect).(messenger.GenericTemplate)
	require.Len(t, carousel.Cards, 3)

	for _, card := range carousel.Cards {
		assert.Equal(t, "Xbox 360 preto 450 novo", card.Title)
		require.Len(t, card.Buttons, 3)
		assert.NotEmpty(t, card.Buttons[0].URL)
		assert.Equal(t, "CATEGORY_1", card.Buttons[1].Payload)
		assert.Equal(t, TokenSearchProducts, card.Buttons[2].Payload)
	}
}

func TestComposeCardCountFloor(t *testing.T) {
	t.Parallel()

	composer := NewComposer(DefaultContent(), 0)
	carousel := composer.Compose(StepCategorySelect).(messenger.GenericTemplate)
	assert.Len(t, carousel.Cards, 1)
}

func TestComposeReceipt(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepReceipt)
	receipt, ok := tpl.(messenger.ReceiptTemplate)
	require.True(t, ok)

	assert.Equal(t, "Peter Chang", receipt.RecipientName)
	assert.Equal(t, "Visa 1234", receipt.PaymentMethod)
	assert.Equal(t, int64(1428444852), receipt.Timestamp)
	require.Len(t, receipt.LineItems, 2)
	assert.InDelta(t, 626.66, receipt.Summary.TotalCost, 0.001)

	// Order numbers are "order-" plus a number below 1000.
	require.True(t, strings.HasPrefix(receipt.OrderNumber, "order-"))
	n, err := strconv.Atoi(strings.TrimPrefix(receipt.OrderNumber, "order-"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 1000)
}

func TestComposeGreeting(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	tpl := composer.Compose(StepGreeting)
	msg, ok := tpl.(messenger.TextMessage)
	require.True(t, ok)
	assert.Equal(t, "Olá!", msg.Text)
}

func TestComposeIsPureExceptOrderNumber(t *testing.T) {
	t.Parallel()
	composer := NewComposer(DefaultContent(), 3)

	for _, step := range []Step{StepWelcome, StepSearchIntent, StepRegionSelect, StepStateSelect, StepCategorySelect, StepGreeting} {
		first := composer.Compose(step)
		second := composer.Compose(step)
		assert.Equal(t, first, second, "step %s", step)
	}
}
