package bot

import "github.com/achabot/messenger-shopbot-go/internal/messenger"

// Static reply content for every step. Texts, option labels, card data and
// receipt values live here as data so content changes never touch the routing
// or composing logic. The Composer reads these tables through its Content
// value and tests override them freely.

// Content is the full content table consumed by the Composer.
type Content struct {
	WelcomeText    string
	WelcomeOptions []messenger.QuickReplyOption

	RegionPrompt  string
	RegionOptions []messenger.QuickReplyOption

	StatePrompt  string
	StateOptions []messenger.QuickReplyOption

	CategoryPrompt  string
	CategoryOptions []messenger.QuickReplyOption

	ProductCard messenger.Card

	Receipt messenger.ReceiptTemplate

	GreetingText string
}

// DefaultContent returns the demo shopping-assistant content.
func DefaultContent() Content {
	return Content{
		WelcomeText: "Olá {nome}! Sou seu assistente da OLX. Posso responder dúvidas, " +
			"ajudar a achar produtos ou desapegar de alguma coisa! O que você deseja fazer?",
		WelcomeOptions: []messenger.QuickReplyOption{
			{Label: "Procurar produtos", Payload: TokenSearchProducts},
			{Label: "Desapegar", Payload: TokenSearchProducts},
			{Label: "Tirar dúvidas", Payload: TokenSearchProducts},
		},

		RegionPrompt: "Ótimo! Escolha a região onde você vive!",
		RegionOptions: []messenger.QuickReplyOption{
			{Location: true},
			{Label: "Sudeste", Payload: "REGION_SOUTEAST"},
			{Label: "Sul", Payload: "REGION_SOUTH"},
			{Label: "Norte", Payload: "REGION_NORTH"},
			{Label: "Nordeste", Payload: "REGION_NORTHEAST"},
			{Label: "Centro Oeste", Payload: "REGION_CENTERWEST"},
		},

		StatePrompt: "Agora escolha o estado onde você vive!",
		StateOptions: []messenger.QuickReplyOption{
			{Label: "Rio de Janeiro", Payload: "STATE_RJ"},
			{Label: "São Paulo", Payload: "STATE_SP"},
			{Label: "Minas Gerais", Payload: "STATE_MG"},
			{Label: "Espirito Santo", Payload: "STATE_ES"},
		},

		CategoryPrompt: "Em qual categoria você quer encontrar produtos?",
		CategoryOptions: []messenger.QuickReplyOption{
			{Label: "Animais e acessórios", Payload: "CATEGORY_1"},
			{Label: "Bebês e crianças", Payload: "CATEGORY_2"},
			{Label: "Músicas e hobbies", Payload: "CATEGORY_3"},
			{Label: "Moda e beleza", Payload: "CATEGORY_4"},
			{Label: "Para sua casa", Payload: "CATEGORY_5"},
			{Label: "Esportes", Payload: "CATEGORY_6"},
			{Label: "Imóveis", Payload: "CATEGORY_7"},
			{Label: "Empregos e negócios", Payload: "CATEGORY_8"},
			{Label: "Veículos e barcos", Payload: "CATEGORY_9"},
		},

		ProductCard: messenger.Card{
			Title:    "Xbox 360 preto 450 novo",
			Subtitle: "Video Game novinho\nR$450\nRegião dos Lagos",
			ImageURL: "http://img.olx.com.br/images/79/798701037760443.jpg",
			ItemURL:  "http://am.olx.com.br/regiao-de-manaus/videogames/vendo-xbox-360-550-r-371694662?xtmc=xbox+360&xtnp=1&xtcr=1",
			Buttons: []messenger.Button{
				{Title: "Ver detalhes", URL: "http://lmgtfy.com/?q=Product"},
				{Title: "Ver outras ofertas", Payload: "CATEGORY_1"},
				{Title: "Fazer nova busca", Payload: TokenSearchProducts},
			},
		},

		Receipt: messenger.ReceiptTemplate{
			RecipientName: "Peter Chang",
			Currency:      "USD",
			PaymentMethod: "Visa 1234",
			Timestamp:     1428444852,
			LineItems: []messenger.ReceiptLineItem{
				{
					Title:    "Oculus Rift",
					Subtitle: "Includes: headset, sensor, remote",
					Quantity: 1,
					Price:    599.00,
					Currency: "USD",
					ImageURL: "http://img.olx.com.br/images/79/798701037760443.jpg",
				},
				{
					Title:    "Samsung Gear VR",
					Subtitle: "Frost White",
					Quantity: 1,
					Price:    99.99,
					Currency: "USD",
					ImageURL: "http://img.olx.com.br/images/79/798701037760443.jpg",
				},
			},
			Address: messenger.ReceiptAddress{
				Street1:    "1 Hacker Way",
				City:       "Menlo Park",
				PostalCode: "94025",
				State:      "CA",
				Country:    "US",
			},
			Summary: messenger.ReceiptSummary{
				Subtotal:     698.99,
				ShippingCost: 20.00,
				TotalTax:     57.67,
				TotalCost:    626.66,
			},
			Adjustments: []messenger.ReceiptAdjustment{
				{Name: "New Customer Discount", Amount: -50},
				{Name: "$100 Off Coupon", Amount: -100},
			},
		},

		GreetingText: "Olá!",
	}
}
