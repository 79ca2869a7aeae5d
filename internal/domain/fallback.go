package domain

// FallbackCatalog returns the fixed local catalog used when the backend
// cannot be reached at bootstrap. The storefront must never start with an
// empty gallery, so these ten items stand in until a refresh succeeds.
func FallbackCatalog() []Product {
	price := func(n int) *int { return &n }
	return []Product{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "+1 час в сутках",
			Description: "Дополнительный час в дне, чтобы успеть всё: учёбу, проекты и жизнь.",
			Image:       "/5_Dots.svg",
			Category:    "софт-скил",
			Price:       price(750),
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "HEX-леденец",
			Description: "Леденец, после которого вы мгновенно запоминаете любые цветовые коды.",
			Image:       "/Shell.svg",
			Category:    "другое",
			Price:       price(1450),
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Мамка-таймер",
			Description: "Мотивирующий таймер, который не даёт прокрастинировать и всё откладывать.",
			Image:       "/Asterisk_2.svg",
			Category:    "софт-скил",
			Price:       nil,
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Фреймворк куки судьбы",
			Description: "Открой печенье и узнай, какой фреймворк стоит изучить следующим.",
			Image:       "/Soft_Flower.svg",
			Category:    "дополнительное",
			Price:       price(2500),
		},
		{
			ID:          "d1fb4793-5a31-4ce6-a2a2-2e47b91e5a11",
			Title:       "Кнопка «Замьючить кота»",
			Description: "Волшебная кнопка, которая на время отключает ночные концерты питомца.",
			Image:       "/Cat.svg",
			Category:    "кнопка",
			Price:       price(2000),
		},
		{
			ID:          "f9c3af71-0a6e-4b71-8c37-8b10a5210f92",
			Title:       "БЭМ-пилюлька",
			Description: "После приёма БЭМ-схемы именования становятся понятными и естественными.",
			Image:       "/Pill.svg",
			Category:    "другое",
			Price:       price(1500),
		},
		{
			ID:          "a3c399f1-3c11-4d58-8a8b-32c6b4e5f201",
			Title:       "Портативный телепорт",
			Description: "Мгновенный перенос из кровати за рабочий стол — без боли и страданий.",
			Image:       "/Hexagon.svg",
			Category:    "другое",
			Price:       price(100000),
		},
		{
			ID:          "e2f4c95a-2a7a-4c94-9a62-fbf91b0c0e13",
			Title:       "Микровселенная в кармане",
			Description: "Личный маленький мирок, в котором всегда есть время на ваши проекты.",
			Image:       "/Butterfly.svg",
			Category:    "другое",
			Price:       price(150000),
		},
		{
			ID:          "7b8d40ba-7c73-4d6a-9e73-0b7be9e5f9e4",
			Title:       "UI/UX-карандаш",
			Description: "Карандаш, которым невозможно нарисовать плохой интерфейс.",
			Image:       "/Leaf.svg",
			Category:    "хард-скил",
			Price:       price(10000),
		},
		{
			ID:          "9c2e5a6d-2b94-4c1e-8c70-8e404f76ecb7",
			Title:       "Бэкенд-антистресс",
			Description: "Мятный антистресс для тех, кто часами ловит баг в проде.",
			Image:       "/Bean.svg",
			Category:    "другое",
			Price:       price(1000),
		},
	}
}
