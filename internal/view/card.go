package view

import (
	"fmt"
	"strings"

	"web-larek/internal/domain"
)

// categoryModifiers maps a product category tag to its CSS modifier.
// Unknown categories render without a modifier.
var categoryModifiers = map[string]string{
	"софт-скил":      "card__category_soft",
	"хард-скил":      "card__category_hard",
	"другое":         "card__category_other",
	"дополнительное": "card__category_additional",
	"кнопка":         "card__category_button",
}

func categoryClass(category string) string {
	if modifier, ok := categoryModifiers[category]; ok {
		return "card__category " + modifier
	}
	return "card__category"
}

// priceText renders a price the way the layout shows it: a number of
// synapses, or the priceless label.
func priceText(price *int) string {
	if price == nil {
		return "Бесценно"
	}
	return fmt.Sprintf("%d синапсов", *price)
}

// cardData is the resolved template input for any card variant. Image
// references resolve against the CDN base here so templates stay dumb.
type cardData struct {
	ID            string
	Title         string
	Description   string
	Category      string
	CategoryClass string
	Image         string
	Price         string
}

func newCardData(p domain.Product, cdnURL string) cardData {
	return cardData{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		CategoryClass: categoryClass(p.Category),
		Image:         strings.TrimRight(cdnURL, "/") + p.Image,
		Price:         priceText(p.Price),
	}
}
