package view

import "html/template"

var (
	pageTmpl = template.Must(template.New("page").Parse(`<header class="header">
  <button class="header__basket" data-action="basket-open">
    <span class="header__basket-counter">{{.Count}}</span>
  </button>
</header>
<main class="gallery">
{{- range .Cards}}
  <button class="gallery__item card" data-id="{{.ID}}" data-action="card-select">
    <span class="{{.CategoryClass}}">{{.Category}}</span>
    <h2 class="card__title">{{.Title}}</h2>
    <img class="card__image" src="{{.Image}}" alt="{{.Title}}" />
    <span class="card__price">{{.Price}}</span>
  </button>
{{- end}}
</main>`))

	basketTmpl = template.Must(template.New("basket").Parse(`<div class="basket">
  <h2 class="modal__title">Корзина</h2>
  <ul class="basket__list">
{{- range .Items}}
    <li class="basket__item card card_compact" data-id="{{.ID}}">
      <span class="basket__item-index">{{.Index}}</span>
      <span class="card__title">{{.Title}}</span>
      <span class="card__price">{{.Price}}</span>
      <button class="basket__item-delete" data-id="{{.ID}}" data-action="basket-remove"></button>
    </li>
{{- end}}
  </ul>
  <div class="modal__actions">
    <button class="basket__button"{{if .Empty}} disabled{{end}} data-action="basket-checkout">Оформить</button>
    <span class="basket__price">{{.Total}}</span>
  </div>
</div>`))

	previewTmpl = template.Must(template.New("preview").Parse(`<div class="card card_full" data-id="{{.Card.ID}}">
  <img class="card__image" src="{{.Card.Image}}" alt="{{.Card.Title}}" />
  <div class="card__column">
    <span class="{{.Card.CategoryClass}}">{{.Card.Category}}</span>
    <h2 class="card__title">{{.Card.Title}}</h2>
    <p class="card__text">{{.Card.Description}}</p>
    <div class="card__row">
      <button class="card__button" data-action="{{.Action}}"{{if .Disabled}} disabled{{end}}>{{.Button}}</button>
      <span class="card__price">{{.Card.Price}}</span>
    </div>
  </div>
</div>`))

	orderFormTmpl = template.Must(template.New("order").Parse(`<form class="form" name="order">
  <div class="order">
    <div class="order__field">
      <h2 class="modal__title">Способ оплаты</h2>
      <div class="order__buttons">
        <button name="card" type="button" class="button button_alt{{if .CardActive}} button_alt-active{{end}}">Онлайн</button>
        <button name="cash" type="button" class="button button_alt{{if .CashActive}} button_alt-active{{end}}">При получении</button>
      </div>
    </div>
    <label class="order__field">
      <span class="form__label modal__title">Адрес доставки</span>
      <input name="address" class="form__input" type="text" placeholder="Введите адрес" value="{{.Address}}" />
    </label>
  </div>
  <div class="modal__actions">
    <button type="submit" class="button order__button"{{if not .Valid}} disabled{{end}}>Далее</button>
    <span class="form__errors">{{.Errors}}</span>
  </div>
</form>`))

	contactsFormTmpl = template.Must(template.New("contacts").Parse(`<form class="form" name="contacts">
  <div class="order">
    <label class="order__field">
      <span class="form__label modal__title">Email</span>
      <input name="email" class="form__input" type="text" placeholder="Введите Email" value="{{.Email}}" />
    </label>
    <label class="order__field">
      <span class="form__label modal__title">Телефон</span>
      <input name="phone" class="form__input" type="text" placeholder="+7 (" value="{{.Phone}}" />
    </label>
  </div>
  <div class="modal__actions">
    <button type="submit" class="button"{{if not .Valid}} disabled{{end}}>Оплатить</button>
    <span class="form__errors">{{.Errors}}</span>
  </div>
</form>`))

	successTmpl = template.Must(template.New("success").Parse(`<div class="order-success">
  <h2 class="order-success__title">Заказ оформлен</h2>
  <p class="order-success__description">Списано {{.Total}} синапсов</p>
  <button class="button order-success__close" data-action="success-close">За новыми покупками!</button>
</div>`))

	modalTmpl = template.Must(template.New("modal").Parse(`<div class="modal{{if .Active}} modal_active{{end}}">
  <div class="modal__container">
    <button class="modal__close" data-action="modal-close"></button>
    <div class="modal__content">{{.Content}}</div>
  </div>
</div>`))
)
