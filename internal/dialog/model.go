package dialog

type State string

const (
	StateIdle State = "idle"

	// Гости
	StatePlanMen   State = "plan:guests:man"
	StatePlanWomen State = "plan:guests:woman"
	StatePlanKids  State = "plan:guests:kid"

	// Выбор позиций каталога
	StatePlanMeats       State = "plan:pick:meat"
	StatePlanDrinks      State = "plan:pick:drink"
	StatePlanConsumables State = "plan:pick:consumable"
	StatePlanSideDishes  State = "plan:pick:side_dish"

	// Адрес и ответственный
	StateAddrCEP     State = "addr:cep"
	StateAddrNumber  State = "addr:number"
	StateHostName    State = "addr:host_name"
	StateHostContact State = "addr:host_contact"

	StateSummary State = "plan:summary"
)

// Ключи payload
const (
	KeyMen         = "man"
	KeyWomen       = "woman"
	KeyKids        = "kid"
	KeyMeats       = "meats"
	KeyDrinks      = "drinks"
	KeyConsumables = "consumables"
	KeySideDishes  = "side_dishes"
	KeyAddress     = "address"
	KeyLastMID     = "last_mid"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}
