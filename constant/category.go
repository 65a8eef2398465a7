package constant

type Category string

const (
	CategoryToilet    Category = "Toilet"
	CategoryLavabo    Category = "Lavabo"
	CategoryShower    Category = "Shower"
	CategoryFaucet    Category = "Faucet"
	CategoryAccessory Category = "Accessory"
	CategoryCombo     Category = "Combo"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryToilet,
	CategoryLavabo,
	CategoryShower,
	CategoryFaucet,
	CategoryAccessory,
	CategoryCombo,
}

var CategoryLabel = map[Category]string{
	CategoryToilet:    "Bồn cầu",
	CategoryLavabo:    "Lavabo",
	CategoryShower:    "Sen tắm",
	CategoryFaucet:    "Vòi nước",
	CategoryAccessory: "Phụ kiện",
	CategoryCombo:     "Combo",
}

func (c Category) Valid() bool {
	_, ok := CategoryLabel[c]
	return ok
}

func (c Category) Label() string {
	if l, ok := CategoryLabel[c]; ok {
		return l
	}
	return string(c)
}
