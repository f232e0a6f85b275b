package gamedata

// GoodDef defines a consumable sold at the shop.
type GoodDef struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Price        int    `json:"price" validate:"gte=1"`
	RequiresMana bool   `json:"requiresMana,omitempty"` // Hidden when mana is disabled
}

// GoodsFile represents the structure of goods.json.
type GoodsFile struct {
	Goods []GoodDef `json:"goods" validate:"min=1,dive"`
}

// LoadGoods loads shop goods from the embedded goods.json file.
func LoadGoods() ([]GoodDef, error) {
	file, err := Load[GoodsFile]("goods.json")
	if err != nil {
		return nil, err
	}
	return file.Goods, nil
}
