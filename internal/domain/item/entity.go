package item

import "github.com/shopspring/decimal"

// Item is a menu position. Quests target a single item.
type Item struct {
	ID      int64
	IIKOID  *string
	Name    string
	Price   decimal.Decimal
	Deleted bool
}
