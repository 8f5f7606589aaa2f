package availability

// ItemKind distinguishes made-to-order food from pre-made stock items.
// Stock items carry a remaining-quantity cap maintained by the shop.
type ItemKind string

const (
	KindFood  ItemKind = "food"
	KindStock ItemKind = "stock"
)

func (k ItemKind) String() string {
	return string(k)
}

func (k ItemKind) IsValid() bool {
	switch k {
	case KindFood, KindStock:
		return true
	default:
		return false
	}
}
