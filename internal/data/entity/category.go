package entity

// Category groups products and carries the weekdays its products can be
// picked up on.
type Category struct {
	BaseNoDelete
	Name       string   `db:"name"`
	Image      string   `db:"image"`
	ImageHint  string   `db:"image_hint"`
	PickupDays []string `db:"pickup_days"`
}
