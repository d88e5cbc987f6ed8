package request

type OrderOptionRequest struct {
	Type        string `json:"type" validate:"required,oneof=quantity weight portion"`
	Label       string `json:"label" validate:"required,min=1,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=200"`
}

type ProductRequest struct {
	CategoryID   string               `json:"category_id" validate:"required,uuid"`
	Name         string               `json:"name" validate:"required,min=1,max=100"`
	Image        string               `json:"image,omitempty" validate:"omitempty,max=500"`
	ImageHint    string               `json:"image_hint,omitempty" validate:"omitempty,max=100"`
	OrderOptions []OrderOptionRequest `json:"order_options" validate:"required,min=1,dive"`
}

type CategoryRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=100"`
	Image      string   `json:"image,omitempty" validate:"omitempty,max=500"`
	ImageHint  string   `json:"image_hint,omitempty" validate:"omitempty,max=100"`
	PickupDays []string `json:"pickup_days" validate:"required,min=1,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}
