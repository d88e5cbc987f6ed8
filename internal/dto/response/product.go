package response

import "shop-loyalty/internal/data/entity"

type ProductResponse struct {
	ID           string               `json:"id"`
	CategoryID   string               `json:"category_id"`
	Name         string               `json:"name"`
	Image        string               `json:"image,omitempty"`
	ImageHint    string               `json:"image_hint,omitempty"`
	OrderOptions []entity.OrderOption `json:"order_options"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID.String(),
		CategoryID:   product.CategoryID.String(),
		Name:         product.Name,
		Image:        product.Image,
		ImageHint:    product.ImageHint,
		OrderOptions: product.OrderOptions,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, ProductToResponse(product))
	}
	return out
}

type CategoryResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Image      string            `json:"image,omitempty"`
	ImageHint  string            `json:"image_hint,omitempty"`
	PickupDays []string          `json:"pickup_days"`
	Products   []ProductResponse `json:"products,omitempty"`
}

func CategoryToResponse(category *entity.Category, products []*entity.Product) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID.String(),
		Name:       category.Name,
		Image:      category.Image,
		ImageHint:  category.ImageHint,
		PickupDays: category.PickupDays,
		Products:   ProductsToResponse(products),
	}
}
