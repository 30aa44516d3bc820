package dto

import (
	"strconv"
	"time"

	"scent-store-api/internal/model"
	"scent-store-api/internal/service"
)

type AddItemRequest struct {
	ItemKind string `json:"item_kind"` // product | dupe; defaults to product
	ItemID   uint   `json:"item_id"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

type PromoPreviewResponse struct {
	Code               string `json:"code"`
	DiscountType       string `json:"discount_type"`
	MinimumOrderAmount string `json:"minimum_order_amount"`
	Subtotal           string `json:"subtotal"`
	Discount           string `json:"discount"`
	Total              string `json:"total"`
}

func NewPromoPreviewResponse(preview *service.PromoPreview) PromoPreviewResponse {
	return PromoPreviewResponse{
		Code:               preview.Code,
		DiscountType:       string(preview.DiscountType),
		MinimumOrderAmount: preview.MinimumOrderAmount.StringFixed(2),
		Subtotal:           preview.Subtotal.StringFixed(2),
		Discount:           preview.Discount.StringFixed(2),
		Total:              preview.Total.StringFixed(2),
	}
}

type CheckoutRequest struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	ShippingAddress string `json:"shipping_address"`
	Phone           string `json:"phone"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateReviewRequest struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type CreatePromoRequest struct {
	Code                  string     `json:"code"`
	Description           string     `json:"description"`
	DiscountType          string     `json:"discount_type"`
	DiscountValue         string     `json:"discount_value"`
	MinimumOrderAmount    string     `json:"minimum_order_amount"`
	MaximumDiscountAmount *string    `json:"maximum_discount_amount"`
	UsageLimit            *int       `json:"usage_limit"`
	ValidFrom             *time.Time `json:"valid_from"`
	ValidUntil            *time.Time `json:"valid_until"`
}

type CartLineResponse struct {
	ID        uint   `json:"id"`
	ItemKind  string `json:"item_kind"`
	ItemID    uint   `json:"item_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  string             `json:"subtotal"`
	Discount  string             `json:"discount"`
	Total     string             `json:"total"`
	PromoCode string             `json:"promo_code,omitempty"`
}

// NewCartResponse flattens a priced cart view for the API. Line ids are
// looked up from the stored cart so update/remove calls can target them.
func NewCartResponse(view *service.CartView) CartResponse {
	lineID := make(map[[3]string]uint, len(view.Cart.Items))
	for _, item := range view.Cart.Items {
		lineID[lineKey(string(item.ItemKind), item.ItemID, item.Size)] = item.ID
	}

	resp := CartResponse{
		Items:     make([]CartLineResponse, len(view.Lines)),
		Subtotal:  view.Quote.Subtotal.StringFixed(2),
		Discount:  view.Quote.Discount.StringFixed(2),
		Total:     view.Quote.Total.StringFixed(2),
		ItemCount: view.Cart.ItemCount(),
	}
	if view.Cart.PromoCode != nil {
		resp.PromoCode = view.Cart.PromoCode.Code
	}

	for i, line := range view.Lines {
		resp.Items[i] = CartLineResponse{
			ID:        lineID[lineKey(string(line.ItemKind), line.ItemID, line.Size)],
			ItemKind:  string(line.ItemKind),
			ItemID:    line.ItemID,
			Name:      line.Name,
			Size:      line.Size,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		}
	}
	return resp
}

func lineKey(kind string, id uint, size string) [3]string {
	return [3]string{kind, strconv.FormatUint(uint64(id), 10), size}
}

type OrderLineResponse struct {
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Subtotal    string `json:"subtotal"`
}

type OrderResponse struct {
	OrderNumber        string              `json:"order_number"`
	Email              string              `json:"email"`
	FullName           string              `json:"full_name"`
	ShippingAddress    string              `json:"shipping_address"`
	Phone              string              `json:"phone"`
	Status             string              `json:"status"`
	SubtotalAmount     string              `json:"subtotal_amount"`
	DiscountAmount     string              `json:"discount_amount"`
	TotalAmount        string              `json:"total_amount"`
	PromoCodeUsed      string              `json:"promo_code_used,omitempty"`
	PromoDiscountType  string              `json:"promo_discount_type,omitempty"`
	PromoDiscountValue string              `json:"promo_discount_value,omitempty"`
	Items              []OrderLineResponse `json:"items"`
	CreatedAt          time.Time           `json:"created_at"`
}

func NewOrderResponse(order *model.Order) OrderResponse {
	resp := OrderResponse{
		OrderNumber:     order.OrderNumber,
		Email:           order.Email,
		FullName:        order.FullName,
		ShippingAddress: order.ShippingAddress,
		Phone:           order.Phone,
		Status:          string(order.Status),
		SubtotalAmount:  order.SubtotalAmount.StringFixed(2),
		DiscountAmount:  order.DiscountAmount.StringFixed(2),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		PromoCodeUsed:   order.PromoCodeUsed,
		Items:           make([]OrderLineResponse, len(order.Items)),
		CreatedAt:       order.CreatedAt,
	}
	if order.PromoCodeUsed != "" {
		resp.PromoDiscountType = string(order.PromoDiscountType)
		resp.PromoDiscountValue = order.PromoDiscountValue.StringFixed(2)
	}
	for i := range order.Items {
		item := &order.Items[i]
		resp.Items[i] = OrderLineResponse{
			ProductName: item.ProductName,
			Price:       item.ProductPrice.StringFixed(2),
			Quantity:    item.Quantity,
			Size:        item.Size,
			Subtotal:    item.Subtotal().StringFixed(2),
		}
	}
	return resp
}
