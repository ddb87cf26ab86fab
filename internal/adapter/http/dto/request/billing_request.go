package request

type CheckoutRequest struct {
	PlanID   string  `json:"plan_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}
