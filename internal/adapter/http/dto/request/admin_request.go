package request

type MetalPricesRequest struct {
	CopperPerLb   float64 `json:"copper_per_lb" binding:"required"`
	AluminumPerLb float64 `json:"aluminum_per_lb" binding:"required"`
}
