package request

// SelectCustomerRequest selects the quote customer. An empty customer_id
// clears the selection.
type SelectCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

type ProjectRequest struct {
	ProjectName string `json:"project_name"`
	Notes       string `json:"notes"`
}

// AddItemRequest adds quantity units of a product; quantity defaults to 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

func (r AddItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// UpdateQuantityRequest sets a line's quantity. Zero or less removes it.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
