package summary

type CreateRequest struct {
	Manager string `json:"manager" validate:"required,max=200"`
	Month   string `json:"month" validate:"required"`
}
