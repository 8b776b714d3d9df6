package dispatch

// dispatchRequest is the request body for POST /dispatch.
type dispatchRequest struct {
	Category string `json:"category" example:"Sports"`
	Content  string `json:"content" example:"Match starts at 19:00"`
}
