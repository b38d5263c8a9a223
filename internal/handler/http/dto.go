package http

// messageResponse is the JSON body returned by the root endpoint.
type messageResponse struct {
	Message string `json:"message" example:"Service is running"`
}

// heartbeatResponse is the JSON body returned by the heartbeat endpoint.
type heartbeatResponse struct {
	Status string `json:"status" example:"OK"`
}

// generateRequest is the JSON body accepted by the generation endpoint.
type generateRequest struct {
	Topic string `json:"topic" example:"solid state batteries"`
}

// postResponse is the JSON body returned for a generated post.
type postResponse struct {
	Title           string `json:"title" example:"Solid State Batteries: What Changed This Year"`
	MetaDescription string `json:"meta_description" example:"A look at recent solid state battery breakthroughs and what they mean for electric vehicles."`
	PostContent     string `json:"post_content" example:"Solid state batteries have moved from lab demos to pilot production lines..."`
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string `json:"error" example:"topic is required"`
}
