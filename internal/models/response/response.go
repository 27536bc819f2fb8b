package response

import "docmeister/internal/models/entity"

type Standard struct {
	Error    *ErrorPayload    `json:"error,omitempty"`
	Response *ResponsePayload `json:"response,omitempty"`
}

type ErrorPayload struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

type ResponsePayload map[string]interface{}

// TokenPair is the login/refresh response body.
type TokenPair struct {
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

// DocumentList is the paged list response body.
type DocumentList struct {
	TotalCount int               `json:"total_count"`
	PageSize   int               `json:"page_size"`
	PageNumber int               `json:"page_number"`
	TotalPages int               `json:"total_pages"`
	Documents  []entity.Document `json:"documents"`
}
