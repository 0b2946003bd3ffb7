package clientmodels

type APIErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}
