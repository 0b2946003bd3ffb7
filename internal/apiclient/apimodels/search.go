package apimodels

type SearchRequest struct {
	Search string `json:"Search"`
}

type SearchResponse struct {
	Credentials []SearchCredential `json:"Credentials"`
	Groups      []SearchGroup      `json:"Groups"`
}

type SearchCredential struct {
	Id       string `json:"Id"`
	Name     string `json:"Name"`
	Username string `json:"Username"`
	Path     string `json:"Path"`
	GroupId  string `json:"GroupId"`
}

type SearchGroup struct {
	Id       string `json:"Id"`
	Name     string `json:"Name"`
	FullPath string `json:"FullPath"`
}
