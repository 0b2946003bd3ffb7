package apimodels

// Entry is the metadata record returned by the v5 entries endpoint. Username
// is a pointer so a response that omits the field can be told apart from an
// entry with an empty username.
type Entry struct {
	Id       string  `json:"Id"`
	Name     string  `json:"Name"`
	Username *string `json:"Username"`
	Url      string  `json:"Url"`
	Notes    string  `json:"Notes"`
	GroupId  string  `json:"GroupId"`
}
