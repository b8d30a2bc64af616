package entities

type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
