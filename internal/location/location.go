// Package location serves the province/city lookup tables.
package location

type Province struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID         int64  `json:"id"`
	ProvinceID int64  `json:"province"`
	Name       string `json:"name"`
}
