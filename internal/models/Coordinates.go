package models

import "fmt"

type Coordinates struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"country,omitempty"`
}

// Label renders "Name, CC", or just the name when the country is unknown.
func (c Coordinates) Label() string {
	if c.Country == "" {
		return c.Name
	}
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}
