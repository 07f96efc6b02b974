package entities

import "fmt"

// Item is a named, valued inventory entry
type Item struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

func (i Item) GetName() string {
	return i.Name
}

func (i Item) String() string {
	return fmt.Sprintf("%s($%d)", i.Name, i.Value)
}
