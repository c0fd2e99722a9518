package entities

// MenuItem is anything that can be offered on a numbered selection menu.
type MenuItem interface {
	Label() string
}
