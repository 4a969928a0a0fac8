package css

//go:generate go tool go-enum --names

// Media query endpoint of a descriptor entry.
// ENUM(min, max)
type Endpoint int
