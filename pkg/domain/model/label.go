package model

// Label is a GitHub issue label.
type Label struct {
	Name        string
	Color       string
	Description string
}

// WarningLabel is added to pull requests that touch files in the fix cache.
var WarningLabel = Label{
	Name:        "Fix Cache Warning :warning:",
	Color:       "e3ff00",
	Description: "Changes files that were frequently fixed before",
}
