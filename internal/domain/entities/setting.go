package entities

// Setting is a generic admin configuration entry. Keys are unique,
// values are arbitrary JSON, saves are last-write-wins.
type Setting struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// SaveSettingInput represents the admin settings upsert payload
type SaveSettingInput struct {
	Key   string      `json:"key" binding:"required"`
	Value interface{} `json:"value"`
}
