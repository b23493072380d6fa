package repositories

import "context"

// SettingRepository defines admin configuration storage.
// Saves are last-write-wins upserts keyed by setting name.
type SettingRepository interface {
	GetAll(ctx context.Context) (map[string]interface{}, error)
	Save(ctx context.Context, key string, value interface{}) error
}
