package app

import "github.com/roadsafety-dashboard/roadsafety/internal/utils"

// ValidateEntity accepts every key present in the loaded table, whatever its
// length or characters; other keys must pass utils.ValidateEntityKey.
func (app *Application) ValidateEntity(key string) error {
	if app.Dataset != nil && app.Dataset.HasEntity(key) {
		return nil
	}
	return utils.ValidateEntityKey(key)
}
