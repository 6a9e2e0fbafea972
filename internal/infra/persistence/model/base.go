// Package model holds the gorm persistence models. Column types stay portable
// across SQLite and PostgreSQL; ids are UUIDv7 strings generated on create.
package model

import (
	"github.com/google/uuid"
)

func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&OAuthTokenModel{},
		&ActiveLocationModel{},
		&GoogleAccountModel{},
		&LocationModel{},
		&PostModel{},
	}
}
