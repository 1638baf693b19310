package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldDescription = "description"
)

type Room struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	model.Metadata
}
