package domain

import "time"

type EntityAction string

const (
	ActionCreated EntityAction = "created"
	ActionUpdated EntityAction = "updated"
	ActionDeleted EntityAction = "deleted"
)

// EntityEvent announces a committed write to an entity.
type EntityEvent struct {
	Entity string       `json:"entity"`
	Action EntityAction `json:"action"`
	ID     int64        `json:"id"`
	At     time.Time    `json:"at"`
}
