package models

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// İşlemi yapan kullanıcı (denormalize)
	UserName string `json:"userName"`

	// Hangi entity? (ör: "menu_item")
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`

	// İşlem tipi: create/update/delete
	Action AuditAction `json:"action"`

	// Opsiyonel açıklama (küçük bir özet)
	Description string `json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData json.RawMessage `json:"beforeData"`
	AfterData  json.RawMessage `json:"afterData"`
}
