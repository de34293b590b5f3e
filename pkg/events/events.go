// Package events defines event types and structures for blueprint and contract notifications.
package events

import (
	"time"

	"github.com/dukex/contractflow/pkg/models"
	"github.com/google/uuid"
)

type EventType string

// Topic all events are published to.
const Topic = "contractflow.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	BlueprintCreatedEvent    EventType = "blueprint.created"
	BlueprintFieldAddedEvent EventType = "blueprint.field_added"

	ContractGeneratedEvent     EventType = "contract.generated"
	ContractFieldUpdatedEvent  EventType = "contract.field_updated"
	ContractStatusChangedEvent EventType = "contract.status_changed"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]any),
	}
}

type BlueprintCreated struct {
	BaseEvent

	BlueprintID string `json:"blueprint_id"`
	Name        string `json:"name"`
}

func (b BlueprintCreated) GetType() EventType {
	return BlueprintCreatedEvent
}

func NewBlueprintCreated(bp *models.Blueprint) BlueprintCreated {
	return BlueprintCreated{
		BaseEvent:   NewBaseEvent(BlueprintCreatedEvent),
		BlueprintID: bp.ID,
		Name:        bp.Name,
	}
}

type BlueprintFieldAdded struct {
	BaseEvent

	BlueprintID string             `json:"blueprint_id"`
	Field       models.FieldSchema `json:"field"`
	FieldCount  int                `json:"field_count"`
}

func (b BlueprintFieldAdded) GetType() EventType {
	return BlueprintFieldAddedEvent
}

func NewBlueprintFieldAdded(bp *models.Blueprint) BlueprintFieldAdded {
	var field models.FieldSchema
	if n := len(bp.Fields); n > 0 {
		field = bp.Fields[n-1]
	}

	return BlueprintFieldAdded{
		BaseEvent:   NewBaseEvent(BlueprintFieldAddedEvent),
		BlueprintID: bp.ID,
		Field:       field,
		FieldCount:  len(bp.Fields),
	}
}

type ContractGenerated struct {
	BaseEvent

	ContractID    string                `json:"contract_id"`
	BlueprintID   string                `json:"blueprint_id"`
	BlueprintName string                `json:"blueprint_name"`
	Status        models.ContractStatus `json:"status"`
	FieldCount    int                   `json:"field_count"`
}

func (c ContractGenerated) GetType() EventType {
	return ContractGeneratedEvent
}

func NewContractGenerated(blueprintID string, contract *models.Contract) ContractGenerated {
	return ContractGenerated{
		BaseEvent:     NewBaseEvent(ContractGeneratedEvent),
		ContractID:    contract.ID,
		BlueprintID:   blueprintID,
		BlueprintName: contract.BlueprintName,
		Status:        contract.Status,
		FieldCount:    len(contract.Fields),
	}
}

// ContractFieldUpdated carries the field label and type only, never the value.
type ContractFieldUpdated struct {
	BaseEvent

	ContractID string           `json:"contract_id"`
	Label      string           `json:"label"`
	FieldType  models.FieldType `json:"field_type"`
}

func (c ContractFieldUpdated) GetType() EventType {
	return ContractFieldUpdatedEvent
}

func NewContractFieldUpdated(contractID string, field models.FieldValue) ContractFieldUpdated {
	return ContractFieldUpdated{
		BaseEvent:  NewBaseEvent(ContractFieldUpdatedEvent),
		ContractID: contractID,
		Label:      field.Label,
		FieldType:  field.Type,
	}
}

type ContractStatusChanged struct {
	BaseEvent

	ContractID string                `json:"contract_id"`
	From       models.ContractStatus `json:"from"`
	To         models.ContractStatus `json:"to"`
}

func (c ContractStatusChanged) GetType() EventType {
	return ContractStatusChangedEvent
}

func NewContractStatusChanged(contractID string, from, to models.ContractStatus) ContractStatusChanged {
	return ContractStatusChanged{
		BaseEvent:  NewBaseEvent(ContractStatusChangedEvent),
		ContractID: contractID,
		From:       from,
		To:         to,
	}
}
