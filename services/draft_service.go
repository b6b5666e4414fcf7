package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"invitaciones_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DraftStore is the key-value store behind the customizer drafts. The
// payload is the serialized draft exactly as the customizer saved it, so
// different store backends stay interchangeable.
type DraftStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, payload string) error
	Delete(ctx context.Context, key string) error
}

// draftRecord is the DynamoDB shape of a stored draft.
type draftRecord struct {
	DraftKey  string `dynamodbav:"draftKey"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

// DynamoDraftStore persists drafts in the CustomizerDrafts table.
type DynamoDraftStore struct {
	Dynamo *DynamoService
}

func (s *DynamoDraftStore) Get(ctx context.Context, key string) (string, error) {
	item, err := s.Dynamo.GetItem(ctx, models.DraftsTable, map[string]types.AttributeValue{
		"draftKey": &types.AttributeValueMemberS{Value: key},
	})
	if err != nil {
		return "", err
	}

	var record draftRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return "", fmt.Errorf("failed to unmarshal draft record: %w", err)
	}
	return record.Payload, nil
}

func (s *DynamoDraftStore) Put(ctx context.Context, key string, payload string) error {
	record := draftRecord{
		DraftKey:  key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.Dynamo.PutItem(ctx, models.DraftsTable, record)
}

func (s *DynamoDraftStore) Delete(ctx context.Context, key string) error {
	return s.Dynamo.DeleteItem(ctx, models.DraftsTable, map[string]types.AttributeValue{
		"draftKey": &types.AttributeValueMemberS{Value: key},
	})
}

// MemoryDraftStore keeps drafts in memory. Used in tests and local runs.
// Concurrent writers follow last-write-wins.
type MemoryDraftStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{items: map[string]string{}}
}

func (s *MemoryDraftStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.items[key]
	if !ok {
		return "", models.ErrNotFound
	}
	return payload, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, key string, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = payload
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// DraftService reads and writes customizer drafts through a DraftStore.
type DraftService struct {
	Store DraftStore
}

// DraftKey builds the store key for a template's demo draft.
func DraftKey(templateID string) string {
	return "demo-customizer-" + templateID
}

// GetDraft returns the stored draft for a template, or nil when there is
// none. A corrupted payload degrades to "no draft" instead of failing the
// request.
func (s *DraftService) GetDraft(ctx context.Context, templateID string) (*models.Draft, error) {
	key := DraftKey(templateID)

	payload, err := s.Store.Get(ctx, key)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read draft '%s': %w", key, err)
	}

	var draft models.Draft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		log.Printf("⚠️ Corrupted draft payload for key '%s', treating as absent: %v", key, err)
		return nil, nil
	}

	draft.DraftKey = key
	if draft.CustomizerData == nil {
		draft.CustomizerData = map[string]interface{}{}
	}
	if draft.TouchedFields == nil {
		draft.TouchedFields = map[string]bool{}
	}
	return &draft, nil
}

// SaveDraft stores a draft, replacing whatever was there (last-write-wins).
func (s *DraftService) SaveDraft(ctx context.Context, templateID string, draft *models.Draft) error {
	key := DraftKey(templateID)
	draft.DraftKey = key
	draft.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft '%s': %w", key, err)
	}
	return s.Store.Put(ctx, key, string(payload))
}

// DeleteDraft discards the stored draft for a template.
func (s *DraftService) DeleteDraft(ctx context.Context, templateID string) error {
	return s.Store.Delete(ctx, DraftKey(templateID))
}
