package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"invitaciones_server/models"
	"invitaciones_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type InvitationService struct {
	Dynamo *DynamoService
}

// CreateInvitation stores a new invitation. Called on checkout completion;
// the id, url slug and timestamps are generated here.
func (is *InvitationService) CreateInvitation(ctx context.Context, invitation models.Invitation) (*models.Invitation, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	invitation.InvitationID = uuid.NewString()
	if invitation.URLSlug == "" {
		invitation.URLSlug = utils.Slugify(invitation.Title) + "-" + invitation.InvitationID[:8]
	}
	if invitation.InvitationData == nil {
		invitation.InvitationData = models.SectionData{}
	}
	invitation.Published = false
	invitation.Views = 0
	invitation.CreatedAt = now
	invitation.UpdatedAt = now

	if err := is.Dynamo.PutItem(ctx, models.InvitationsTable, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	log.Printf("✅ Invitation %s created (slug: %s)", invitation.InvitationID, invitation.URLSlug)
	return &invitation, nil
}

// GetInvitation retrieves an invitation by id.
func (is *InvitationService) GetInvitation(ctx context.Context, invitationID string) (*models.Invitation, error) {
	item, err := is.Dynamo.GetItem(ctx, models.InvitationsTable, map[string]types.AttributeValue{
		"invitationId": &types.AttributeValueMemberS{Value: invitationID},
	})
	if err != nil {
		return nil, err
	}

	var invitation models.Invitation
	if err := attributevalue.UnmarshalMap(item, &invitation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitation: %w", err)
	}
	return &invitation, nil
}

// GetInvitationByURL retrieves an invitation by its public url slug.
func (is *InvitationService) GetInvitationByURL(ctx context.Context, slug string) (*models.Invitation, error) {
	items, err := is.Dynamo.QueryItemsWithIndex(ctx, models.InvitationsTable, models.InvitationsByURLIndex,
		"urlSlug = :slug",
		map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		}, nil, 1,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query invitation by url: %w", err)
	}
	if len(items) == 0 {
		return nil, models.ErrNotFound
	}

	var invitation models.Invitation
	if err := attributevalue.UnmarshalMap(items[0], &invitation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitation: %w", err)
	}
	return &invitation, nil
}

// GetUserInvitations lists the invitations owned by a user (dashboard view).
func (is *InvitationService) GetUserInvitations(ctx context.Context, userID string) ([]models.Invitation, error) {
	items, err := is.Dynamo.QueryItemsWithIndex(ctx, models.InvitationsTable, models.InvitationsByUserIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}, nil, 100,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user invitations: %w", err)
	}

	invitations := make([]models.Invitation, 0, len(items))
	for _, item := range items {
		var invitation models.Invitation
		if err := attributevalue.UnmarshalMap(item, &invitation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invitation: %w", err)
		}
		invitations = append(invitations, invitation)
	}
	return invitations, nil
}

// SaveSections maps a flat customizer payload into section-keyed data and
// persists it on the invitation.
func (is *InvitationService) SaveSections(ctx context.Context, invitationID string, flat map[string]interface{}) (models.SectionData, error) {
	sections := MapSections(flat)

	sectionsAttr, err := attributevalue.Marshal(map[string]map[string]interface{}(sections))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sections data: %w", err)
	}

	_, err = is.Dynamo.UpdateItem(ctx, models.InvitationsTable,
		"SET invitationData = :data, updatedAt = :now",
		map[string]types.AttributeValue{
			"invitationId": &types.AttributeValueMemberS{Value: invitationID},
		},
		map[string]types.AttributeValue{
			":data": sectionsAttr,
			":now":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save sections for invitation '%s': %w", invitationID, err)
	}

	return sections, nil
}

// RegisterView atomically increments the invitation's view counter.
func (is *InvitationService) RegisterView(ctx context.Context, invitationID string) (int64, error) {
	attrs, err := is.Dynamo.UpdateItem(ctx, models.InvitationsTable,
		"SET #v = if_not_exists(#v, :zero) + :one",
		map[string]types.AttributeValue{
			"invitationId": &types.AttributeValueMemberS{Value: invitationID},
		},
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		map[string]string{"#v": "views"},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to register view: %w", err)
	}

	var updated struct {
		Views int64 `dynamodbav:"views"`
	}
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return 0, fmt.Errorf("failed to unmarshal view count: %w", err)
	}
	return updated.Views, nil
}

// AddEvent appends an RSVP or analytics event to the invitation.
func (is *InvitationService) AddEvent(ctx context.Context, invitationID string, event models.EventRecord) (*models.EventRecord, error) {
	event.EventID = uuid.NewString()
	event.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	eventAttr, err := attributevalue.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = is.Dynamo.UpdateItem(ctx, models.InvitationsTable,
		"SET events = list_append(if_not_exists(events, :empty), :newItem)",
		map[string]types.AttributeValue{
			"invitationId": &types.AttributeValueMemberS{Value: invitationID},
		},
		map[string]types.AttributeValue{
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":newItem": &types.AttributeValueMemberL{Value: []types.AttributeValue{eventAttr}},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add event to invitation '%s': %w", invitationID, err)
	}
	return &event, nil
}

// PublishInvitation flips the publication flag. Invitations are never
// deleted; unpublishing just clears the flag.
func (is *InvitationService) PublishInvitation(ctx context.Context, invitationID string, published bool) error {
	values := map[string]types.AttributeValue{
		":published": &types.AttributeValueMemberBOOL{Value: published},
		":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expression := "SET published = :published, updatedAt = :now"
	if published {
		expression = "SET published = :published, publishedAt = :now, updatedAt = :now"
	}

	_, err := is.Dynamo.UpdateItem(ctx, models.InvitationsTable, expression,
		map[string]types.AttributeValue{
			"invitationId": &types.AttributeValueMemberS{Value: invitationID},
		}, values, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to update publication state: %w", err)
	}
	return nil
}
