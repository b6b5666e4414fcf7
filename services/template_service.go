package services

import (
	"context"
	"fmt"

	"invitaciones_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TemplateService struct {
	Dynamo *DynamoService
}

// GetTemplate retrieves a template's metadata by id.
func (ts *TemplateService) GetTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	item, err := ts.Dynamo.GetItem(ctx, models.TemplatesTable, map[string]types.AttributeValue{
		"templateId": &types.AttributeValueMemberS{Value: templateID},
	})
	if err != nil {
		return nil, err
	}

	var template models.Template
	if err := attributevalue.UnmarshalMap(item, &template); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}
	return &template, nil
}

// ListTemplates scans the gallery, optionally filtered by category and
// premium flag.
func (ts *TemplateService) ListTemplates(ctx context.Context, category string, premiumOnly bool) ([]models.Template, error) {
	var templates []models.Template

	filterFunc := func(item map[string]types.AttributeValue) bool {
		if category != "" {
			if attr, ok := item["category"].(*types.AttributeValueMemberS); !ok || attr.Value != category {
				return false
			}
		}
		if premiumOnly {
			if attr, ok := item["premium"].(*types.AttributeValueMemberBOOL); !ok || !attr.Value {
				return false
			}
		}
		return true
	}

	if err := ts.Dynamo.ScanWithFilter(ctx, models.TemplatesTable, filterFunc, nil, &templates); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}
