package templates

import (
	"context"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type TemplateUsecase interface {
	Create(ctx context.Context, request *requests.CreateSlotTemplate) (*models.SlotTemplate, error)
	FindByID(ctx context.Context, templateID string) (*models.SlotTemplate, error)
	FindWithFilter(ctx context.Context, filter contracts.TemplateFilter) ([]models.SlotTemplate, error)
	Update(ctx context.Context, templateID string, request *requests.UpdateSlotTemplate) (*models.SlotTemplate, error)
	Activate(ctx context.Context, templateID, actor string) (*models.SlotTemplate, error)
	Deactivate(ctx context.Context, templateID, actor string) (*models.SlotTemplate, error)
	BlockDate(ctx context.Context, templateID, date string) (*models.SlotTemplate, error)
	UnblockDate(ctx context.Context, templateID, date string) (*models.SlotTemplate, error)
}
