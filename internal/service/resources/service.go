package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources/models"
)

// Service сервис для управления каталогом ресурсов
type Service struct {
	resourceRepo ResourceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает ресурс с правилами доступности и тарифной картой
// Правила валидируются на этапе приёма: структурно некорректное правило
// отклоняется целиком, ничего не сохраняется
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource kind=%s by user=%d", req.Kind, req.UserID)

	kind, err := models.ToDomainKind(req.Kind)
	if err != nil {
		s.logger.Warn("Create: invalid kind=%q", req.Kind)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(req.Rules) > domain.MaxRulesPerResource {
		s.logger.Warn("Create: too many rules (%d)", len(req.Rules))
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRules, domain.MaxRulesPerResource)
	}

	rules, err := models.ToDomainRules(req.Rules)
	if err != nil {
		s.logger.Warn("Create: failed to parse rules: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	resource := &domain.Resource{
		Kind:     kind,
		Category: req.Category,
		Rules:    rules,
	}

	if req.RateCard != nil {
		rateCard, err := req.RateCard.ToDomainRateCard()
		if err != nil {
			s.logger.Warn("Create: invalid rate card: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRateCard, err)
		}
		resource.RateCard = rateCard
	}

	if err := resource.Validate(); err != nil {
		s.logger.Warn("Create: resource validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	// Ресурс, правила и тарифная карта сохраняются атомарно
	var created *domain.Resource
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.resourceRepo.Create(txCtx, resource)
		if err != nil {
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		created = res
		return nil
	})
	if err != nil {
		s.logger.Error("Create: failed to create resource: %v", err)
		return nil, err
	}

	s.logger.Info("Create: created resource id=%d", created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// List получает список ресурсов с фильтрацией по типу и категории
func (s *Service) List(ctx context.Context, req *models.ListResourcesRequest) (*models.ResourceListResponse, error) {
	s.logger.Info("List: fetching resources, kind=%v, category=%v", req.Kind, req.Category)

	filter := resourceRepo.Filter{Category: req.Category}
	if req.Kind != nil {
		kind, err := models.ToDomainKind(*req.Kind)
		if err != nil {
			s.logger.Warn("List: invalid kind=%q", *req.Kind)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Kind = &kind
	}

	resources, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d resources", len(resources))
	return models.FromDomainResourceList(resources), nil
}

// ReplaceRules целиком заменяет правила доступности ресурса
// Замена атомарна: при ошибке валидации или сохранения прежние правила
// остаются в силе
func (s *Service) ReplaceRules(ctx context.Context, resourceID int64, req *models.UpdateRulesRequest) (*models.ResourceResponse, error) {
	s.logger.Info("ReplaceRules: replacing rules for resource id=%d by user=%d, rules=%d",
		resourceID, req.UserID, len(req.Rules))

	if len(req.Rules) > domain.MaxRulesPerResource {
		s.logger.Warn("ReplaceRules: too many rules (%d) for resource id=%d", len(req.Rules), resourceID)
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRules, domain.MaxRulesPerResource)
	}

	rules, err := models.ToDomainRules(req.Rules)
	if err != nil {
		s.logger.Warn("ReplaceRules: failed to parse rules for resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			s.logger.Warn("ReplaceRules: rule validation failed for resource id=%d: %v", resourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
	}

	var updated *domain.Resource
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.resourceRepo.ReplaceRules(txCtx, resourceID, rules); err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			return fmt.Errorf("%w: ReplaceRules - repository error: %v", ErrInternal, err)
		}

		res, err := s.resourceRepo.GetByID(txCtx, resourceID)
		if err != nil {
			return fmt.Errorf("%w: ReplaceRules - reload resource: %v", ErrInternal, err)
		}
		updated = res
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrResourceNotFound) {
			s.logger.Error("ReplaceRules: failed for resource id=%d: %v", resourceID, err)
		}
		return nil, err
	}

	s.logger.Info("ReplaceRules: replaced rules for resource id=%d", resourceID)
	return models.FromDomainResource(updated), nil
}

// Delete удаляет ресурс вместе с правилами и тарифной картой
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting resource id=%d", id)

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Delete: resource id=%d not found", id)
			return ErrResourceNotFound
		}
		s.logger.Error("Delete: repository error for resource id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted resource id=%d", id)
	return nil
}
