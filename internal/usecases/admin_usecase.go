package usecases

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
	"halachick.backend/internal/domain/repositories"
)

const (
	trendMonths    = 6
	alertsLimit    = 3
	alertFallback  = "---"
	alertRoleGuess = "farmer"
)

// AdminUsecase handles the admin dashboards and user management
type AdminUsecase struct {
	userRepo       repositories.UserRepository
	investmentRepo repositories.InvestmentRepository
	fundRepo       repositories.InsuranceFundRepository
	claimRepo      repositories.InsuranceClaimRepository
	settingRepo    repositories.SettingRepository
	mailer         Mailer
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	investmentRepo repositories.InvestmentRepository,
	fundRepo repositories.InsuranceFundRepository,
	claimRepo repositories.InsuranceClaimRepository,
	settingRepo repositories.SettingRepository,
	mailer Mailer,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		fundRepo:       fundRepo,
		claimRepo:      claimRepo,
		settingRepo:    settingRepo,
		mailer:         mailer,
	}
}

// Stats builds the dashboard headline numbers
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.AdminStats, error) {
	stats := &entities.AdminStats{}

	var err error
	if stats.TotalInvestors, err = u.userRepo.CountByRole(ctx, entities.UserRoleInvestor, false); err != nil {
		return nil, err
	}
	if stats.ActiveInvestors, err = u.userRepo.CountByRole(ctx, entities.UserRoleInvestor, true); err != nil {
		return nil, err
	}
	if stats.ActiveFarmers, err = u.userRepo.CountByRole(ctx, entities.UserRoleFarmer, true); err != nil {
		return nil, err
	}
	if stats.ActiveInvestments, err = u.investmentRepo.CountByStatus(ctx, entities.InvestmentActive); err != nil {
		return nil, err
	}
	if stats.CompletedInvestments, err = u.investmentRepo.CountByStatus(ctx, entities.InvestmentCompleted); err != nil {
		return nil, err
	}
	if stats.InsuranceFund, err = u.fundRepo.TotalAmount(ctx); err != nil {
		return nil, err
	}
	if stats.EmergencyAlerts, err = u.claimRepo.CountByStatus(ctx, entities.ClaimPending); err != nil {
		return nil, err
	}

	return stats, nil
}

// Analytics builds the trailing six month trend, the product type
// distribution and the latest claim alerts
func (u *AdminUsecase) Analytics(ctx context.Context) (*entities.AdminAnalytics, error) {
	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthly := entities.MonthlyTrend{
		Labels:      make([]string, 0, trendMonths),
		Investments: make([]int64, 0, trendMonths),
		Profits:     make([]float64, 0, trendMonths),
	}
	for i := trendMonths - 1; i >= 0; i-- {
		start := currentMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		count, profit, err := u.investmentRepo.CountAndProfitBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		monthly.Labels = append(monthly.Labels, start.Format("Jan"))
		monthly.Investments = append(monthly.Investments, count)
		monthly.Profits = append(monthly.Profits, math.Round(profit*100)/100)
	}

	byType, err := u.investmentRepo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	distribution := entities.TypeDistribution{
		BaidCash: byType[entities.InvestmentBaidCash],
		KtiCash:  byType[entities.InvestmentKtiCash],
	}

	claims, err := u.claimRepo.ListLatest(ctx, alertsLimit)
	if err != nil {
		return nil, err
	}
	alerts := make([]entities.ClaimAlert, 0, len(claims))
	for _, claim := range claims {
		alert := entities.ClaimAlert{
			Type:     claim.ClaimType,
			UserName: claim.FarmerName,
			UserRole: claim.FarmerRole,
			Date:     claim.CreatedAt,
			Status:   claim.Status,
		}
		if alert.UserName == "" {
			alert.UserName = alertFallback
		}
		if alert.UserRole == "" {
			alert.UserRole = alertRoleGuess
		}
		alerts = append(alerts, alert)
	}

	return &entities.AdminAnalytics{
		Monthly:      monthly,
		Distribution: distribution,
		Alerts:       alerts,
	}, nil
}

// ListUsers lists users with an optional name or email search
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// GetUser returns a single user for the admin detail view
func (u *AdminUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser changes a user's role or active flag. Admin accounts
// cannot be modified.
func (u *AdminUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}

	if user.Role == entities.UserRoleAdmin {
		return nil, domainerrors.Forbidden("admin accounts cannot be modified")
	}

	if input.Role != nil {
		if !entities.ValidUserRole(*input.Role) || *input.Role == entities.UserRoleAdmin {
			return nil, domainerrors.BadRequest("invalid role")
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft deletes a user. Admin accounts cannot be deleted.
func (u *AdminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return err
	}

	if user.Role == entities.UserRoleAdmin {
		return domainerrors.Forbidden("admin accounts cannot be deleted")
	}

	return u.userRepo.SoftDelete(ctx, id)
}

// NotifyUser emails a user on behalf of the platform
func (u *AdminUsecase) NotifyUser(ctx context.Context, id uuid.UUID, subject, message string) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return err
	}

	return u.mailer.SendNotificationEmail(user.Email, user.FullName, subject, message)
}

// GetSettings returns all platform settings
func (u *AdminUsecase) GetSettings(ctx context.Context) (map[string]interface{}, error) {
	return u.settingRepo.GetAll(ctx)
}

// SaveSetting upserts a platform setting
func (u *AdminUsecase) SaveSetting(ctx context.Context, input *entities.SaveSettingInput) error {
	return u.settingRepo.Save(ctx, input.Key, input.Value)
}
