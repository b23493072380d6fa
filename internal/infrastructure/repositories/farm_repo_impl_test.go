package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"halachick.backend/internal/domain/entities"
	domainerrors "halachick.backend/internal/domain/errors"
)

func seedFarmer(t *testing.T, db *UserRepository, name, email string) *entities.User {
	t.Helper()
	u := &entities.User{
		FullName:     name,
		Email:        email,
		Role:         entities.UserRoleFarmer,
		PasswordHash: "h",
		IsActive:     true,
	}
	require.NoError(t, db.Create(context.Background(), u))
	return u
}

func TestFarmRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createFarmTable(t, db)
	users := NewUserRepository(db)
	repo := NewFarmRepository(db)
	ctx := context.Background()

	farmer := seedFarmer(t, users, "Cheikh Fall", "cheikh@example.com")

	f := &entities.Farm{
		FarmerID:    farmer.ID,
		Name:        "Ferme Keur Massar",
		Description: "Layer farm",
		Location: entities.FarmLocation{
			City:     "Dakar",
			Province: "Dakar",
			Village:  "Keur Massar",
			Latitude: null.Float64From(14.78),
		},
		Flock: entities.FlockInformation{
			PoultryTypes:        []entities.PoultryType{entities.PoultryLayingHens},
			CurrentPoultryCount: 500,
			AvailableSections:   3,
			VaccinationStatus:   entities.VaccinationUpToDate,
		},
		Documents: entities.FarmDocuments{
			PersonalPhotos: []string{"photo1.jpg"},
			IDCardImage:    "id.jpg",
		},
		VerificationStatus: entities.FarmVerificationPending,
	}

	require.NoError(t, repo.Create(ctx, f))
	require.NotEqual(t, uuid.Nil, f.ID)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, "Ferme Keur Massar", got.Name)
	require.Equal(t, "Keur Massar", got.Location.Village)
	require.Equal(t, 500, got.Flock.CurrentPoultryCount)
	require.Equal(t, "Cheikh Fall", got.FarmerName)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Cheikh Fall", all[0].FarmerName)

	mine, err := repo.ListByFarmer(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	none, err := repo.ListByFarmer(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestFarmRepository_UpdateVerification(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createFarmTable(t, db)
	users := NewUserRepository(db)
	repo := NewFarmRepository(db)
	ctx := context.Background()

	farmer := seedFarmer(t, users, "Fatou Sow", "fatou@example.com")
	admin := uuid.New()

	f := &entities.Farm{
		FarmerID:           farmer.ID,
		Name:               "Ferme Thies",
		VerificationStatus: entities.FarmVerificationPending,
	}
	require.NoError(t, repo.Create(ctx, f))

	require.NoError(t, repo.UpdateVerification(ctx, f.ID, entities.FarmVerificationVerified, admin, "documents complete"))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, entities.FarmVerificationVerified, got.VerificationStatus)
	require.NotNil(t, got.VerifiedBy)
	require.Equal(t, admin, *got.VerifiedBy)
	require.True(t, got.VerificationDate.Valid)
	require.Equal(t, "documents complete", got.VerificationNotes.String)

	err = repo.UpdateVerification(ctx, uuid.New(), entities.FarmVerificationRejected, admin, "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFarmRepository_NotFoundAndDBErrors(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createFarmTable(t, db)
	repo := NewFarmRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	broken := newTestDB(t)
	// intentionally skip table creation
	brokenRepo := NewFarmRepository(broken)
	_, err = brokenRepo.List(ctx)
	require.Error(t, err)
}
