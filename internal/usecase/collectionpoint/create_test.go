package collectionpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

func TestCreateCollectionPoint_Success(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateCollectionPoint(f.repo, f.audit)
	ctx := context.Background()

	f.repo.EXPECT().EstablishmentExists(gomock.Any(), uint(2)).Return(true, nil)
	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.CollectionPoint) error {
			p.ID = 10
			return nil
		})

	p, err := uc.Execute(ctx, CreateCollectionPointInput{
		UserID:          1,
		Name:            "  Ponto Centro  ",
		EstablishmentID: id(2),
		Latitude:        float(-23.55),
		Longitude:       float(-46.63),
		OperatingHours:  weekdayHours("08:00", "18:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(10), p.ID)
	assert.Equal(t, "Ponto Centro", p.Name)
	assert.Equal(t, timezone.DefaultTimezone, p.Timezone)
	assert.True(t, p.Active)
	assert.Equal(t, []string{"collection_point_created"}, f.flushAudit())
}

func TestCreateCollectionPoint_ValidationErrors(t *testing.T) {
	overlapping := withSlot(t, *weekdayHours("08:00", "12:00"), operatinghours.Monday, "11:00", "14:00")

	tests := []struct {
		name    string
		in      CreateCollectionPointInput
		wantErr error
	}{
		{
			name:    "blank name",
			in:      CreateCollectionPointInput{Name: "   "},
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "half coordinates",
			in:      CreateCollectionPointInput{Name: "P", Latitude: float(-23.5)},
			wantErr: domain.ErrInvalidCoordinates,
		},
		{
			name:    "unknown timezone",
			in:      CreateCollectionPointInput{Name: "P", Timezone: "Nowhere/City"},
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "overlapping hours",
			in:      CreateCollectionPointInput{Name: "P", OperatingHours: &overlapping},
			wantErr: operatinghours.ErrOverlappingSlots,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			uc := NewCreateCollectionPoint(f.repo, f.audit)

			_, err := uc.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.flushAudit())
		})
	}
}

func TestCreateCollectionPoint_UnknownReferences(t *testing.T) {
	t.Run("establishment", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().EstablishmentExists(gomock.Any(), uint(9)).Return(false, nil)

		_, err := NewCreateCollectionPoint(f.repo, f.audit).Execute(context.Background(),
			CreateCollectionPointInput{Name: "P", EstablishmentID: id(9)})
		assert.ErrorIs(t, err, domain.ErrEstablishmentNotFound)
	})

	t.Run("carrier", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().CarrierExists(gomock.Any(), uint(4)).Return(false, nil)

		_, err := NewCreateCollectionPoint(f.repo, f.audit).Execute(context.Background(),
			CreateCollectionPointInput{Name: "P", CarrierID: id(4)})
		assert.ErrorIs(t, err, domain.ErrCarrierNotFound)
	})
}

func TestCreateCollectionPoint_RepositoryError(t *testing.T) {
	f := newFixture(t)
	dbErr := errors.New("database error")
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := NewCreateCollectionPoint(f.repo, f.audit).Execute(context.Background(),
		CreateCollectionPointInput{Name: "P"})
	assert.Equal(t, dbErr, err)
	assert.Empty(t, f.flushAudit())
}
