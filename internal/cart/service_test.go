package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slicelab/pizzeria-backend/internal/catalog"
	"github.com/slicelab/pizzeria-backend/pkg/db/models"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

// stubRepo keeps lines in memory keyed by menu position id.
type stubRepo struct {
	lines   map[int64]*models.CartLine
	findErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{lines: map[int64]*models.CartLine{}}
}

func (r *stubRepo) WithTx(tx *gorm.DB) Repository { return r }

func (r *stubRepo) FindBySessionAndPosition(_ context.Context, _ uuid.UUID, positionID int64) (*models.CartLine, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	line, ok := r.lines[positionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return line, nil
}

func (r *stubRepo) ListBySession(_ context.Context, _ uuid.UUID) ([]models.CartLine, error) {
	out := make([]models.CartLine, 0, len(r.lines))
	for _, line := range r.lines {
		out = append(out, *line)
	}
	return out, nil
}

func (r *stubRepo) Create(_ context.Context, line *models.CartLine) (*models.CartLine, error) {
	line.ID = uuid.New()
	r.lines[line.MenuPositionID] = line
	return line, nil
}

func (r *stubRepo) Update(_ context.Context, line *models.CartLine) (*models.CartLine, error) {
	r.lines[line.MenuPositionID] = line
	return line, nil
}

func (r *stubRepo) Delete(_ context.Context, _ uuid.UUID, positionID int64) error {
	delete(r.lines, positionID)
	return nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

type stubCatalog struct {
	snap *catalog.Snapshot
	err  error
}

func (s *stubCatalog) SnapshotForPosition(_ context.Context, _ int64) (*catalog.Snapshot, error) {
	return s.snap, s.err
}

func testSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		CategoryID:      1,
		MenuPositionIDs: []int64{1},
		MenuPositions: map[int64]catalog.MenuPosition{
			1: {
				ID:               1,
				MenuPositionName: "Pepperoni",
				CategoryID:       1,
				CategoryMaps: []catalog.CategoryMap{
					{ID: 10, CategoryID: 1, ProductIDs: []int64{1}, DefaultProductID: 1},
				},
			},
		},
		ProductIDs: []int64{1},
		Products: map[int64]catalog.Product{
			1: {
				ID:          1,
				ProductName: "Pepperoni",
				Variations: []catalog.Variation{
					{ID: 1, Size: "Small", PriceCents: 420},
					{ID: 2, Size: "Medium", PriceCents: 630},
				},
				ToppingIDs: []int64{7},
			},
		},
		ToppingIDs: []int64{7},
		Toppings: map[int64]catalog.Topping{
			7: {ID: 7, ToppingName: "Jalapeno", PriceCents: 70},
		},
	}
}

func slotsWithVariation(variationID int64, toppings ...int64) types.OrderSlots {
	return types.OrderSlots{{
		SlotID:          10,
		ChosenProductID: 1,
		PerProduct: map[int64]*types.ProductConfig{
			1: {VariationID: variationID, IncludedToppingIDs: toppings},
		},
	}}
}

func newTestService(t *testing.T, repo Repository, loader snapshotLoader) Service {
	t.Helper()

	svc, err := NewService(repo, stubTx{}, loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestAddOrUpsertCreatesPricedLine(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCatalog{snap: testSnapshot()})
	session := uuid.New()

	line, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{
		MenuPositionID: 1,
		Slots:          slotsWithVariation(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.TotalPriceCents != 630 {
		t.Fatalf("expected frozen price 630, got %d", line.TotalPriceCents)
	}
	if line.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", line.Quantity)
	}
	if line.PositionName != "Pepperoni" {
		t.Fatalf("unexpected position name %q", line.PositionName)
	}
}

func TestAddOrUpsertReplacesExistingLine(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCatalog{snap: testSnapshot()})
	session := uuid.New()

	first, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{
		MenuPositionID: 1,
		Slots:          slotsWithVariation(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.SetQuantity(context.Background(), session, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{
		MenuPositionID: 1,
		Slots:          slotsWithVariation(1, 7),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(repo.lines))
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert to keep the same line")
	}
	if second.TotalPriceCents != 490 {
		t.Fatalf("expected reprice to 490, got %d", second.TotalPriceCents)
	}
	if second.Quantity != 1 {
		t.Fatalf("expected quantity reset to 1, got %d", second.Quantity)
	}
	cfg, ok := second.Slots[0].Config()
	if !ok || cfg.VariationID != 1 {
		t.Fatalf("expected stored config to reflect the last submit, got %+v", cfg)
	}
}

func TestAddOrUpsertRejectsSlotShapeMismatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo(), &stubCatalog{snap: testSnapshot()})

	slots := slotsWithVariation(2)
	slots[0].SlotID = 999

	_, err := svc.AddOrUpsert(context.Background(), uuid.New(), UpsertLineInput{MenuPositionID: 1, Slots: slots})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddOrUpsertRequiresSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo(), &stubCatalog{snap: testSnapshot()})

	_, err := svc.AddOrUpsert(context.Background(), uuid.Nil, UpsertLineInput{MenuPositionID: 1, Slots: slotsWithVariation(2)})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddOrUpsertPropagatesCatalogError(t *testing.T) {
	t.Parallel()

	loaderErr := pkgerrors.New(pkgerrors.CodeNotFound, "menu position not found")
	svc := newTestService(t, newStubRepo(), &stubCatalog{err: loaderErr})

	_, err := svc.AddOrUpsert(context.Background(), uuid.New(), UpsertLineInput{MenuPositionID: 42, Slots: slotsWithVariation(2)})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCatalog{snap: testSnapshot()})
	session := uuid.New()

	if _, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{MenuPositionID: 1, Slots: slotsWithVariation(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, err := svc.SetQuantity(context.Background(), session, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != nil {
		t.Fatalf("expected no line back after removal, got %+v", line)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("expected line removed, got %d lines", len(repo.lines))
	}
}

func TestSetQuantityNegativeRemovesLine(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCatalog{snap: testSnapshot()})
	session := uuid.New()

	if _, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{MenuPositionID: 1, Slots: slotsWithVariation(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.SetQuantity(context.Background(), session, 1, -3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("expected line removed, got %d lines", len(repo.lines))
	}
}

func TestSetQuantityOnAbsentLine(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo(), &stubCatalog{snap: testSnapshot()})

	_, err := svc.SetQuantity(context.Background(), uuid.New(), 1, 2)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSetQuantityKeepsFrozenPrice(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	loader := &stubCatalog{snap: testSnapshot()}
	svc := newTestService(t, repo, loader)
	session := uuid.New()

	if _, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{MenuPositionID: 1, Slots: slotsWithVariation(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A later catalog change must not reprice the committed line.
	repriced := testSnapshot()
	product := repriced.Products[1]
	product.Variations[1].PriceCents = 9000
	repriced.Products[1] = product
	loader.snap = repriced

	line, err := svc.SetQuantity(context.Background(), session, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.TotalPriceCents != 630 {
		t.Fatalf("expected frozen price 630, got %d", line.TotalPriceCents)
	}
	if line.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", line.Quantity)
	}
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo(), &stubCatalog{snap: testSnapshot()})

	if err := svc.Remove(context.Background(), uuid.New(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCartAggregates(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCatalog{snap: testSnapshot()})
	session := uuid.New()

	if _, err := svc.AddOrUpsert(context.Background(), session, UpsertLineInput{MenuPositionID: 1, Slots: slotsWithVariation(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetQuantity(context.Background(), session, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.GetCart(context.Background(), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(view.Lines))
	}
	if view.TotalCount != 3 {
		t.Fatalf("expected total count 3, got %d", view.TotalCount)
	}
	if view.TotalCents != 1890 {
		t.Fatalf("expected total 1890, got %d", view.TotalCents)
	}
}
