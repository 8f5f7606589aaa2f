package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/flow"
	"takeout-api/internal/domain/order"
	"takeout-api/internal/domain/user"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"
)

var (
	ErrFlowIncomplete          = errs.New("order flow not at the confirm step")
	ErrDuplicateOrder          = errs.New("duplicate order request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrOutOfStock              = errs.New("not enough stock remaining")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrOrderNotFoundWrite      = errs.New("order not found")
	ErrOrderNotOwned           = errs.New("order not owned by user")
	ErrOrderNotCancelable      = errs.New("order can no longer be canceled")
	ErrOrderNotCompletable     = errs.New("order cannot be completed")
)

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, ord *order.Order) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error
}

type StockRepository interface {
	// Decrement fails with KindConflict when fewer than qty remain.
	Decrement(ctx context.Context, tx db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error
	Increment(ctx context.Context, tx db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error
	SetLevel(ctx context.Context, itemID uuid.UUID, date wallclock.Date, remaining int) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key as processing, reporting false when it already exists.
	TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, userID uuid.UUID, responseHash string, resultOrderID uuid.UUID) error
}

// TxBeginner opens write transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, sessionID string, userID uuid.UUID, idempotencyKey uuid.UUID) (*PlaceOrderResult, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	// CompleteOrder records the hand-over. Reached only through admin routes.
	CompleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type orderUseCaseImpl struct {
	orderRepo       OrderRepository
	stockRepo       StockRepository
	idempotencyRepo IdempotencyRepository
	cartStore       CartStore
	orderFactory    *order.Factory
	orderQueries    queries.OrderQueries
	availQueries    queries.AvailabilityQueries
	db              TxBeginner
	clock           clock.Clock
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	stockRepo StockRepository,
	idempotencyRepo IdempotencyRepository,
	cartStore CartStore,
	orderFactory *order.Factory,
	orderQueries queries.OrderQueries,
	availQueries queries.AvailabilityQueries,
	db TxBeginner,
	clock clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		orderRepo:       orderRepo,
		stockRepo:       stockRepo,
		idempotencyRepo: idempotencyRepo,
		cartStore:       cartStore,
		orderFactory:    orderFactory,
		orderQueries:    orderQueries,
		availQueries:    availQueries,
		db:              db,
		clock:           clock,
	}
}

func (r *orderUseCaseImpl) PlaceOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	sessionID string,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*PlaceOrderResult, error) {
	requestHash := r.calculateRequestHash(req, sessionID)
	expiresAt := r.clock.Now().Add(24 * time.Hour)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &PlaceOrderResult{
			Order:      existingResult,
			IsReplayed: true,
		}, nil
	}

	orderView, err := r.placeNewOrder(ctx, req, sessionID, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{
		Order:      orderView,
		IsReplayed: false,
	}, nil
}

func (r *orderUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.OrderView, error) {
	inserted, err := r.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /orders", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		// First time we see this key, the caller proceeds with a new order.
		return nil, nil
	}

	existing, err := r.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultOrderID != nil {
			// Use system-level access for idempotency replay
			return r.orderQueries.GetByIDSystem(ctx, *existing.ResultOrderID)
		}
		return nil, errs.New("completed request missing result order ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateOrder
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *orderUseCaseImpl) placeNewOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	sessionID string,
	userID, idempotencyKey uuid.UUID,
) (*queries.OrderView, error) {
	wizard, err := r.loadConfirmedWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	contact, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	window, err := r.availQueries.ResolveWindow(ctx, wizard.Pickup)
	if err != nil {
		return nil, err
	}

	orderEntity, err := r.orderFactory.CreateOrder([]availability.Window{window}, wizard.Pickup, &wizard.Cart, contact)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	orderEntity.BindUser(userID)

	orderView, err := r.executeOrderTransaction(ctx, orderEntity, idempotencyKey, userID)
	if err != nil {
		return nil, err
	}

	if clearErr := r.cartStore.Delete(ctx, sessionID); clearErr != nil {
		slog.Warn("failed to clear cart session after order placement", "session_id", sessionID, "error", clearErr.Error())
	}
	return orderView, nil
}

func (r *orderUseCaseImpl) loadConfirmedWizard(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	wizard, err := r.cartStore.Find(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlowIncomplete
		}
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	if wizard.Step != flow.StepConfirm {
		return nil, ErrFlowIncomplete
	}
	return wizard, nil
}

func (r *orderUseCaseImpl) executeOrderTransaction(
	ctx context.Context,
	orderEntity *order.Order,
	idempotencyKey, userID uuid.UUID,
) (*queries.OrderView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	for _, line := range orderEntity.Lines() {
		if line.Kind() != availability.KindStock {
			continue
		}
		if decErr := r.stockRepo.Decrement(ctx, tx, line.ItemID(), orderEntity.PickupDate(), line.Quantity()); decErr != nil {
			if infra.IsKind(decErr, infra.KindConflict) {
				return nil, ErrOutOfStock
			}
			return nil, errs.Mark(decErr, ErrDatabaseOperationFailed)
		}
	}

	orderID, err := r.orderRepo.Create(ctx, tx, orderEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	responseHash := r.calculateIDHash(orderID)
	err = r.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, userID, responseHash, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete order view from the read store
	orderView, err := r.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderView, nil
}

func (r *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderEntity, err := r.orderRepo.FindByID(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFoundWrite
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if orderEntity.UserID() != actorID && actorRole != user.RoleAdmin {
		return ErrOrderNotOwned
	}

	if cancelErr := orderEntity.Cancel(); cancelErr != nil {
		return errs.Mark(cancelErr, ErrOrderNotCancelable)
	}

	// Return reserved stock for pre-made items.
	for _, line := range orderEntity.Lines() {
		if line.Kind() != availability.KindStock {
			continue
		}
		if incErr := r.stockRepo.Increment(ctx, tx, line.ItemID(), orderEntity.PickupDate(), line.Quantity()); incErr != nil {
			return errs.Mark(incErr, ErrDatabaseOperationFailed)
		}
	}

	if err = r.orderRepo.UpdateStatus(ctx, tx, orderID, order.StatusCanceled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *orderUseCaseImpl) CompleteOrder(ctx context.Context, orderID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderEntity, err := r.orderRepo.FindByID(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFoundWrite
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if completeErr := orderEntity.Complete(); completeErr != nil {
		return errs.Mark(completeErr, ErrOrderNotCompletable)
	}

	if err = r.orderRepo.UpdateStatus(ctx, tx, orderID, order.StatusCompleted); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *orderUseCaseImpl) calculateRequestHash(req reqdto.PlaceOrderRequest, sessionID string) string {
	data, _ := json.Marshal(struct {
		reqdto.PlaceOrderRequest
		SessionID string `json:"session_id"`
	}{req, sessionID})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *orderUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
