package commands

import (
	"context"
	"log/slog"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/payment"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/pkg/hashid"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "storefront-payments/internal/usecase/commands"

var (
	ErrSnapshotMissing = errs.New("order snapshot missing from provider metadata")
	ErrRepository      = errs.New("order repository failure")
)

type ReconcileAction string

const (
	ActionCreated ReconcileAction = "created"
	ActionUpdated ReconcileAction = "updated"
	ActionNoop    ReconcileAction = "noop"
	ActionIgnored ReconcileAction = "ignored"
)

type ReconcileInput struct {
	Token    string
	Outcome  payment.Outcome
	Receipt  order.Receipt
	Metadata string
}

type ReconcileResult struct {
	OrderID      uuid.UUID
	Transitioned bool
	Action       ReconcileAction
}

type Reconciler interface {
	Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error)
}

type reconcilerImpl struct {
	repo     OrderRepository
	notifier ConfirmationNotifier
	hasher   *hashid.Hasher
	clock    clock.Clock
	currency string
	tracer   trace.Tracer
	counter  metric.Int64Counter
}

func NewReconciler(
	repo OrderRepository,
	notifier ConfirmationNotifier,
	hasher *hashid.Hasher,
	clk clock.Clock,
	cfg config.Config,
) (Reconciler, error) {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"payment_reconciliations_total",
		metric.WithDescription("Provider callbacks reconciled against orders, by provider, outcome and action"),
	)
	if err != nil {
		return nil, err
	}

	return &reconcilerImpl{
		repo:     repo,
		notifier: notifier,
		hasher:   hasher,
		clock:    clk,
		currency: cfg.Checkout.Currency,
		tracer:   otel.Tracer(instrumentationName),
		counter:  counter,
	}, nil
}

// Reconcile applies a verified outcome to the order behind the token.
// Replaying the same outcome any number of times leaves the order as the first application did.
func (r *reconcilerImpl) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	ctx, span := r.tracer.Start(ctx, "Reconcile", trace.WithAttributes(
		attribute.String("payment.provider", in.Receipt.Provider.String()),
		attribute.String("payment.correlation_token", in.Token),
		attribute.String("payment.outcome", string(in.Outcome.Kind)),
	))
	defer span.End()

	res, err := r.reconcile(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconciliation failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", res.OrderID.String()),
		attribute.String("reconcile.action", string(res.Action)),
	)
	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", in.Receipt.Provider.String()),
		attribute.String("outcome", string(in.Outcome.Kind)),
		attribute.String("action", string(res.Action)),
	))
	return res, nil
}

func (r *reconcilerImpl) reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	existing, err := r.repo.FindByCorrelationToken(ctx, in.Token)
	if err == nil {
		return r.apply(ctx, existing, in)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrRepository)
	}

	if !in.Outcome.IsSuccess() {
		slog.InfoContext(ctx, "ignoring callback for unknown order",
			"provider", in.Receipt.Provider.String(),
			"correlation_token", in.Token,
			"outcome", in.Outcome.String(),
		)
		return &ReconcileResult{Action: ActionIgnored}, nil
	}

	return r.createFromMetadata(ctx, in)
}

func (r *reconcilerImpl) apply(ctx context.Context, o *order.Order, in ReconcileInput) (*ReconcileResult, error) {
	transition := o.ApplyOutcome(in.Outcome, in.Receipt, r.clock.Now())
	if transition == order.TransitionNone {
		return &ReconcileResult{OrderID: o.ID(), Action: ActionNoop}, nil
	}

	if err := r.repo.Update(ctx, o); err != nil {
		if !infra.IsKind(err, infra.KindStaleWrite) {
			return nil, errs.Mark(err, ErrRepository)
		}
		return r.staleWrite(ctx, in)
	}

	if transition == order.TransitionCompleted {
		r.notifier.NotifyPurchase(ctx, o.ID())
	}
	return &ReconcileResult{OrderID: o.ID(), Transitioned: true, Action: ActionUpdated}, nil
}

// staleWrite handles an update refused because another delivery completed the payment
// after this one read the order. The stored order wins and nobody is notified twice.
func (r *reconcilerImpl) staleWrite(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	current, err := r.repo.FindByCorrelationToken(ctx, in.Token)
	if err != nil {
		return nil, errs.Mark(err, ErrRepository)
	}
	slog.InfoContext(ctx, "payment completed concurrently, keeping stored order",
		"provider", in.Receipt.Provider.String(),
		"correlation_token", in.Token,
		"outcome", in.Outcome.String(),
		"payment_status", string(current.Payment().Status),
	)
	return &ReconcileResult{OrderID: current.ID(), Action: ActionNoop}, nil
}

// createFromMetadata rebuilds a paid order whose pending record never reached storage.
func (r *reconcilerImpl) createFromMetadata(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	meta, err := order.DecodeMetadata(in.Metadata)
	if err != nil {
		return nil, errs.Mark(err, ErrSnapshotMissing)
	}

	publicHash := r.hasher.Derive(meta.Customer.CommunityUsername, in.Token)
	o, err := order.NewCompletedOrder(in.Token, publicHash, meta, in.Receipt, r.currency, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrSnapshotMissing)
	}

	id, err := r.repo.Create(ctx, o)
	if err != nil {
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrRepository)
		}
		// a concurrent delivery created it first
		existing, ferr := r.repo.FindByCorrelationToken(ctx, in.Token)
		if ferr != nil {
			return nil, errs.Mark(ferr, ErrRepository)
		}
		return r.apply(ctx, existing, in)
	}

	r.notifier.NotifyPurchase(ctx, id)
	return &ReconcileResult{OrderID: id, Transitioned: true, Action: ActionCreated}, nil
}
