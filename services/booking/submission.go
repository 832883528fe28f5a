package booking

import (
	"context"
	"time"

	"freshfold/models"
	"freshfold/services/saas"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit finalizes the wizard: it validates the whole form, resolves the
// customer if needed, fans out one order-creation call per selected locker,
// and on full success mirrors the orders and tears down the session.
//
// There is deliberately no rollback: a locker whose order succeeded before a
// later failure stays created on the platform, matching the upstream system
// of record's behavior.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}
	if session.Step != session.Flow.StepCount() {
		return nil, ErrNotFinalStep
	}

	if problems := SubmissionProblems(session, s.now()); len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	// The busy flag is the only mutual exclusion across the fan-out.
	session.Busy = true
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	result, err := s.submitLocked(ctx, session)
	if err != nil {
		session.Busy = false
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			s.Logger.Error("failed to clear busy flag after submission failure", zap.Error(saveErr))
		}
		s.notify(ctx, session.SessionID, models.NoticeError,
			"We couldn't complete your booking. Please try again.")
		return nil, err
	}

	s.notify(ctx, session.SessionID, models.NoticeSuccess, "Your booking is confirmed!")
	if err := s.Store.Delete(ctx, session.SessionID); err != nil {
		s.Logger.Warn("failed to delete submitted session", zap.Error(err))
	}
	return result, nil
}

func (s *DefaultWizardService) submitLocked(ctx context.Context, session *models.WizardSession) (*models.SubmissionResult, error) {
	if session.CustomerID == "" {
		if err := s.resolve(ctx, session); err != nil {
			return nil, err
		}
	}

	form := &session.Form
	total := Quote(form.Services)
	share := PerLockerShare(total, len(form.Lockers))
	lines := BuildOrderLines(form.Services)

	items := make([]saas.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, saas.OrderItem{Name: line.Name, Quantity: line.Quantity, UnitPrice: line.UnitPrice})
	}

	// One order per locker, issued as a batch and awaited jointly. Ordering
	// among the calls is irrelevant; each order is independent.
	type outcome struct {
		locker string
		order  *saas.RemoteOrder
		err    error
	}
	results := make(chan outcome, len(form.Lockers))
	for _, locker := range form.Lockers {
		go func(locker string) {
			order, err := s.Platform.CreateOrder(ctx, saas.CreateOrderRequest{
				CustomerID:     session.CustomerID,
				Items:          items,
				Total:          share,
				Locker:         locker,
				CollectionDate: form.CollectionDate,
				Notes:          form.Notes,
			})
			results <- outcome{locker: locker, order: order, err: err}
		}(locker)
	}

	created := make(map[string]*saas.RemoteOrder, len(form.Lockers))
	var firstErr error
	failed := 0
	for range form.Lockers {
		res := <-results
		if res.err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			s.Logger.Error("order creation failed",
				zap.String("sessionID", session.SessionID),
				zap.String("locker", res.locker),
				zap.Error(res.err))
			continue
		}
		created[res.locker] = res.order
	}

	if failed > 0 {
		return nil, &OrderCreationError{Attempted: len(form.Lockers), Failed: failed, Err: firstErr}
	}

	orderIDs := make([]string, 0, len(form.Lockers))
	for _, locker := range form.Lockers {
		order := created[locker]
		orderIDs = append(orderIDs, order.ID)
		mirror := models.Order{
			ID:              uuid.New().String(),
			CustomerID:      session.CustomerID,
			ExternalOrderID: order.ID,
			Locker:          locker,
			Items:           lines,
			Services:        form.Services,
			Total:           share,
			CollectionDate:  form.CollectionDate,
			Notes:           form.Notes,
			CreatedAt:       time.Now(),
		}
		if err := s.Mirror.EnqueueOrder(mirror); err != nil {
			s.Logger.Warn("failed to enqueue order mirror",
				zap.String("locker", locker), zap.Error(err))
		}
	}

	s.Logger.Info("booking submitted",
		zap.String("sessionID", session.SessionID),
		zap.String("customerID", session.CustomerID),
		zap.Int("orders", len(orderIDs)),
		zap.Float64("total", total))

	return &models.SubmissionResult{
		SessionID:  session.SessionID,
		CustomerID: session.CustomerID,
		OrderIDs:   orderIDs,
		Total:      total,
		Form:       session.Form,
	}, nil
}

func (s *DefaultWizardService) notify(ctx context.Context, sessionID string, level models.NoticeLevel, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Push(ctx, sessionID, level, message); err != nil {
		s.Logger.Warn("failed to push notice", zap.Error(err))
	}
}
