// internal/service/game_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bingo-engine/internal/bingo"
	"bingo-engine/internal/catalog"
	"bingo-engine/internal/config"
	"bingo-engine/internal/domain"
	"bingo-engine/internal/metrics"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// GameService defines the round state machine exposed to players and schedulers.
type GameService interface {
	Bootstrap(ctx context.Context) (*domain.Round, error)
	StartRound(ctx context.Context) (*domain.Round, error)
	BuyCard(ctx context.Context, externalUserID int64, cardID int) (*domain.Purchase, error)
	CallNumber(ctx context.Context) (int, error)
	PauseRound(ctx context.Context) error
	ResumeRound(ctx context.Context) error
	ClaimWin(ctx context.Context, externalUserID int64, cardID int) (*domain.Settlement, error)
	FindAllWinners(ctx context.Context) ([]int64, error)
	CheckRoundTimeout(ctx context.Context) (*domain.Settlement, error)
	IsRoundExpired(ctx context.Context) (bool, error)
	CurrentRound(ctx context.Context) (*domain.RoundView, error)
	GetCalledNumbers(ctx context.Context, roundID int64) ([]int, error)
	ListAvailableCards(ctx context.Context) ([]domain.CardAvailability, error)
	GetCardGrid(cardID int) (domain.Grid, error)
	GetUserCards(ctx context.Context, externalUserID int64) ([]domain.UserCard, error)
	GetRoundResult(ctx context.Context, roundID int64) (*domain.Round, error)
}

// gameService implements the GameService interface.
type gameService struct {
	deps       Dependencies
	cfg        config.GameConfig
	catalog    *catalog.Catalog
	caller     *bingo.Caller
	ledger     *Ledger
	settlement *SettlementService
	logger     *zap.Logger
}

// NewGameService creates a new instance of GameService.
func NewGameService(
	deps Dependencies,
	cfg config.GameConfig,
	cards *catalog.Catalog,
	caller *bingo.Caller,
	ledger *Ledger,
	settlement *SettlementService,
) GameService {
	deps = deps.withDefaults()
	return &gameService{
		deps:       deps,
		cfg:        cfg,
		catalog:    cards,
		caller:     caller,
		ledger:     ledger,
		settlement: settlement,
		logger:     deps.Logger.Named("game"),
	}
}

// Bootstrap seeds settings and the card catalog and makes sure a round is active.
// It is safe to run on every start.
func (s *gameService) Bootstrap(ctx context.Context) (*domain.Round, error) {
	txController, txExecutor, err := s.deps.begin(ctx, "bootstrap")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	defaults := &domain.GameSettings{
		CardPrice:            s.cfg.CardPrice,
		HousePercent:         s.cfg.HousePercent,
		WithdrawalFeePercent: s.cfg.WithdrawalFeePercent,
	}
	if err := s.deps.Settings.EnsureSettings(ctx, txExecutor, defaults); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	seeded, err := s.deps.Cards.SeedCatalog(ctx, txExecutor, s.catalog.Cards())
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	round, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, txExecutor)
	if err != nil && !errors.Is(err, util.ErrRoundNotFound) {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	created := false
	if round == nil || round.Status != domain.RoundStatusActive {
		if round, err = openRound(ctx, s.deps, txExecutor, s.durationSeconds()); err != nil {
			return nil, fmt.Errorf("bootstrap: failed to open first round: %w", err)
		}
		created = true
	}

	if err := s.deps.commit(txController, "bootstrap"); err != nil {
		return nil, err
	}

	s.logger.Info("game bootstrapped",
		zap.Int64("cards_seeded", seeded),
		zap.Int64("round_id", round.ID),
		zap.Bool("round_created", created),
	)
	if created {
		s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventRoundStarted, round.ID, round))
	}
	metrics.SetPrizePool(round.PrizePool)
	return round, nil
}

// StartRound opens a round when none is active.
func (s *gameService) StartRound(ctx context.Context) (*domain.Round, error) {
	txController, txExecutor, err := s.deps.begin(ctx, "start round")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	current, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, txExecutor)
	if err != nil && !errors.Is(err, util.ErrRoundNotFound) {
		return nil, fmt.Errorf("start round: %w", err)
	}
	if current != nil && current.Status == domain.RoundStatusActive {
		return nil, util.ErrRoundActive
	}

	round, err := openRound(ctx, s.deps, txExecutor, s.durationSeconds())
	if err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	if err := s.deps.commit(txController, "start round"); err != nil {
		return nil, err
	}

	metrics.SetPrizePool(0)
	s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventRoundStarted, round.ID, round))
	return round, nil
}

// BuyCard debits the card price, grows the pool and assigns the card in one transaction.
func (s *gameService) BuyCard(ctx context.Context, externalUserID int64, cardID int) (purchase *domain.Purchase, err error) {
	started := time.Now()
	defer func() { metrics.RecordPurchase(err, started) }()

	if _, err := s.catalog.Get(cardID); err != nil {
		return nil, err
	}
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalUserID)
	if err != nil {
		return nil, err
	}

	txController, txExecutor, err := s.deps.begin(ctx, "buy card")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.lockActiveRound(ctx, txExecutor)
	if err != nil {
		return nil, err
	}
	if round.IsPaused && !s.cfg.AllowPurchaseWhilePaused {
		return nil, util.ErrRoundPaused
	}

	settings, err := s.deps.Settings.GetSettings(ctx, txExecutor)
	if err != nil {
		return nil, fmt.Errorf("buy card: %w", err)
	}
	held, err := s.deps.Cards.CountUserAssignments(ctx, txExecutor, round.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("buy card: %w", err)
	}
	if held >= s.cfg.MaxCardsPerUser {
		return nil, util.ErrLimitExceeded
	}

	balance, pool, err := s.ledger.TransferToPool(ctx, txExecutor, user.ID, settings.CardPrice, round.ID)
	if err != nil {
		return nil, fmt.Errorf("buy card: %w", err)
	}

	now := s.deps.Clock()
	assignment := &domain.CardAssignment{RoundID: round.ID, UserID: user.ID, CardID: cardID, PurchasedAt: now}
	if err := s.deps.Cards.AssignCard(ctx, txExecutor, assignment); err != nil {
		// Returning rolls back the debit and the pool increment with the failed insert.
		return nil, fmt.Errorf("buy card: %w", err)
	}
	record := &domain.PurchaseRecord{RoundID: round.ID, UserID: user.ID, CardID: cardID, PricePaid: settings.CardPrice, PurchasedAt: now}
	if err := s.deps.Cards.AppendPurchase(ctx, txExecutor, record); err != nil {
		return nil, fmt.Errorf("buy card: %w", err)
	}

	if err := s.deps.commit(txController, "buy card"); err != nil {
		return nil, err
	}

	purchase = &domain.Purchase{RoundID: round.ID, CardID: cardID, Price: settings.CardPrice, NewBalance: balance, PrizePool: pool}
	metrics.SetPrizePool(pool)
	s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventCardPurchased, round.ID, map[string]any{
		"card_id":    cardID,
		"prize_pool": pool,
	}))
	s.logger.Info("card purchased",
		zap.Int64("round_id", round.ID),
		zap.Int64("user_id", user.ID),
		zap.Int("card_id", cardID),
		zap.Int64("price", settings.CardPrice),
	)
	return purchase, nil
}

// CallNumber draws a number not yet called in the current round.
func (s *gameService) CallNumber(ctx context.Context) (number int, err error) {
	defer func() { metrics.RecordCall(err) }()

	txController, txExecutor, err := s.deps.begin(ctx, "call number")
	if err != nil {
		return 0, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.lockActiveRound(ctx, txExecutor)
	if err != nil {
		return 0, err
	}
	if round.IsPaused {
		return 0, util.ErrRoundPaused
	}

	called, err := s.deps.Called.ListCalledNumbers(ctx, txExecutor, round.ID)
	if err != nil {
		return 0, fmt.Errorf("call number: %w", err)
	}
	number, ok := s.caller.Draw(called)
	if !ok {
		return 0, util.ErrNumbersExhausted
	}
	entry := &domain.CalledNumber{RoundID: round.ID, Number: number, CalledAt: s.deps.Clock()}
	if err := s.deps.Called.InsertCalledNumber(ctx, txExecutor, entry); err != nil {
		return 0, fmt.Errorf("call number: %w", err)
	}

	if err := s.deps.commit(txController, "call number"); err != nil {
		return 0, err
	}

	s.deps.Cache.StoreCalledNumbers(ctx, round.ID, append(called, number))
	s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventNumberCalled, round.ID, map[string]int{
		"number": number,
		"count":  len(called) + 1,
	}))
	return number, nil
}

// PauseRound freezes number calling on the active round.
func (s *gameService) PauseRound(ctx context.Context) error {
	return s.setPaused(ctx, true)
}

// ResumeRound re-enables number calling.
func (s *gameService) ResumeRound(ctx context.Context) error {
	return s.setPaused(ctx, false)
}

func (s *gameService) setPaused(ctx context.Context, paused bool) error {
	op, eventType := "resume round", domain.EventRoundResumed
	if paused {
		op, eventType = "pause round", domain.EventRoundPaused
	}

	txController, txExecutor, err := s.deps.begin(ctx, op)
	if err != nil {
		return err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.lockActiveRound(ctx, txExecutor)
	if err != nil {
		return err
	}
	if err := s.deps.Rounds.SetPaused(ctx, txExecutor, round.ID, paused); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.deps.commit(txController, op); err != nil {
		return err
	}

	s.deps.Publisher.Publish(domain.NewRoundEvent(eventType, round.ID, nil))
	return nil
}

// ClaimWin checks ownership, then the win condition, then settles, all under the round lock.
func (s *gameService) ClaimWin(ctx context.Context, externalUserID int64, cardID int) (*domain.Settlement, error) {
	started := time.Now()
	grid, err := s.catalog.Get(cardID)
	if err != nil {
		return nil, err
	}
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalUserID)
	if err != nil {
		return nil, err
	}

	txController, txExecutor, err := s.deps.begin(ctx, "claim win")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.lockActiveRound(ctx, txExecutor)
	if err != nil {
		return nil, err
	}

	held, err := s.deps.Cards.ListUserAssignments(ctx, txExecutor, round.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("claim win: %w", err)
	}
	if !ownsCard(held, cardID) {
		return nil, util.ErrNotCardOwner
	}

	called, err := s.deps.Called.ListCalledNumbers(ctx, txExecutor, round.ID)
	if err != nil {
		return nil, fmt.Errorf("claim win: %w", err)
	}
	if !bingo.IsWinner(grid, bingo.NewCalledSet(called)) {
		return nil, util.ErrNotWinner
	}

	result, err := s.settlement.settle(ctx, txExecutor, round, &user.ID)
	if err != nil {
		return nil, fmt.Errorf("claim win: %w", err)
	}
	result.started = started

	if err := s.deps.commit(txController, "claim win"); err != nil {
		return nil, err
	}
	s.settlement.announce(ctx, result)
	return result.settlement, nil
}

func ownsCard(held []domain.CardAssignment, cardID int) bool {
	for _, a := range held {
		if a.CardID == cardID {
			return true
		}
	}
	return false
}

// FindAllWinners lists every user holding a winning card in the current round, in assignment order.
func (s *gameService) FindAllWinners(ctx context.Context) ([]int64, error) {
	round, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, err
	}
	assignments, err := s.deps.Cards.ListAssignments(ctx, s.deps.DBExecutor, round.ID)
	if err != nil {
		return nil, fmt.Errorf("find winners: %w", err)
	}
	called, err := s.deps.Called.ListCalledNumbers(ctx, s.deps.DBExecutor, round.ID)
	if err != nil {
		return nil, fmt.Errorf("find winners: %w", err)
	}

	set := bingo.NewCalledSet(called)
	seen := make(map[int64]struct{})
	winners := []int64{}
	for _, a := range assignments {
		if _, dup := seen[a.UserID]; dup {
			continue
		}
		grid, err := s.catalog.Get(a.CardID)
		if err != nil {
			return nil, fmt.Errorf("find winners: card %d: %w", a.CardID, err)
		}
		if bingo.IsWinner(grid, set) {
			seen[a.UserID] = struct{}{}
			winners = append(winners, a.UserID)
		}
	}
	return winners, nil
}

// CheckRoundTimeout refunds the current round once it has expired. It returns nil, nil when
// there is nothing to do, so redundant sweeps are harmless.
func (s *gameService) CheckRoundTimeout(ctx context.Context) (*domain.Settlement, error) {
	started := time.Now()
	// Unlocked read first; the decision is re-made under the lock.
	current, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
	if err != nil {
		if errors.Is(err, util.ErrRoundNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("check round timeout: %w", err)
	}
	if current.Status != domain.RoundStatusActive || !current.IsExpired(s.deps.Clock()) {
		return nil, nil
	}

	txController, txExecutor, err := s.deps.begin(ctx, "check round timeout")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, txExecutor)
	if err != nil {
		return nil, fmt.Errorf("check round timeout: %w", err)
	}
	if round.Status != domain.RoundStatusActive || !round.IsExpired(s.deps.Clock()) {
		return nil, nil
	}

	result, err := s.settlement.settle(ctx, txExecutor, round, nil)
	if err != nil {
		if errors.Is(err, util.ErrAlreadyProcessed) {
			return nil, nil
		}
		return nil, fmt.Errorf("check round timeout: %w", err)
	}
	result.started = started

	if err := s.deps.commit(txController, "check round timeout"); err != nil {
		return nil, err
	}
	s.settlement.announce(ctx, result)
	return result.settlement, nil
}

// IsRoundExpired reports whether the current round has run past its duration.
func (s *gameService) IsRoundExpired(ctx context.Context) (bool, error) {
	round, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
	if err != nil {
		return false, err
	}
	return round.IsExpired(s.deps.Clock()), nil
}

// CurrentRound returns the current round with its calls and the live card price.
func (s *gameService) CurrentRound(ctx context.Context) (*domain.RoundView, error) {
	round, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
	if err != nil {
		if errors.Is(err, util.ErrRoundNotFound) {
			return nil, util.ErrNoActiveRound
		}
		return nil, err
	}
	called, err := s.calledNumbers(ctx, round.ID)
	if err != nil {
		return nil, err
	}
	settings, err := s.deps.Settings.GetSettings(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, err
	}
	taken, err := s.deps.Cards.ListTakenCardIDs(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, err
	}
	return &domain.RoundView{
		Round:            round,
		CalledNumbers:    called,
		RemainingSeconds: int64(round.Remaining(s.deps.Clock()) / time.Second),
		CardPrice:        settings.CardPrice,
		CardsTaken:       len(taken),
	}, nil
}

// GetCalledNumbers returns a round's numbers in call order. roundID 0 means the current round.
func (s *gameService) GetCalledNumbers(ctx context.Context, roundID int64) ([]int, error) {
	if roundID == 0 {
		round, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
		if err != nil {
			return nil, err
		}
		roundID = round.ID
	} else if _, err := s.deps.Rounds.GetRoundByID(ctx, s.deps.DBExecutor, roundID); err != nil {
		return nil, err
	}
	return s.calledNumbers(ctx, roundID)
}

func (s *gameService) calledNumbers(ctx context.Context, roundID int64) ([]int, error) {
	if numbers, ok := s.deps.Cache.CalledNumbers(ctx, roundID); ok {
		return numbers, nil
	}
	numbers, err := s.deps.Called.ListCalledNumbers(ctx, s.deps.DBExecutor, roundID)
	if err != nil {
		return nil, err
	}
	s.deps.Cache.StoreCalledNumbers(ctx, roundID, numbers)
	return numbers, nil
}

// ListAvailableCards reports every catalog card and whether it is held in the current round.
func (s *gameService) ListAvailableCards(ctx context.Context) ([]domain.CardAvailability, error) {
	taken, err := s.deps.Cards.ListTakenCardIDs(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, err
	}
	takenSet := make(map[int]struct{}, len(taken))
	for _, id := range taken {
		takenSet[id] = struct{}{}
	}
	out := make([]domain.CardAvailability, s.catalog.Size())
	for i := range out {
		id := i + 1
		_, held := takenSet[id]
		out[i] = domain.CardAvailability{ID: id, Taken: held}
	}
	return out, nil
}

// GetCardGrid returns a catalog card.
func (s *gameService) GetCardGrid(cardID int) (domain.Grid, error) {
	return s.catalog.Get(cardID)
}

// GetUserCards lists the user's cards in the current round.
func (s *gameService) GetUserCards(ctx context.Context, externalUserID int64) ([]domain.UserCard, error) {
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalUserID)
	if err != nil {
		return nil, err
	}
	round, err := s.deps.Rounds.GetCurrentRound(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, err
	}
	held, err := s.deps.Cards.ListUserAssignments(ctx, s.deps.DBExecutor, round.ID, user.ID)
	if err != nil {
		return nil, err
	}
	cards := make([]domain.UserCard, 0, len(held))
	for _, a := range held {
		grid, err := s.catalog.Get(a.CardID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, domain.UserCard{CardID: a.CardID, Grid: grid.Rows()})
	}
	return cards, nil
}

// GetRoundResult returns a round, served from cache once it is settled.
func (s *gameService) GetRoundResult(ctx context.Context, roundID int64) (*domain.Round, error) {
	if round, ok := s.deps.Cache.RoundResult(ctx, roundID); ok {
		return round, nil
	}
	round, err := s.deps.Rounds.GetRoundByID(ctx, s.deps.DBExecutor, roundID)
	if err != nil {
		return nil, err
	}
	s.deps.Cache.StoreRoundResult(ctx, round)
	return round, nil
}

// lockActiveRound takes the current-round lock and requires the round to be active.
func (s *gameService) lockActiveRound(ctx context.Context, q repository.DBExecutor) (*domain.Round, error) {
	round, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, q)
	if err != nil {
		if errors.Is(err, util.ErrRoundNotFound) {
			return nil, util.ErrNoActiveRound
		}
		return nil, err
	}
	if round.Status != domain.RoundStatusActive {
		return nil, util.ErrNoActiveRound
	}
	return round, nil
}

func (s *gameService) durationSeconds() int64 {
	return int64(s.cfg.RoundDuration / time.Second)
}
