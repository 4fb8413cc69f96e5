package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
	"github.com/lichcore/dominion/internal/metrics"
	"github.com/lichcore/dominion/internal/repository"
)

// Config carries the channel bindings and rendering flags for both boards.
type Config struct {
	AssignmentChannelID string
	ArmorChannelID      string
	// IncludePlate renders the Plate column on the armor board.
	IncludePlate bool
	// Offline suppresses all message traffic; refreshes become no-ops.
	Offline bool
}

// Service rebuilds board content from persisted state and reconciles it
// onto the configured channels.
type Service struct {
	assignments repository.Assignment
	loadouts    repository.Loadout
	reconciler  *Reconciler
	roster      Roster
	cfg         Config
}

// NewService creates a new board Service
func NewService(assignments repository.Assignment, loadouts repository.Loadout, reconciler *Reconciler, roster Roster, cfg Config) *Service {
	return &Service{
		assignments: assignments,
		loadouts:    loadouts,
		reconciler:  reconciler,
		roster:      roster,
		cfg:         cfg,
	}
}

// RefreshAssignmentBoard rebuilds the profession board from the current
// assignment and tool state and syncs it onto the assignment channel.
func (s *Service) RefreshAssignmentBoard(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if s.cfg.Offline {
		log.Info(LogMsgOfflineSkip, "board", BoardAssignment)
		return nil
	}

	start := time.Now()
	metrics.BoardRefreshes.WithLabelValues(BoardAssignment).Inc()

	var (
		wg          sync.WaitGroup
		assignments domain.AssignmentSnapshot
		tools       domain.ToolSnapshot
		assignErr   error
		toolErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		assignments, assignErr = s.assignments.FetchAll(ctx)
	}()
	go func() {
		defer wg.Done()
		tools, toolErr = s.loadouts.FetchAllTools(ctx)
	}()
	wg.Wait()

	if assignErr != nil {
		return s.fail(ctx, BoardAssignment, fmt.Errorf("failed to fetch assignments: %w", assignErr))
	}
	if toolErr != nil {
		return s.fail(ctx, BoardAssignment, fmt.Errorf("failed to fetch tools: %w", toolErr))
	}

	sections := BuildSections(assignments, tools, s.roster)
	pages := PackSections(sections, TextTitles{
		Primary:      AssignmentTitle,
		Continuation: AssignmentContTitle,
	}, MaxPageChars, NoAssignmentsLine)

	keys := Keys{ListKey: AssignmentListKey, LegacyKey: AssignmentLegacyKey}
	if err := s.reconciler.Sync(ctx, s.cfg.AssignmentChannelID, keys, pages, AssignmentTitle); err != nil {
		return s.fail(ctx, BoardAssignment, err)
	}

	metrics.BoardPages.WithLabelValues(BoardAssignment).Set(float64(len(pages)))
	metrics.BoardRefreshDuration.WithLabelValues(BoardAssignment).Observe(time.Since(start).Seconds())
	log.Info(LogMsgBoardRefreshed, "board", BoardAssignment, "pages", len(pages))
	return nil
}

// RefreshArmorBoard rebuilds the armor board from the current armor and
// accessory state and syncs it onto the armor channel.
func (s *Service) RefreshArmorBoard(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if s.cfg.Offline {
		log.Info(LogMsgOfflineSkip, "board", BoardArmor)
		return nil
	}

	start := time.Now()
	metrics.BoardRefreshes.WithLabelValues(BoardArmor).Inc()

	var (
		wg       sync.WaitGroup
		armor    domain.ArmorSnapshot
		armorErr error

		mu          sync.Mutex
		accessories = make(map[string]domain.AccessorySnapshot, len(domain.AccessoryKinds))
		accErr      error
	)
	wg.Add(1 + len(domain.AccessoryKinds))
	go func() {
		defer wg.Done()
		armor, armorErr = s.loadouts.FetchAllArmor(ctx)
	}()
	for _, kind := range domain.AccessoryKinds {
		go func(kind string) {
			defer wg.Done()
			snapshot, err := s.loadouts.FetchAccessories(ctx, kind)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				accErr = fmt.Errorf("failed to fetch %s accessories: %w", kind, err)
				return
			}
			accessories[kind] = snapshot
		}(kind)
	}
	wg.Wait()

	if armorErr != nil {
		return s.fail(ctx, BoardArmor, fmt.Errorf("failed to fetch armor: %w", armorErr))
	}
	if accErr != nil {
		return s.fail(ctx, BoardArmor, accErr)
	}

	opts := FieldGroupOptions{IncludePlate: s.cfg.IncludePlate}
	groups := BuildFieldGroups(armor, accessories, opts)
	pages := PackFieldGroups(groups, ArmorTitle, ArmorSubtitle, MaxFieldsPerPage, opts.FieldsPerGroup(), NoArmorBody)

	keys := Keys{ListKey: ArmorListKey, LegacyKey: ArmorLegacyKey}
	if err := s.reconciler.Sync(ctx, s.cfg.ArmorChannelID, keys, pages, ArmorTitle); err != nil {
		return s.fail(ctx, BoardArmor, err)
	}

	metrics.BoardPages.WithLabelValues(BoardArmor).Set(float64(len(pages)))
	metrics.BoardRefreshDuration.WithLabelValues(BoardArmor).Observe(time.Since(start).Seconds())
	log.Info(LogMsgBoardRefreshed, "board", BoardArmor, "pages", len(pages))
	return nil
}

// fail records the error metric and log line for a board, then returns err.
func (s *Service) fail(ctx context.Context, board string, err error) error {
	metrics.BoardRefreshErrors.WithLabelValues(board).Inc()
	logger.FromContext(ctx).Error(LogMsgBoardRefreshError, "board", board, "error", err)
	return err
}
