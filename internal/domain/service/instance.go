package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the services talk to.
// Calendar, Notifier and Observer are optional.
type Dependencies struct {
	DataManager contract.DataManager
	Groups      contract.GroupDirectory
	Members     contract.MemberDirectory
	Notifier    contract.Notifier
	Calendar    contract.CalendarService
	Observer    contract.RunObserver
}

type Options struct {
	AnnounceChannel string
	RunAt           string
	Logger          zerolog.Logger
}

type Instance struct {
	OnCall    *onCallService
	Scheduler *scheduler
}

func NewInstance(schedule *entity.Schedule, deps Dependencies, opts Options) (*Instance, error) {
	if deps.DataManager == nil {
		return nil, fmt.Errorf("%w: data manager is required", domain.ErrConfiguration)
	}

	policy, err := NewFallbackPolicy(schedule, deps.DataManager.Cursor())
	if err != nil {
		return nil, err
	}

	loc := schedule.Timezone
	if loc == nil {
		loc = time.UTC
	}

	onCall := &onCallService{
		schedule:        schedule,
		dm:              deps.DataManager,
		resolver:        newResolver(schedule, policy, opts.Logger),
		reconciler:      newReconciler(deps.Groups, deps.Members, opts.Logger),
		notifier:        deps.Notifier,
		observer:        deps.Observer,
		announceChannel: opts.AnnounceChannel,
		now:             time.Now,
		log:             opts.Logger.With().Str("component", "oncall").Logger(),
	}
	onCall.resolver.today = onCall.Today

	if schedule.Calendar.Enabled {
		if deps.Calendar == nil {
			return nil, fmt.Errorf("%w: calendar integration enabled but no calendar service configured", domain.ErrConfiguration)
		}
		onCall.projector = newProjector(deps.Calendar, loc, opts.Logger)
	}

	runAt := opts.RunAt
	if runAt == "" {
		runAt = domain.DefaultRunAt
	}

	return &Instance{
		OnCall:    onCall,
		Scheduler: newScheduler(onCall, runAt, loc, opts.Logger),
	}, nil
}
