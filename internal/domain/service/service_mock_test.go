package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/diegoclair/slack-oncall/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockCursorStore *mocks.MockCursorStore
	mockRunRepo     *mocks.MockRunRepo
	mockGroups      *mocks.MockGroupDirectory
	mockMembers     *mocks.MockMemberDirectory
	mockNotifier    *mocks.MockNotifier
	mockCalendar    *mocks.MockCalendarService
	mockObserver    *mocks.MockRunObserver
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	cursorStore := mocks.NewMockCursorStore(ctrl)
	dm.EXPECT().Cursor().Return(cursorStore).AnyTimes()

	runRepo := mocks.NewMockRunRepo(ctrl)
	dm.EXPECT().Run().Return(runRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockCursorStore: cursorStore,
		mockRunRepo:     runRepo,
		mockGroups:      mocks.NewMockGroupDirectory(ctrl),
		mockMembers:     mocks.NewMockMemberDirectory(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
		mockCalendar:    mocks.NewMockCalendarService(ctrl),
		mockObserver:    mocks.NewMockRunObserver(ctrl),
	}

	return
}

// newTestInstance wires an Instance over the mocks with a fixed clock.
func newTestInstance(t *testing.T, m allMocks, schedule *entity.Schedule, now time.Time, announceChannel string) *Instance {
	t.Helper()

	deps := Dependencies{
		DataManager: m.mockDataManager,
		Groups:      m.mockGroups,
		Members:     m.mockMembers,
		Notifier:    m.mockNotifier,
		Observer:    m.mockObserver,
	}
	if schedule.Calendar.Enabled {
		deps.Calendar = m.mockCalendar
	}

	instance, err := NewInstance(schedule, deps, Options{
		AnnounceChannel: announceChannel,
		Logger:          zerolog.Nop(),
	})
	require.NoError(t, err)
	require.NotNil(t, instance)

	instance.OnCall.now = func() time.Time { return now }
	return instance
}

var (
	alice = entity.Identity{Name: "alice", Email: "alice@example.com", Phone: "5550001"}
	bob   = entity.Identity{Name: "bob", Email: "bob@example.com", Phone: "5550002"}
	carol = entity.Identity{Name: "carol", Email: "carol@example.com", Phone: "5550003"}
	dave  = entity.Identity{Name: "dave", Email: "dave@example.com", Phone: "5550004"}
	erin  = entity.Identity{Name: "erin", Email: "erin@example.com", Phone: "5550005"}
)

func testRoster() entity.Roster {
	return entity.Roster{alice, bob, carol, dave, erin}
}

func testSchedule(policy entity.FallbackPolicyKind) *entity.Schedule {
	return &entity.Schedule{
		Timezone:       time.UTC,
		GroupHandle:    "oncall",
		RotateWeekend:  true,
		FallbackPolicy: policy,
		Roster:         testRoster(),
		Table: entity.RotationTable{
			0: {alice},
			1: {alice, bob},
			2: {carol, dave},
			3: {bob, carol},
			4: {erin},
		},
	}
}

// 2024-01-01 is a Monday in ISO week 1.
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
