package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fullDirectory() []entity.DirectoryEntry {
	return []entity.DirectoryEntry{
		{ID: "U_ALICE", Email: "alice@example.com"},
		{ID: "U_BOB", Email: "bob@example.com"},
		{ID: "U_CAROL", Email: "carol@example.com"},
		{ID: "U_DAVE", Email: "dave@example.com"},
		{ID: "U_ERIN", Email: "erin@example.com"},
	}
}

func Test_onCallService_Run(t *testing.T) {
	saturday := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		now             time.Time
		schedule        func() *entity.Schedule
		announceChannel string
		buildMock       func(mocks allMocks)
		wantStatus      entity.OutcomeStatus
		wantOnCall      []string
		wantErr         error
	}{
		{
			name:     "Should set the group to the Monday assignee when it is empty",
			now:      monday.Add(7 * time.Hour),
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1", Handle: "oncall"}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_ALICE"}).Return(nil).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *entity.Run) error {
						assert.NotEmpty(t, run.ID)
						assert.Equal(t, monday, run.Date)
						assert.Equal(t, entity.OutcomeUpdated, run.Status)
						assert.Equal(t, []string{"U_ALICE"}, run.Members)
						assert.Empty(t, run.Error)
						return nil
					}).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeUpdated, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeUpdated,
			wantOnCall: []string{"alice"},
		},
		{
			name:     "Should not write when the group already matches",
			now:      monday.Add(7 * time.Hour),
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1", Members: []string{"U_ALICE"}}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeSkipped, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeSkipped,
			wantOnCall: []string{"alice"},
		},
		{
			name:     "Should rotate the weekend pair by week number",
			now:      saturday,
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1", Members: []string{"U_ALICE"}}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_CAROL", "U_DAVE"}).Return(nil).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeUpdated, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeUpdated,
			wantOnCall: []string{"carol", "dave"},
		},
		{
			name: "Should end quietly when the on-call person is not in the directory",
			now:  monday.Add(7 * time.Hour),
			schedule: func() *entity.Schedule {
				s := testSchedule(entity.FallbackWeekNumber)
				s.Table[domain.Monday] = []entity.Identity{{Name: "frank", Email: "frank@example.com"}}
				return s
			},
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1", Members: []string{"U_ALICE"}}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeEmpty, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeEmpty,
			wantOnCall: []string{"frank"},
		},
		{
			name:            "Should announce an updated group in the configured channel",
			now:             monday.Add(7 * time.Hour),
			schedule:        func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			announceChannel: "C_ONCALL",
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1"}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_ALICE"}).Return(nil).Times(1)
				mocks.mockNotifier.EXPECT().Announce(gomock.Any(), "C_ONCALL", []string{"U_ALICE"}, monday).Return(nil).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeUpdated, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeUpdated,
			wantOnCall: []string{"alice"},
		},
		{
			name:            "Should keep the run successful when the announcement fails",
			now:             monday.Add(7 * time.Hour),
			schedule:        func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			announceChannel: "C_ONCALL",
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1"}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_ALICE"}).Return(nil).Times(1)
				mocks.mockNotifier.EXPECT().Announce(gomock.Any(), "C_ONCALL", gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeUpdated, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeUpdated,
			wantOnCall: []string{"alice"},
		},
		{
			name:     "Should fail and record the run when the group is missing",
			now:      monday.Add(7 * time.Hour),
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").Return(nil, nil).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *entity.Run) error {
						assert.Equal(t, entity.OutcomeFailed, run.Status)
						assert.Contains(t, run.Error, "user group not found")
						return nil
					}).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeFailed, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeFailed,
			wantOnCall: []string{"alice"},
			wantErr:    domain.ErrGroupNotFound,
		},
		{
			name:     "Should not roll back the cursor when reconciliation fails",
			now:      saturday,
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackCursor) },
			buildMock: func(mocks allMocks) {
				mocks.mockCursorStore.EXPECT().Read(gomock.Any()).Return(entity.Cursor{Next: 3}, nil).Times(1)
				mocks.mockCursorStore.EXPECT().Write(gomock.Any(), entity.Cursor{Next: 4, ConsumedOn: day(2024, 1, 6)}).Return(nil).Times(1)
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").Return(nil, assert.AnError).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeFailed, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeFailed,
			wantOnCall: []string{"alice", "bob"},
			wantErr:    domain.ErrTransport,
		},
		{
			name:     "Should still succeed when the run cannot be recorded",
			now:      monday.Add(7 * time.Hour),
			schedule: func() *entity.Schedule { return testSchedule(entity.FallbackWeekNumber) },
			buildMock: func(mocks allMocks) {
				mocks.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
					Return(&entity.Group{ID: "S1", Members: []string{"U_ALICE"}}, nil).Times(1)
				mocks.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
				mocks.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeSkipped, gomock.Any()).Times(1)
			},
			wantStatus: entity.OutcomeSkipped,
			wantOnCall: []string{"alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			instance := newTestInstance(t, m, tt.schedule(), tt.now, tt.announceChannel)

			run, err := instance.OnCall.Run(context.Background())

			require.NotNil(t, run)
			assert.Equal(t, tt.wantStatus, run.Status)
			assert.Equal(t, tt.wantOnCall, run.OnCall)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_onCallService_Run_projectsCalendar(t *testing.T) {
	tests := []struct {
		name      string
		daysAhead int
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name:      "Should create a two-day event for a Saturday shift",
			daysAhead: 5, // Monday + 5 = Saturday of ISO week 1
			buildMock: func(mocks allMocks) {
				mocks.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event entity.CalendarEvent) error {
						saturday := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
						assert.Equal(t, "On-Call carol/dave", event.Summary)
						assert.Equal(t, saturday, event.Start)
						assert.Equal(t, saturday.AddDate(0, 0, 2), event.End)
						assert.Equal(t, []string{"carol@example.com", "dave@example.com"}, event.Attendees)
						return nil
					}).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeSkipped, gomock.Any()).Times(1)
			},
		},
		{
			name:      "Should skip Sundays",
			daysAhead: 6,
			buildMock: func(mocks allMocks) {
				mocks.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Times(0)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeSkipped, gomock.Any()).Times(1)
			},
		},
		{
			name:      "Should fail the run when the calendar rejects the event",
			daysAhead: 1,
			buildMock: func(mocks allMocks) {
				mocks.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockObserver.EXPECT().ObserveRun(entity.OutcomeFailed, gomock.Any()).Times(1)
			},
			wantErr: domain.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
				Return(&entity.Group{ID: "S1", Members: []string{"U_ALICE"}}, nil).Times(1)
			m.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
			m.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			tt.buildMock(m)

			schedule := testSchedule(entity.FallbackWeekNumber)
			schedule.Calendar = entity.CalendarSettings{Enabled: true, CalendarID: "cal", DaysAhead: tt.daysAhead}
			instance := newTestInstance(t, m, schedule, monday.Add(7*time.Hour), "")

			_, err := instance.OnCall.Run(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_onCallService_Run_projectsBeforeTheGroupWrite(t *testing.T) {
	tests := []struct {
		name        string
		calendarErr error
		setErr      error
		wantStatus  entity.OutcomeStatus
		wantErr     error
	}{
		{
			name:       "Should create the event and then update the group",
			wantStatus: entity.OutcomeUpdated,
		},
		{
			name:       "Should keep the event when the group write is rejected",
			setErr:     assert.AnError,
			wantStatus: entity.OutcomeFailed,
			wantErr:    domain.ErrTransport,
		},
		{
			name:        "Should still update the group when the calendar rejects the event",
			calendarErr: assert.AnError,
			wantStatus:  entity.OutcomeFailed,
			wantErr:     domain.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
				Return(&entity.Group{ID: "S1", Members: []string{"U_ERIN"}}, nil).Times(1)
			m.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
			gomock.InOrder(
				m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(tt.calendarErr).Times(1),
				m.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_ALICE"}).Return(tt.setErr).Times(1),
			)
			m.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			m.mockObserver.EXPECT().ObserveRun(tt.wantStatus, gomock.Any()).Times(1)

			schedule := testSchedule(entity.FallbackWeekNumber)
			schedule.Calendar = entity.CalendarSettings{Enabled: true, CalendarID: "cal", DaysAhead: 1}
			instance := newTestInstance(t, m, schedule, monday.Add(7*time.Hour), "")

			run, err := instance.OnCall.Run(context.Background())

			assert.Equal(t, tt.wantStatus, run.Status)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_onCallService_WhoIsOnCall_afterWeekendRun(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	trackCursor(m, entity.Cursor{Next: 3})
	m.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").
		Return(&entity.Group{ID: "S1", Members: []string{"U_ERIN"}}, nil).Times(1)
	m.mockMembers.EXPECT().ListAll(gomock.Any()).Return(fullDirectory(), nil).Times(1)
	m.mockGroups.EXPECT().SetMembers(gomock.Any(), "S1", []string{"U_ALICE", "U_BOB"}).Return(nil).Times(1)
	m.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.mockObserver.EXPECT().ObserveRun(entity.OutcomeUpdated, gomock.Any()).Times(1)

	saturday := day(2024, 1, 6)
	instance := newTestInstance(t, m, testSchedule(entity.FallbackCursor), saturday.Add(9*time.Hour), "")
	ctx := context.Background()

	run, err := instance.OnCall.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, run.OnCall)

	onCall, err := instance.OnCall.WhoIsOnCall(ctx, saturday)
	require.NoError(t, err)
	assert.Equal(t, entity.OnCallSet{alice, bob}, onCall)

	tomorrow, err := instance.OnCall.WhoIsOnCall(ctx, saturday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, entity.OnCallSet{carol, dave}, tomorrow)
}

func Test_onCallService_Run_skipsCalendarWhenNobodyMatches(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockGroups.EXPECT().FindByHandle(gomock.Any(), "oncall").Return(&entity.Group{ID: "S1"}, nil).Times(1)
	m.mockMembers.EXPECT().ListAll(gomock.Any()).Return(nil, nil).Times(1)
	m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Times(0)
	m.mockRunRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.mockObserver.EXPECT().ObserveRun(entity.OutcomeEmpty, gomock.Any()).Times(1)

	schedule := testSchedule(entity.FallbackWeekNumber)
	schedule.Calendar = entity.CalendarSettings{Enabled: true, DaysAhead: 1}
	instance := newTestInstance(t, m, schedule, monday, "")

	run, err := instance.OnCall.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeEmpty, run.Status)
}

func Test_onCallService_Backfill(t *testing.T) {
	t.Run("Should create one event per day except Sundays", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(6)

		schedule := testSchedule(entity.FallbackWeekNumber)
		schedule.Calendar = entity.CalendarSettings{Enabled: true, DaysAhead: 45}
		instance := newTestInstance(t, m, schedule, monday, "")

		created, err := instance.OnCall.Backfill(context.Background(), monday, 7)

		require.NoError(t, err)
		assert.Equal(t, 6, created)
	})

	t.Run("Should never advance the cursor", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		// Saturday and Sunday both fall back to the cursor
		m.mockCursorStore.EXPECT().Read(gomock.Any()).Return(entity.Cursor{}, nil).Times(2)
		m.mockCursorStore.EXPECT().Write(gomock.Any(), gomock.Any()).Times(0)
		m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(6)

		schedule := testSchedule(entity.FallbackCursor)
		schedule.Calendar = entity.CalendarSettings{Enabled: true}
		instance := newTestInstance(t, m, schedule, monday, "")

		created, err := instance.OnCall.Backfill(context.Background(), monday, 7)

		require.NoError(t, err)
		assert.Equal(t, 6, created)
	})

	t.Run("Should rotate the pairs across weekends with the cursor policy", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockCursorStore.EXPECT().Read(gomock.Any()).Return(entity.Cursor{}, nil).AnyTimes()
		m.mockCursorStore.EXPECT().Write(gomock.Any(), gomock.Any()).Times(0)

		var weekends [][]string
		m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event entity.CalendarEvent) error {
				if domain.WeekdayOf(event.Start) == domain.Saturday {
					weekends = append(weekends, event.Attendees)
				}
				return nil
			}).Times(12)

		schedule := testSchedule(entity.FallbackCursor)
		schedule.Calendar = entity.CalendarSettings{Enabled: true}
		instance := newTestInstance(t, m, schedule, monday, "")

		created, err := instance.OnCall.Backfill(context.Background(), monday, 14)

		require.NoError(t, err)
		assert.Equal(t, 12, created)
		assert.Equal(t, [][]string{
			{"alice@example.com", "bob@example.com"},
			{"erin@example.com"},
		}, weekends)
	})

	t.Run("Should report a disabled calendar", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		instance := newTestInstance(t, m, testSchedule(entity.FallbackWeekNumber), monday, "")

		_, err := instance.OnCall.Backfill(context.Background(), monday, 7)

		require.ErrorIs(t, err, domain.ErrCalendarDisabled)
	})

	t.Run("Should stop at the first calendar error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		gomock.InOrder(
			m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1),
			m.mockCalendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1),
		)

		schedule := testSchedule(entity.FallbackWeekNumber)
		schedule.Calendar = entity.CalendarSettings{Enabled: true}
		instance := newTestInstance(t, m, schedule, monday, "")

		created, err := instance.OnCall.Backfill(context.Background(), monday, 7)

		require.ErrorIs(t, err, domain.ErrTransport)
		assert.Equal(t, 1, created)
	})
}

func Test_onCallService_Cursor(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, testSchedule(entity.FallbackCursor), monday, "")
	ctx := context.Background()

	m.mockCursorStore.EXPECT().Write(gomock.Any(), entity.Cursor{Next: 2}).Return(nil).Times(1)
	m.mockCursorStore.EXPECT().Read(gomock.Any()).Return(entity.Cursor{Next: 2, ConsumedOn: day(2024, 1, 6)}, nil).Times(1)

	require.NoError(t, instance.OnCall.SetCursor(ctx, 2))
	got, err := instance.OnCall.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	require.Error(t, instance.OnCall.SetCursor(ctx, -1))
}

func Test_onCallService_History(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, testSchedule(entity.FallbackWeekNumber), monday, "")
	runs := []*entity.Run{{ID: "r1", Status: entity.OutcomeSkipped}}

	m.mockRunRepo.EXPECT().ListRecent(gomock.Any(), defaultHistoryLimit).Return(runs, nil).Times(1)
	m.mockRunRepo.EXPECT().ListRecent(gomock.Any(), 3).Return(nil, assert.AnError).Times(1)

	got, err := instance.OnCall.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, runs, got)

	_, err = instance.OnCall.History(context.Background(), 3)
	require.Error(t, err)
}

func Test_onCallService_Today(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, testSchedule(entity.FallbackWeekNumber), monday.Add(15*time.Hour+30*time.Minute), "")

	assert.Equal(t, monday, instance.OnCall.Today())
}

func Test_NewInstance(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	t.Run("Should require a calendar service when the calendar is enabled", func(t *testing.T) {
		schedule := testSchedule(entity.FallbackWeekNumber)
		schedule.Calendar.Enabled = true

		_, err := NewInstance(schedule, Dependencies{DataManager: m.mockDataManager}, Options{})

		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("Should reject an unknown fallback policy", func(t *testing.T) {
		_, err := NewInstance(testSchedule("random"), Dependencies{DataManager: m.mockDataManager}, Options{})

		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("Should require a data manager", func(t *testing.T) {
		_, err := NewInstance(testSchedule(entity.FallbackWeekNumber), Dependencies{}, Options{})

		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("Should default the run time", func(t *testing.T) {
		instance, err := NewInstance(testSchedule(entity.FallbackWeekNumber), Dependencies{DataManager: m.mockDataManager}, Options{})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultRunAt, instance.Scheduler.runAt)
		assert.Nil(t, instance.OnCall.projector)
	})
}
