package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// scheduleDocument is the YAML layout of the rotation file.
type scheduleDocument struct {
	Timezone       string              `yaml:"timezone"`
	GroupHandle    string              `yaml:"group_handle"`
	RotateWeekend  *bool               `yaml:"rotate_weekend"`
	FallbackPolicy string              `yaml:"fallback_policy" validate:"omitempty,oneof=week_number cursor"`
	Roster         []entity.Identity   `yaml:"roster" validate:"dive"`
	Weekdays       map[string][]string `yaml:"weekdays"`
	Calendar       calendarDocument    `yaml:"calendar"`
}

type calendarDocument struct {
	Enabled    bool   `yaml:"enabled"`
	CalendarID string `yaml:"calendar_id" validate:"required_if=Enabled true"`
	DaysAhead  *int   `yaml:"days_ahead" validate:"omitempty,gte=0"`
}

// LoadSchedule reads and validates the rotation file at path.
func LoadSchedule(path string) (*entity.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rotation file: %v", domain.ErrConfiguration, err)
	}

	return DecodeSchedule(data)
}

// DecodeSchedule parses a rotation document. Weekday entries reference roster names.
func DecodeSchedule(data []byte) (*entity.Schedule, error) {
	var doc scheduleDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: invalid rotation file: %v", domain.ErrConfiguration, err)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	return doc.toSchedule()
}

func (doc scheduleDocument) toSchedule() (*entity.Schedule, error) {
	tz := doc.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", domain.ErrConfiguration, tz, err)
	}

	schedule := &entity.Schedule{
		Timezone:       loc,
		GroupHandle:    domain.DefaultGroupHandle,
		RotateWeekend:  true,
		FallbackPolicy: entity.FallbackWeekNumber,
		Roster:         entity.Roster(doc.Roster),
		Table:          make(entity.RotationTable, len(doc.Weekdays)),
		Calendar: entity.CalendarSettings{
			Enabled:    doc.Calendar.Enabled,
			CalendarID: doc.Calendar.CalendarID,
			DaysAhead:  domain.DefaultDaysAhead,
		},
	}
	if doc.GroupHandle != "" {
		schedule.GroupHandle = strings.TrimPrefix(doc.GroupHandle, "@")
	}
	if doc.RotateWeekend != nil {
		schedule.RotateWeekend = *doc.RotateWeekend
	}
	if doc.FallbackPolicy != "" {
		schedule.FallbackPolicy = entity.FallbackPolicyKind(doc.FallbackPolicy)
	}
	if doc.Calendar.DaysAhead != nil {
		schedule.Calendar.DaysAhead = *doc.Calendar.DaysAhead
	}

	if err := checkRoster(schedule.Roster); err != nil {
		return nil, err
	}
	if schedule.RotateWeekend && len(schedule.Roster) == 0 {
		return nil, fmt.Errorf("%w: weekend rotation needs a non-empty roster", domain.ErrConfiguration)
	}

	for day, names := range doc.Weekdays {
		weekday, ok := domain.WeekdayNumbers[strings.ToLower(day)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrConfiguration, day)
		}
		if _, dup := schedule.Table[weekday]; dup {
			return nil, fmt.Errorf("%w: weekday %q listed twice", domain.ErrConfiguration, day)
		}

		identities := make([]entity.Identity, 0, len(names))
		for _, name := range names {
			identity, ok := schedule.Roster.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s references %q, who is not in the roster", domain.ErrConfiguration, day, name)
			}
			identities = append(identities, identity)
		}
		schedule.Table[weekday] = identities
	}

	return schedule, nil
}

func checkRoster(roster entity.Roster) error {
	names := make(map[string]bool, len(roster))
	emails := make(map[string]bool, len(roster))
	for _, identity := range roster {
		if names[identity.Name] {
			return fmt.Errorf("%w: duplicate roster name %q", domain.ErrConfiguration, identity.Name)
		}
		names[identity.Name] = true

		email := domain.NormalizeEmail(identity.Email)
		if emails[email] {
			return fmt.Errorf("%w: duplicate roster email %q", domain.ErrConfiguration, identity.Email)
		}
		emails[email] = true
	}
	return nil
}

// EncodeSchedule renders schedule in the rotation file format.
func EncodeSchedule(schedule *entity.Schedule) ([]byte, error) {
	rotateWeekend := schedule.RotateWeekend
	daysAhead := schedule.Calendar.DaysAhead
	doc := scheduleDocument{
		Timezone:       "UTC",
		GroupHandle:    schedule.GroupHandle,
		RotateWeekend:  &rotateWeekend,
		FallbackPolicy: string(schedule.FallbackPolicy),
		Roster:         []entity.Identity(schedule.Roster),
		Weekdays:       make(map[string][]string, len(schedule.Table)),
		Calendar: calendarDocument{
			Enabled:    schedule.Calendar.Enabled,
			CalendarID: schedule.Calendar.CalendarID,
			DaysAhead:  &daysAhead,
		},
	}
	if schedule.Timezone != nil {
		doc.Timezone = schedule.Timezone.String()
	}

	weekdays := make([]int, 0, len(schedule.Table))
	for weekday := range schedule.Table {
		weekdays = append(weekdays, weekday)
	}
	sort.Ints(weekdays)

	for _, weekday := range weekdays {
		name, ok := domain.WeekdayNames[weekday]
		if !ok {
			return nil, fmt.Errorf("%w: invalid weekday %d", domain.ErrConfiguration, weekday)
		}

		identities := schedule.Table[weekday]
		names := make([]string, 0, len(identities))
		for _, identity := range identities {
			names = append(names, identity.Name)
		}
		doc.Weekdays[name] = names
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	return buf.Bytes(), nil
}
