package slack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
	goslack "github.com/slack-go/slack"
)

// Client talks to the Slack Web API on behalf of the on-call services.
// It implements contract.GroupDirectory, contract.MemberDirectory and contract.Notifier.
type Client struct {
	api *goslack.Client
	log zerolog.Logger
}

var (
	_ contract.GroupDirectory  = (*Client)(nil)
	_ contract.MemberDirectory = (*Client)(nil)
	_ contract.Notifier        = (*Client)(nil)
)

func New(token string, log zerolog.Logger, options ...goslack.Option) *Client {
	return &Client{
		api: goslack.New(token, options...),
		log: log.With().Str("component", "slack").Logger(),
	}
}

// FindByHandle returns the user group whose handle matches, ignoring a leading @ and case.
// It returns nil, nil when no group matches.
func (c *Client) FindByHandle(ctx context.Context, handle string) (*entity.Group, error) {
	groups, err := c.api.GetUserGroupsContext(ctx, goslack.GetUserGroupsOptionIncludeUsers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}

	want := domain.NormalizeHandle(handle)
	for _, group := range groups {
		if domain.NormalizeHandle(group.Handle) != want {
			continue
		}

		c.log.Debug().Str("group_id", group.ID).Strs("users", group.Users).Msg("found user group")
		return &entity.Group{
			ID:      group.ID,
			Handle:  group.Handle,
			Members: group.Users,
		}, nil
	}

	return nil, nil
}

// SetMembers replaces the whole membership of the group.
func (c *Client) SetMembers(ctx context.Context, groupID string, memberIDs []string) error {
	if _, err := c.api.UpdateUserGroupMembersContext(ctx, groupID, strings.Join(memberIDs, ",")); err != nil {
		return fmt.Errorf("failed to update user group members: %w", err)
	}
	return nil
}

// ListAll returns every workspace member, deleted accounts included.
func (c *Client) ListAll(ctx context.Context) ([]entity.DirectoryEntry, error) {
	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	entries := make([]entity.DirectoryEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, entity.DirectoryEntry{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Profile.Email,
			Deleted: user.Deleted,
		})
	}

	return entries, nil
}

func (c *Client) Announce(ctx context.Context, channelID string, memberIDs []string, date time.Time) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID,
		goslack.MsgOptionText(AnnouncementText(memberIDs, date), false),
	)
	if err != nil {
		return fmt.Errorf("failed to post announcement: %w", err)
	}
	return nil
}

// AnnouncementText renders the message posted when the on-call group changes.
func AnnouncementText(memberIDs []string, date time.Time) string {
	mentions := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}

	return fmt.Sprintf(":rotating_light: On call for %s %s: %s",
		date.Weekday(), date.Format(time.DateOnly), strings.Join(mentions, ", "))
}
