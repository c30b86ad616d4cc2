package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type CommandType string

const (
	CmdWho     CommandType = "who"
	CmdHistory CommandType = "history"
	CmdHelp    CommandType = "help"
)

// MaxHistoryLimit caps how many runs the history command lists.
const MaxHistoryLimit = 20

type Command struct {
	Type  CommandType
	Date  string
	Limit int
	Raw   string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdWho}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "who", "today":
		cmd.Type = CmdWho
		if len(parts) > 1 {
			if _, err := time.Parse(time.DateOnly, parts[1]); err != nil {
				return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", parts[1])
			}
			cmd.Date = parts[1]
		}
	case "history":
		cmd.Type = CmdHistory
		if len(parts) > 1 {
			limit, err := strconv.Atoi(parts[1])
			if err != nil || limit <= 0 {
				return nil, fmt.Errorf("invalid history limit %q", parts[1])
			}
			cmd.Limit = min(limit, MaxHistoryLimit)
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/oncall`" + ` or ` + "`/oncall who`" + ` - Show who is on call today
• ` + "`/oncall who YYYY-MM-DD`" + ` - Show who is on call on a given day
• ` + "`/oncall history [N]`" + ` - Show the last N sync runs (max 20)
• ` + "`/oncall help`" + ` - Show this message`
}
