package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-oncall/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	onCallService contract.OnCallService
	signingSecret string
	log           zerolog.Logger
}

func New(onCallService contract.OnCallService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		onCallService: onCallService,
		signingSecret: signingSecret,
		log:           log.With().Str("component", "slack_handler").Logger(),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejected unsigned slash command")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.log.Info().
		Str("user_id", s.UserID).
		Str("command", string(cmd.Type)).
		Msg("handling slash command")

	response := h.handleCommand(r, cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdWho:
		return h.handleWho(r, cmd)
	case slackcmd.CmdHistory:
		return h.handleHistory(r, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleWho(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	date := h.onCallService.Today()
	if cmd.Date != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, cmd.Date, date.Location())
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Invalid date %q, use YYYY-MM-DD", cmd.Date))
		}
		date = parsed
	}

	onCall, err := h.onCallService.WhoIsOnCall(r.Context(), date)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to resolve on-call set")
		return h.createErrorResponse("Failed to resolve the on-call rotation")
	}

	day := fmt.Sprintf("%s %s", date.Weekday(), date.Format(time.DateOnly))
	if len(onCall) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Nobody is on call on %s.", day),
		}
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*On call on %s:*\n", day))
	for _, identity := range onCall {
		text.WriteString(fmt.Sprintf("• %s (%s)\n", identity.Name, identity.Email))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHistory(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	runs, err := h.onCallService.History(r.Context(), cmd.Limit)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list run history")
		return h.createErrorResponse("Failed to load the run history")
	}

	if len(runs) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No sync runs recorded yet.",
		}
	}

	var text strings.Builder
	text.WriteString("*Recent sync runs:*\n")
	for _, run := range runs {
		text.WriteString(formatRun(run))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func formatRun(run *entity.Run) string {
	line := fmt.Sprintf("• %s `%s` %s", run.Date.Format(time.DateOnly), run.Status, strings.Join(run.OnCall, ", "))
	if run.Error != "" {
		line += fmt.Sprintf(" (%s)", run.Error)
	}
	return line + "\n"
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
