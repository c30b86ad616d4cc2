package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
)

// reconciler keeps the notification group in line with the resolved on-call set.
type reconciler struct {
	groups  contract.GroupDirectory
	members contract.MemberDirectory
	log     zerolog.Logger
}

func newReconciler(groups contract.GroupDirectory, members contract.MemberDirectory, log zerolog.Logger) *reconciler {
	return &reconciler{
		groups:  groups,
		members: members,
		log:     log.With().Str("component", "reconciler").Logger(),
	}
}

// Reconcile replaces the group membership with onCall when it differs.
// Group and directory are fetched fresh on every call.
func (r *reconciler) Reconcile(ctx context.Context, onCall entity.OnCallSet, handle string) (entity.Outcome, error) {
	outcome, pending, err := r.Plan(ctx, onCall, handle)
	if err != nil || !pending {
		return outcome, err
	}
	return r.Apply(ctx, outcome, handle)
}

// Plan compares the group with onCall without writing anything. pending is true when
// the membership has to be replaced; the outcome status is then left empty until Apply.
func (r *reconciler) Plan(ctx context.Context, onCall entity.OnCallSet, handle string) (outcome entity.Outcome, pending bool, err error) {
	group, err := r.groups.FindByHandle(ctx, handle)
	if err != nil {
		outcome, err = failed(fmt.Errorf("%w: failed to list user groups: %v", domain.ErrTransport, err))
		return outcome, false, err
	}
	if group == nil {
		outcome, err = failed(fmt.Errorf("%w: no user group matches %q", domain.ErrGroupNotFound, handle))
		return outcome, false, err
	}

	directory, err := r.members.ListAll(ctx)
	if err != nil {
		outcome, err = failed(fmt.Errorf("%w: failed to list workspace members: %v", domain.ErrTransport, err))
		return outcome, false, err
	}
	r.log.Info().Int("members", len(directory)).Msg("fetched member directory")

	desired := desiredMembers(onCall, directory)
	outcome = entity.Outcome{
		GroupID:  group.ID,
		Previous: group.Members,
		Members:  desired,
	}

	if len(desired) == 0 {
		r.log.Warn().
			Strs("emails", onCall.Emails()).
			Str("group", handle).
			Msg("no directory members found for on-call emails, leaving group untouched")
		outcome.Status = entity.OutcomeEmpty
		outcome.Reason = "no on-call identity matched the member directory"
		return outcome, false, nil
	}

	if sameMembers(desired, group.Members) {
		r.log.Info().
			Str("group", handle).
			Strs("members", desired).
			Msg("user group already up to date")
		outcome.Status = entity.OutcomeSkipped
		return outcome, false, nil
	}

	return outcome, true, nil
}

// Apply writes the membership planned by Plan.
func (r *reconciler) Apply(ctx context.Context, outcome entity.Outcome, handle string) (entity.Outcome, error) {
	r.log.Info().
		Str("group", handle).
		Strs("from", outcome.Previous).
		Strs("to", outcome.Members).
		Msg("updating user group")

	if err := r.groups.SetMembers(ctx, outcome.GroupID, outcome.Members); err != nil {
		return failed(fmt.Errorf("%w: failed to update user group %s: %v", domain.ErrTransport, handle, err))
	}

	outcome.Status = entity.OutcomeUpdated
	return outcome, nil
}

func failed(err error) (entity.Outcome, error) {
	return entity.Outcome{Status: entity.OutcomeFailed, Reason: err.Error()}, err
}

// desiredMembers joins the on-call set to the directory by email.
// Identities without a live directory entry are dropped.
func desiredMembers(onCall entity.OnCallSet, directory []entity.DirectoryEntry) []string {
	byEmail := make(map[string]string, len(directory))
	for _, entry := range directory {
		if entry.Deleted || entry.Email == "" {
			continue
		}
		byEmail[domain.NormalizeEmail(entry.Email)] = entry.ID
	}

	seen := make(map[string]bool, len(onCall))
	ids := make([]string, 0, len(onCall))
	for _, identity := range onCall {
		id, ok := byEmail[domain.NormalizeEmail(identity.Email)]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// sameMembers compares two member lists as sets.
func sameMembers(a, b []string) bool {
	left := make(map[string]bool, len(a))
	for _, id := range a {
		left[id] = true
	}
	right := make(map[string]bool, len(b))
	for _, id := range b {
		right[id] = true
	}

	if len(left) != len(right) {
		return false
	}
	for id := range left {
		if !right[id] {
			return false
		}
	}
	return true
}
